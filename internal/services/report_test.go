package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

func newTestReportService(teams []entities.MaintenanceTeam, equipment []dto.EquipmentDTO, requests []dto.RequestDTO) *ReportService {
	svc := NewReportService(
		&fakeTeamRepo{teams: teams},
		&fakeEquipmentRepo{equipment: equipment},
		&fakeRequestRepo{requests: requests},
		time.UTC,
		zap.NewNop(),
	)
	return svc.(*ReportService)
}

func TestReportEquipmentByTeam(t *testing.T) {
	mechanics := entities.MaintenanceTeam{ID: uuid.New(), Name: "Mechanics"}
	electricians := entities.MaintenanceTeam{ID: uuid.New(), Name: "Electricians"}

	mechanicsRef := &dto.ShortTeamDTO{ID: mechanics.ID.String(), Name: "Mechanics"}
	data := ReportData{
		Teams: []entities.MaintenanceTeam{mechanics, electricians},
		Equipment: []dto.EquipmentDTO{
			{ID: "e1", Team: mechanicsRef},
			{ID: "e2", Team: mechanicsRef},
			{ID: "e3"},
		},
	}

	svc := newTestReportService(nil, nil, nil)
	report := svc.Generate(ReportEquipmentByTeam, data)

	assert.Equal(t, ReportEquipmentByTeam, report.Kind)
	assert.Equal(t, []dto.CountRowDTO{
		{Name: "Mechanics", Count: 2},
		{Name: "Electricians", Count: 0},
	}, report.Rows)
}

func TestReportRequestsByTeam(t *testing.T) {
	mechanics := entities.MaintenanceTeam{ID: uuid.New(), Name: "Mechanics"}
	mechanicsRef := &dto.ShortTeamDTO{ID: mechanics.ID.String(), Name: "Mechanics"}

	data := ReportData{
		Teams: []entities.MaintenanceTeam{mechanics},
		Requests: []dto.RequestDTO{
			{ID: "r1", Team: mechanicsRef},
			{ID: "r2"},
			{ID: "r3", Team: mechanicsRef},
		},
	}

	svc := newTestReportService(nil, nil, nil)
	report := svc.Generate(ReportRequestsByTeam, data)

	assert.Equal(t, []dto.CountRowDTO{{Name: "Mechanics", Count: 2}}, report.Rows)
}

func TestReportEquipmentStatus(t *testing.T) {
	data := ReportData{
		Equipment: []dto.EquipmentDTO{
			{ID: "e1", Status: "active"},
			{ID: "e2", Status: "active"},
			{ID: "e3", Status: "scrapped"},
		},
	}

	svc := newTestReportService(nil, nil, nil)
	report := svc.Generate(ReportEquipmentStatus, data)

	// canonical status order, zero-count statuses skipped, names capitalized
	assert.Equal(t, []dto.CountRowDTO{
		{Name: "Active", Count: 2},
		{Name: "Scrapped", Count: 1},
	}, report.Rows)
}

func TestReportRequestCompletion(t *testing.T) {
	jan := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 2, 10, 0, 0, 0, time.UTC)

	data := ReportData{
		Requests: []dto.RequestDTO{
			{ID: "r1", Stage: "repaired", CreatedAt: jan},
			{ID: "r2", Stage: "new", CreatedAt: jan.Add(24 * time.Hour)},
			{ID: "r3", Stage: "in_progress", CreatedAt: feb},
			{ID: "r4", Stage: "repaired", CreatedAt: jan.Add(48 * time.Hour)},
		},
	}

	svc := newTestReportService(nil, nil, nil)
	report := svc.Generate(ReportRequestCompletion, data)

	require.Len(t, report.Trend, 2)
	assert.Equal(t, dto.CompletionRowDTO{Month: "Jan", Completed: 2, Remaining: 1, Total: 3}, report.Trend[0])
	assert.Equal(t, dto.CompletionRowDTO{Month: "Feb", Completed: 0, Remaining: 1, Total: 1}, report.Trend[1])

	for _, row := range report.Trend {
		assert.Equal(t, row.Total, row.Completed+row.Remaining)
	}
}

func TestReportUnknownKind(t *testing.T) {
	svc := newTestReportService(nil, nil, nil)

	report := svc.Generate("nonsense", ReportData{
		Requests: []dto.RequestDTO{{ID: "r1", Stage: "new"}},
	})

	assert.Equal(t, "nonsense", report.Kind)
	assert.NotNil(t, report.Rows)
	assert.Empty(t, report.Rows)
	assert.Empty(t, report.Trend)
}

func TestGetReportFetchesCollections(t *testing.T) {
	team := entities.MaintenanceTeam{ID: uuid.New(), Name: "Mechanics"}
	teamRef := &dto.ShortTeamDTO{ID: team.ID.String(), Name: "Mechanics"}

	svc := newTestReportService(
		[]entities.MaintenanceTeam{team},
		[]dto.EquipmentDTO{{ID: "e1", Team: teamRef}},
		[]dto.RequestDTO{{ID: "r1", Team: teamRef}},
	)

	report, err := svc.GetReport(context.Background(), ReportRequestsByTeam)
	require.NoError(t, err)
	assert.Equal(t, []dto.CountRowDTO{{Name: "Mechanics", Count: 1}}, report.Rows)
}
