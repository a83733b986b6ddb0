package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

func TestBuildStats(t *testing.T) {
	mechanics := &dto.ShortTeamDTO{ID: uuid.NewString(), Name: "Mechanics"}
	itSupport := &dto.ShortTeamDTO{ID: uuid.NewString(), Name: "IT Support"}

	data := ReportData{
		Teams: []entities.MaintenanceTeam{{ID: uuid.New(), Name: "Mechanics"}, {ID: uuid.New(), Name: "IT Support"}},
		Equipment: []dto.EquipmentDTO{
			{ID: "e1", Status: "active"},
			{ID: "e2", Status: "inactive"},
			{ID: "e3", Status: "active"},
		},
		Requests: []dto.RequestDTO{
			{ID: "r1", Stage: "new", Type: "corrective", Team: mechanics},
			{ID: "r2", Stage: "in_progress", Type: "corrective", Team: mechanics, IsOverdue: true},
			{ID: "r3", Stage: "repaired", Type: "preventive", Team: itSupport},
			{ID: "r4", Stage: "scrap", Type: "corrective"},
		},
	}

	stats := buildStats(data)

	assert.Equal(t, 4, stats.TotalRequests)
	assert.Equal(t, 2, stats.ActiveRequests)
	assert.Equal(t, 1, stats.CompletedRequests)
	assert.Equal(t, 1, stats.OverdueRequests)
	assert.Equal(t, 3, stats.TotalEquipment)
	assert.Equal(t, 2, stats.ActiveEquipment)
	assert.Equal(t, 2, stats.TotalTeams)

	assert.Equal(t, []dto.CountRowDTO{
		{Name: "Mechanics", Count: 2},
		{Name: "IT Support", Count: 1},
	}, stats.RequestsByTeam)
	assert.Equal(t, []dto.CountRowDTO{
		{Name: "Corrective", Count: 3},
		{Name: "Preventive", Count: 1},
	}, stats.RequestsByType)
}

func TestDashboardGetStats(t *testing.T) {
	svc := NewDashboardService(
		&fakeTeamRepo{teams: []entities.MaintenanceTeam{{ID: uuid.New(), Name: "Mechanics"}}},
		&fakeEquipmentRepo{equipment: []dto.EquipmentDTO{{ID: "e1", Status: "active"}}},
		&fakeRequestRepo{requests: []dto.RequestDTO{{ID: "r1", Stage: "new", Type: "corrective"}}},
	)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRequests)
	assert.Equal(t, 1, stats.TotalTeams)
	assert.Equal(t, 1, stats.ActiveEquipment)
}
