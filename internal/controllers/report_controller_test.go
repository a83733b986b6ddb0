package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
)

func TestReportRowsCountReport(t *testing.T) {
	report := &dto.ReportDTO{
		Kind: services.ReportRequestsByTeam,
		Rows: []dto.CountRowDTO{
			{Name: "Mechanics", Count: 3},
			{Name: "Electricians", Count: 0},
		},
	}

	rows := reportRows(report)
	assert.Equal(t, [][]string{
		{"Mechanics", "3"},
		{"Electricians", "0"},
	}, rows)
}

func TestReportRowsCompletionReport(t *testing.T) {
	report := &dto.ReportDTO{
		Kind: services.ReportRequestCompletion,
		Trend: []dto.CompletionRowDTO{
			{Month: "Jan", Completed: 2, Remaining: 1, Total: 3},
			{Month: "Feb", Completed: 0, Remaining: 1, Total: 1},
		},
	}

	rows := reportRows(report)
	assert.Equal(t, [][]string{
		{"Jan", "2", "1", "3"},
		{"Feb", "0", "1", "1"},
	}, rows)
}

func TestRespondWithCSV(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reports?kind=requests-by-team&format=csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ctrl := NewReportController(nil, zap.NewNop())
	report := &dto.ReportDTO{
		Kind: services.ReportRequestsByTeam,
		Rows: []dto.CountRowDTO{{Name: "Mechanics", Count: 3}},
	}

	require.NoError(t, ctrl.respondWithCSV(c, report))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report-requests-by-team-")

	assert.Equal(t, "Report Type,requests-by-team\n\nMechanics,3\n", rec.Body.String())
}
