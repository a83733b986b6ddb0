package dto

type DashboardStatsDTO struct {
	TotalRequests     int `json:"total_requests"`
	ActiveRequests    int `json:"active_requests"`
	CompletedRequests int `json:"completed_requests"`
	OverdueRequests   int `json:"overdue_requests"`
	TotalEquipment    int `json:"total_equipment"`
	ActiveEquipment   int `json:"active_equipment"`
	TotalTeams        int `json:"total_teams"`

	RequestsByTeam []CountRowDTO `json:"requests_by_team"`
	RequestsByType []CountRowDTO `json:"requests_by_type"`
}
