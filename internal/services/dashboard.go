package services

import (
	"context"
	"sync"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	teamRepo      repositories.TeamRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
}

func NewDashboardService(
	teamRepo repositories.TeamRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
) DashboardServiceInterface {
	return &DashboardService{
		teamRepo:      teamRepo,
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var (
		data ReportData
		wg   sync.WaitGroup
		errs [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Teams, errs[0] = s.teamRepo.List(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Equipment, errs[1] = s.equipmentRepo.List(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Requests, errs[2] = s.requestRepo.List(ctx, dto.RequestFilterDTO{})
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return buildStats(data), nil
}

func buildStats(data ReportData) *dto.DashboardStatsDTO {
	stats := &dto.DashboardStatsDTO{
		TotalRequests:  len(data.Requests),
		TotalEquipment: len(data.Equipment),
		TotalTeams:     len(data.Teams),
	}

	byTeam := make(map[string]int)
	teamOrder := make([]string, 0)
	byType := make(map[string]int)
	typeOrder := make([]string, 0)

	for _, r := range data.Requests {
		switch entities.Stage(r.Stage) {
		case entities.StageRepaired:
			stats.CompletedRequests++
		case entities.StageNew, entities.StageInProgress:
			stats.ActiveRequests++
		}
		if r.IsOverdue {
			stats.OverdueRequests++
		}

		if r.Team != nil {
			if _, seen := byTeam[r.Team.Name]; !seen {
				teamOrder = append(teamOrder, r.Team.Name)
			}
			byTeam[r.Team.Name]++
		}

		if _, seen := byType[r.Type]; !seen {
			typeOrder = append(typeOrder, r.Type)
		}
		byType[r.Type]++
	}

	for _, e := range data.Equipment {
		if entities.EquipmentStatus(e.Status) == entities.EquipmentActive {
			stats.ActiveEquipment++
		}
	}

	stats.RequestsByTeam = make([]dto.CountRowDTO, 0, len(teamOrder))
	for _, name := range teamOrder {
		stats.RequestsByTeam = append(stats.RequestsByTeam, dto.CountRowDTO{Name: name, Count: byTeam[name]})
	}

	stats.RequestsByType = make([]dto.CountRowDTO, 0, len(typeOrder))
	for _, name := range typeOrder {
		stats.RequestsByType = append(stats.RequestsByType, dto.CountRowDTO{Name: capitalize(name), Count: byType[name]})
	}

	return stats
}
