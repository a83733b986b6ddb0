package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

const (
	ReportEquipmentByTeam   = "equipment-by-team"
	ReportRequestsByTeam    = "requests-by-team"
	ReportEquipmentStatus   = "equipment-status"
	ReportRequestCompletion = "request-completion"
)

// ReportData bundles the three collections every report kind draws from.
type ReportData struct {
	Teams     []entities.MaintenanceTeam
	Equipment []dto.EquipmentDTO
	Requests  []dto.RequestDTO
}

type ReportServiceInterface interface {
	GetReport(ctx context.Context, kind string) (*dto.ReportDTO, error)
	Generate(kind string, data ReportData) *dto.ReportDTO
}

type ReportService struct {
	teamRepo      repositories.TeamRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	location      *time.Location
	logger        *zap.Logger
}

func NewReportService(
	teamRepo repositories.TeamRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	location *time.Location,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		teamRepo:      teamRepo,
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		location:      location,
		logger:        logger,
	}
}

// GetReport fetches the three collections concurrently and aggregates them
// in memory.
func (s *ReportService) GetReport(ctx context.Context, kind string) (*dto.ReportDTO, error) {
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

	return s.Generate(kind, data), nil
}

// Generate builds one of the four canned reports. An unknown kind yields an
// empty report rather than an error.
func (s *ReportService) Generate(kind string, data ReportData) *dto.ReportDTO {
	report := &dto.ReportDTO{Kind: kind, Rows: make([]dto.CountRowDTO, 0)}

	switch kind {
	case ReportEquipmentByTeam:
		for _, team := range data.Teams {
			count := 0
			for _, equipment := range data.Equipment {
				if equipment.Team != nil && equipment.Team.ID == team.ID.String() {
					count++
				}
			}
			report.Rows = append(report.Rows, dto.CountRowDTO{Name: team.Name, Count: count})
		}

	case ReportRequestsByTeam:
		for _, team := range data.Teams {
			count := 0
			for _, request := range data.Requests {
				if request.Team != nil && request.Team.ID == team.ID.String() {
					count++
				}
			}
			report.Rows = append(report.Rows, dto.CountRowDTO{Name: team.Name, Count: count})
		}

	case ReportEquipmentStatus:
		counts := make(map[entities.EquipmentStatus]int)
		for _, equipment := range data.Equipment {
			counts[entities.EquipmentStatus(equipment.Status)]++
		}
		for _, status := range entities.EquipmentStatuses {
			if counts[status] == 0 {
				continue
			}
			report.Rows = append(report.Rows, dto.CountRowDTO{
				Name:  capitalize(string(status)),
				Count: counts[status],
			})
		}

	case ReportRequestCompletion:
		report.Trend = s.requestCompletion(data.Requests)

	default:
		if s.logger != nil {
			s.logger.Warn("unknown report kind requested", zap.String("kind", kind))
		}
	}

	return report
}

// requestCompletion buckets requests by the short month name of their
// creation date, in order of first occurrence over the created_at-ordered
// fetch. Within each bucket remaining = total - completed.
func (s *ReportService) requestCompletion(requests []dto.RequestDTO) []dto.CompletionRowDTO {
	type bucket struct {
		completed int
		total     int
	}

	order := make([]string, 0)
	buckets := make(map[string]*bucket)

	for _, request := range requests {
		month := request.CreatedAt.In(s.loc()).Format("Jan")
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
			order = append(order, month)
		}
		b.total++
		if request.Stage == string(entities.StageRepaired) {
			b.completed++
		}
	}

	trend := make([]dto.CompletionRowDTO, 0, len(order))
	for _, month := range order {
		b := buckets[month]
		trend = append(trend, dto.CompletionRowDTO{
			Month:     month,
			Completed: b.completed,
			Remaining: b.total - b.completed,
			Total:     b.total,
		})
	}
	return trend
}

func (s *ReportService) loc() *time.Location {
	if s.location == nil {
		return time.Local
	}
	return s.location
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
