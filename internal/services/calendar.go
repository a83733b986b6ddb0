package services

import (
	"context"
	"fmt"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

// RequestsOnDate filters the fetched requests down to the preventive work
// scheduled on the given calendar day (ISO date, no time component).
// Scrapped requests never appear on the calendar.
func RequestsOnDate(requests []dto.RequestDTO, date string) []dto.RequestDTO {
	matched := make([]dto.RequestDTO, 0)
	for _, request := range requests {
		if request.Type != string(entities.TypePreventive) {
			continue
		}
		if request.Stage == string(entities.StageScrap) {
			continue
		}
		if request.ScheduledDate == nil || *request.ScheduledDate != date {
			continue
		}
		matched = append(matched, request)
	}
	return matched
}

type CalendarServiceInterface interface {
	GetMonth(ctx context.Context, year, month int) (*dto.CalendarMonthDTO, error)
	GetDay(ctx context.Context, date string) (*dto.CalendarDayDTO, error)
}

type CalendarService struct {
	requestRepo repositories.RequestRepositoryInterface
	location    *time.Location
}

func NewCalendarService(requestRepo repositories.RequestRepositoryInterface, location *time.Location) CalendarServiceInterface {
	return &CalendarService{requestRepo: requestRepo, location: location}
}

func (s *CalendarService) GetMonth(ctx context.Context, year, month int) (*dto.CalendarMonthDTO, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewBadRequestError("month must be between 1 and 12")
	}

	requests, err := s.requestRepo.List(ctx, dto.RequestFilterDTO{})
	if err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]dto.CalendarDayDTO, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		days = append(days, dto.CalendarDayDTO{
			Date:     date,
			Requests: RequestsOnDate(requests, date),
		})
	}

	return &dto.CalendarMonthDTO{Year: year, Month: month, Days: days}, nil
}

func (s *CalendarService) GetDay(ctx context.Context, date string) (*dto.CalendarDayDTO, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperrors.NewBadRequestError("date must be formatted as YYYY-MM-DD")
	}

	requests, err := s.requestRepo.List(ctx, dto.RequestFilterDTO{})
	if err != nil {
		return nil, err
	}

	return &dto.CalendarDayDTO{Date: date, Requests: RequestsOnDate(requests, date)}, nil
}
