package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

// GroupByStage partitions the fetched requests into the four kanban columns,
// preserving fetch order within each column. Every request lands in exactly
// one column.
func GroupByStage(requests []dto.RequestDTO) []dto.BoardColumnDTO {
	byStage := make(map[entities.Stage][]dto.RequestDTO, len(entities.AllStages))
	for _, request := range requests {
		stage := entities.Stage(request.Stage)
		byStage[stage] = append(byStage[stage], request)
	}

	columns := make([]dto.BoardColumnDTO, 0, len(entities.AllStages))
	for _, stage := range entities.AllStages {
		group := byStage[stage]
		if group == nil {
			group = make([]dto.RequestDTO, 0)
		}
		columns = append(columns, dto.BoardColumnDTO{
			Stage:    stage.String(),
			Count:    len(group),
			Requests: group,
		})
	}
	return columns
}

type BoardServiceInterface interface {
	GetBoard(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.BoardColumnDTO, error)
}

type BoardService struct {
	requestRepo repositories.RequestRepositoryInterface
}

func NewBoardService(requestRepo repositories.RequestRepositoryInterface) BoardServiceInterface {
	return &BoardService{requestRepo: requestRepo}
}

func (s *BoardService) GetBoard(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.BoardColumnDTO, error) {
	requests, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return GroupByStage(requests), nil
}
