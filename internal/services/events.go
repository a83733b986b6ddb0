package services

import (
	"github.com/google/uuid"

	"gearguard/internal/entities"
)

const EventStageChanged = "request.stage_changed"

// StageChangedEvent is published after a transition commits so the kanban
// board can be told to refresh.
type StageChangedEvent struct {
	RequestID uuid.UUID
	OldStage  entities.Stage
	NewStage  entities.Stage
	ChangedBy uuid.UUID
}

func (e StageChangedEvent) Name() string {
	return EventStageChanged
}
