package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/websocket"
)

// BoardRefreshListener pushes a refresh signal to every connected dashboard
// whenever a request changes stage, so open kanban boards stay current.
type BoardRefreshListener struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewBoardRefreshListener(hub *websocket.Hub, logger *zap.Logger) *BoardRefreshListener {
	return &BoardRefreshListener{hub: hub, logger: logger}
}

func (l *BoardRefreshListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(services.EventStageChanged, l.Handle)
}

func (l *BoardRefreshListener) Handle(ctx context.Context, event eventbus.Event) error {
	stageChanged, ok := event.(services.StageChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type for %q", event.Name())
	}

	payload := websocket.BoardRefreshPayload{
		RequestID: stageChanged.RequestID.String(),
		OldStage:  string(stageChanged.OldStage),
		NewStage:  string(stageChanged.NewStage),
	}

	l.logger.Debug("broadcasting board refresh",
		zap.String("requestID", payload.RequestID),
		zap.String("newStage", payload.NewStage),
	)

	return l.hub.Broadcast("board_refresh", payload)
}
