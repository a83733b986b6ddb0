package entities

import (
	"time"

	"github.com/google/uuid"
)

// RequestHistoryEntry is one immutable audit record of a stage transition.
// Entries are append-only; there is no update or delete path.
type RequestHistoryEntry struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	OldStage  Stage
	NewStage  Stage
	ChangedBy uuid.UUID
	ChangedAt time.Time
}
