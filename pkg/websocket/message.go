package websocket

import "time"

// Envelope wraps every message pushed to a connected board so the frontend
// can dispatch on the type field.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// BoardRefreshPayload tells the kanban board to refetch: a request moved
// stage.
type BoardRefreshPayload struct {
	RequestID string `json:"requestId"`
	OldStage  string `json:"oldStage"`
	NewStage  string `json:"newStage"`
}
