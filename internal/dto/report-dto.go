package dto

// CountRowDTO is one bar/slice of a grouped count report.
type CountRowDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CompletionRowDTO is one month bucket of the request-completion trend.
// Remaining is always Total - Completed.
type CompletionRowDTO struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Remaining int    `json:"remaining"`
	Total     int    `json:"total"`
}

type ReportDTO struct {
	Kind  string             `json:"kind"`
	Rows  []CountRowDTO      `json:"rows"`
	Trend []CompletionRowDTO `json:"trend,omitempty"`
}
