package dto

type CalendarDayDTO struct {
	Date     string       `json:"date"`
	Requests []RequestDTO `json:"requests"`
}

type CalendarMonthDTO struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Days  []CalendarDayDTO `json:"days"`
}
