package model

import "time"

// ScheduleDay is one day of the event programme, fully localized fixture data.
type ScheduleDay struct {
	Day    int              `json:"day"`
	Date   time.Time        `json:"date"`
	Events []*ScheduleEvent `json:"events"`
}

type ScheduleEvent struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
