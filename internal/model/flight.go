package model

import "time"

// FlightRecord is one logged flight leg tied to an aircraft
type FlightRecord struct {
	ID              int64
	AircraftID      int64 // set at creation, never re-pointed
	Pilot           string
	Copilot         string
	DepartureTime   TimeOfDay
	ArrivalTime     TimeOfDay
	TotalFlownHours float64
	DeparturePlace  string
	FlightType      string
	Observation     string // may be empty
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
