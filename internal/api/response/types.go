package response

import (
	"time"

	"github.com/hangar7/flightlog/internal/model"
	"github.com/hangar7/flightlog/internal/services/auth"
)

// User represents a user in API responses. The password hash never leaves
// the model layer.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		UserID:       s.UserID,
		Username:     s.Username,
		SessionToken: s.Token,
	}
}

// Aircraft represents an aircraft in API responses
type Aircraft struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AircraftFromModel converts a model.Aircraft
func AircraftFromModel(a *model.Aircraft) Aircraft {
	return Aircraft{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// AircraftListFromModel converts a slice of model.Aircraft
func AircraftListFromModel(list []*model.Aircraft) []Aircraft {
	out := make([]Aircraft, len(list))
	for i, a := range list {
		out[i] = AircraftFromModel(a)
	}
	return out
}

// FlightRecord represents a flight record in API responses.
// Times are rendered in canonical HH:MM:SS form.
type FlightRecord struct {
	ID              int64     `json:"id"`
	AircraftID      int64     `json:"aircraft_id"`
	Pilot           string    `json:"pilot"`
	Copilot         string    `json:"copilot"`
	DepartureTime   string    `json:"departure_time"`
	ArrivalTime     string    `json:"arrival_time"`
	TotalFlownHours float64   `json:"total_flown_hours"`
	DeparturePlace  string    `json:"departure_place"`
	FlightType      string    `json:"flight_type"`
	Observation     string    `json:"observation"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FlightRecordFromModel converts a model.FlightRecord
func FlightRecordFromModel(f *model.FlightRecord) FlightRecord {
	return FlightRecord{
		ID:              f.ID,
		AircraftID:      f.AircraftID,
		Pilot:           f.Pilot,
		Copilot:         f.Copilot,
		DepartureTime:   f.DepartureTime.String(),
		ArrivalTime:     f.ArrivalTime.String(),
		TotalFlownHours: f.TotalFlownHours,
		DeparturePlace:  f.DeparturePlace,
		FlightType:      f.FlightType,
		Observation:     f.Observation,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// FlightRecordListFromModel converts a slice of model.FlightRecord
func FlightRecordListFromModel(list []*model.FlightRecord) []FlightRecord {
	out := make([]FlightRecord, len(list))
	for i, f := range list {
		out[i] = FlightRecordFromModel(f)
	}
	return out
}
