package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAircraftRequest is the request body for adding an aircraft
type CreateAircraftRequest struct {
	Name string `json:"name"`
}

// FlightRequest is the request body for adding or editing a flight record.
// Field values are raw strings, parsed and validated by the logbook core.
type FlightRequest struct {
	Pilot           string `json:"pilot"`
	Copilot         string `json:"copilot"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	TotalFlownHours string `json:"total_flown_hours"`
	DeparturePlace  string `json:"departure_place"`
	FlightType      string `json:"flight_type"`
	Observation     string `json:"observation"`
}
