package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Aircraft:
		o.printAircraft(v)
	case []Aircraft:
		o.printAircraftList(v)
	case FlightRecord:
		o.printFlight(v)
	case []FlightRecord:
		o.printFlightList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AuthResult is the response of register/login
type AuthResult struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// Aircraft response type
type Aircraft struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// FlightRecord response type
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

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (#%d)\n", u.Username, u.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("User: %s (#%d)\n", a.Username, a.UserID)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printAircraft(a Aircraft) {
	fmt.Printf("Aircraft: %s (#%d)\n", a.Name, a.ID)
	fmt.Printf("Created: %s\n", a.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printAircraftList(list []Aircraft) {
	if len(list) == 0 {
		fmt.Println("No aircraft registered")
		return
	}
	fmt.Printf("Aircraft (%d):\n", len(list))
	for _, a := range list {
		fmt.Printf("  #%d  %s\n", a.ID, a.Name)
	}
}

func (o *Output) printFlight(f FlightRecord) {
	fmt.Printf("Flight #%d (aircraft #%d)\n", f.ID, f.AircraftID)
	fmt.Printf("Pilot: %s\n", f.Pilot)
	fmt.Printf("Copilot: %s\n", f.Copilot)
	fmt.Printf("Departure: %s from %s\n", f.DepartureTime, f.DeparturePlace)
	fmt.Printf("Arrival: %s\n", f.ArrivalTime)
	fmt.Printf("Hours: %g\n", f.TotalFlownHours)
	fmt.Printf("Type: %s\n", f.FlightType)
	if f.Observation != "" {
		fmt.Printf("Observation: %s\n", f.Observation)
	}
}

func (o *Output) printFlightList(list []FlightRecord) {
	if len(list) == 0 {
		fmt.Println("No flight records")
		return
	}
	fmt.Printf("Flight records (%d):\n", len(list))
	for _, f := range list {
		fmt.Printf("  #%d  aircraft #%d  %s  %s-%s  %gh  %s\n",
			f.ID, f.AircraftID, f.Pilot, f.DepartureTime, f.ArrivalTime, f.TotalFlownHours, f.FlightType)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
