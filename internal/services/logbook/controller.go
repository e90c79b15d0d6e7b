package logbook

import (
	"context"

	"github.com/hangar7/flightlog/internal/dependencies/clock"
	"github.com/hangar7/flightlog/internal/model"
	"github.com/hangar7/flightlog/internal/storage"
)

// Controller owns aircraft and flight record bookkeeping: validation,
// normalization and referential integrity on top of the storage layer.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
}

// NewController creates a new logbook Controller
func NewController(storage storage.Storage, clock clock.Clock) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
	}
}

// FlightInput carries the raw field values of an add/edit flight request.
// All values arrive as strings (form or JSON input) and are parsed here,
// so callers never hand the core stringly-typed maps.
type FlightInput struct {
	Pilot           string
	Copilot         string
	DepartureTime   string
	ArrivalTime     string
	TotalFlownHours string
	DeparturePlace  string
	FlightType      string
	Observation     string
}

// flightFields is the validated, normalized form of a FlightInput
type flightFields struct {
	pilot       string
	copilot     string
	departure   model.TimeOfDay
	arrival     model.TimeOfDay
	hours       float64
	place       string
	flightType  string
	observation string
}

// validate parses and checks every field of the input, reporting the first
// failure. Nothing is persisted until validation has passed in full.
func (in FlightInput) validate() (flightFields, error) {
	var f flightFields
	var err error

	if in.Pilot == "" {
		return f, model.NewFieldError("pilot", model.ErrFieldRequired)
	}
	f.pilot = in.Pilot

	if in.Copilot == "" {
		return f, model.NewFieldError("copilot", model.ErrFieldRequired)
	}
	f.copilot = in.Copilot

	if f.departure, err = model.ParseTimeOfDay(in.DepartureTime); err != nil {
		return f, model.NewFieldError("departure_time", err)
	}
	if f.arrival, err = model.ParseTimeOfDay(in.ArrivalTime); err != nil {
		return f, model.NewFieldError("arrival_time", err)
	}

	if f.hours, err = model.ParseFlownHours(in.TotalFlownHours); err != nil {
		return f, model.NewFieldError("total_flown_hours", err)
	}

	if in.DeparturePlace == "" {
		return f, model.NewFieldError("departure_place", model.ErrFieldRequired)
	}
	f.place = in.DeparturePlace

	if in.FlightType == "" {
		return f, model.NewFieldError("flight_type", model.ErrFieldRequired)
	}
	f.flightType = in.FlightType

	// Observation is present-but-may-be-empty
	f.observation = in.Observation

	return f, nil
}

// CreateAircraft adds a new airframe to the logbook
func (c *Controller) CreateAircraft(ctx context.Context, name string) (*model.Aircraft, error) {
	if name == "" {
		return nil, model.NewFieldError("name", model.ErrFieldRequired)
	}

	id, err := c.storage.NextAircraftID(ctx)
	if err != nil {
		return nil, err
	}

	aircraft := &model.Aircraft{
		ID:        id,
		Name:      name,
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SaveAircraft(ctx, aircraft); err != nil {
		return nil, err
	}

	return aircraft, nil
}

// GetAircraft retrieves an aircraft by ID
func (c *Controller) GetAircraft(ctx context.Context, id int64) (*model.Aircraft, error) {
	return c.storage.GetAircraft(ctx, id)
}

// ListAircraft returns all aircraft in insertion order
func (c *Controller) ListAircraft(ctx context.Context) ([]*model.Aircraft, error) {
	return c.storage.ListAircraft(ctx)
}

// DeleteAircraft removes an aircraft and cascade-deletes its flight
// records, so no record can be left pointing at a dead airframe.
func (c *Controller) DeleteAircraft(ctx context.Context, id int64) error {
	if _, err := c.storage.GetAircraft(ctx, id); err != nil {
		return err
	}

	// Records first: a crash between the two deletes must never leave
	// flights without their aircraft
	if err := c.storage.DeleteFlightsForAircraft(ctx, id); err != nil {
		return err
	}

	return c.storage.DeleteAircraft(ctx, id)
}

// AddFlight validates the input and appends a flight record to the given
// aircraft. On any validation failure nothing is written.
func (c *Controller) AddFlight(ctx context.Context, aircraftID int64, input FlightInput) (*model.FlightRecord, error) {
	if _, err := c.storage.GetAircraft(ctx, aircraftID); err != nil {
		return nil, err
	}

	fields, err := input.validate()
	if err != nil {
		return nil, err
	}

	id, err := c.storage.NextFlightID(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	flight := &model.FlightRecord{
		ID:              id,
		AircraftID:      aircraftID,
		Pilot:           fields.pilot,
		Copilot:         fields.copilot,
		DepartureTime:   fields.departure,
		ArrivalTime:     fields.arrival,
		TotalFlownHours: fields.hours,
		DeparturePlace:  fields.place,
		FlightType:      fields.flightType,
		Observation:     fields.observation,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := c.storage.SaveFlight(ctx, flight); err != nil {
		return nil, err
	}

	return flight, nil
}

// EditFlight replaces the field values of an existing record. The aircraft
// reference is immutable; only field edits are in scope.
func (c *Controller) EditFlight(ctx context.Context, id int64, input FlightInput) (*model.FlightRecord, error) {
	existing, err := c.storage.GetFlight(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := input.validate()
	if err != nil {
		return nil, err
	}

	updated := &model.FlightRecord{
		ID:              existing.ID,
		AircraftID:      existing.AircraftID,
		Pilot:           fields.pilot,
		Copilot:         fields.copilot,
		DepartureTime:   fields.departure,
		ArrivalTime:     fields.arrival,
		TotalFlownHours: fields.hours,
		DeparturePlace:  fields.place,
		FlightType:      fields.flightType,
		Observation:     fields.observation,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       c.clock.Now(),
	}

	if err := c.storage.SaveFlight(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// GetFlight retrieves a flight record by ID
func (c *Controller) GetFlight(ctx context.Context, id int64) (*model.FlightRecord, error) {
	return c.storage.GetFlight(ctx, id)
}

// DeleteFlight removes a flight record
func (c *Controller) DeleteFlight(ctx context.Context, id int64) error {
	return c.storage.DeleteFlight(ctx, id)
}

// ListFlightsForAircraft returns an aircraft's flight records in insertion
// order. The aircraft must exist.
func (c *Controller) ListFlightsForAircraft(ctx context.Context, aircraftID int64) ([]*model.FlightRecord, error) {
	if _, err := c.storage.GetAircraft(ctx, aircraftID); err != nil {
		return nil, err
	}
	return c.storage.ListFlightsForAircraft(ctx, aircraftID)
}

// ListAllFlights returns every flight record across all aircraft, for the
// global consultation view
func (c *Controller) ListAllFlights(ctx context.Context) ([]*model.FlightRecord, error) {
	return c.storage.ListAllFlights(ctx)
}
