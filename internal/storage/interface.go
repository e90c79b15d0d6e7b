package storage

import (
	"context"

	"github.com/hangar7/flightlog/internal/model"
)

// Storage defines the interface for data persistence.
//
// ID sequences are owned by the store so that concurrent creates can never
// hand out the same identifier. Listings are returned in insertion order.
type Storage interface {
	// ID sequences
	NextAircraftID(ctx context.Context) (int64, error)
	NextFlightID(ctx context.Context) (int64, error)
	NextUserID(ctx context.Context) (int64, error)

	// Aircraft operations
	SaveAircraft(ctx context.Context, aircraft *model.Aircraft) error
	GetAircraft(ctx context.Context, id int64) (*model.Aircraft, error)
	ListAircraft(ctx context.Context) ([]*model.Aircraft, error)
	DeleteAircraft(ctx context.Context, id int64) error

	// Flight record operations
	SaveFlight(ctx context.Context, flight *model.FlightRecord) error
	GetFlight(ctx context.Context, id int64) (*model.FlightRecord, error)
	ListFlightsForAircraft(ctx context.Context, aircraftID int64) ([]*model.FlightRecord, error)
	ListAllFlights(ctx context.Context) ([]*model.FlightRecord, error)
	DeleteFlight(ctx context.Context, id int64) error
	DeleteFlightsForAircraft(ctx context.Context, aircraftID int64) error

	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}
