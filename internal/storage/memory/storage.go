package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hangar7/flightlog/internal/model"
	"github.com/hangar7/flightlog/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	aircraftSeq int64
	flightSeq   int64
	userSeq     int64

	aircraft      map[int64]*model.Aircraft
	flights       map[int64]*model.FlightRecord
	users         map[int64]*model.User
	usernameIndex map[string]int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		aircraft:      make(map[int64]*model.Aircraft),
		flights:       make(map[int64]*model.FlightRecord),
		users:         make(map[int64]*model.User),
		usernameIndex: make(map[string]int64),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// ID sequences

func (s *Storage) NextAircraftID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aircraftSeq++
	return s.aircraftSeq, nil
}

func (s *Storage) NextFlightID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flightSeq++
	return s.flightSeq, nil
}

func (s *Storage) NextUserID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSeq++
	return s.userSeq, nil
}

// Aircraft operations

func (s *Storage) SaveAircraft(ctx context.Context, aircraft *model.Aircraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aircraft[aircraft.ID] = aircraft
	return nil
}

func (s *Storage) GetAircraft(ctx context.Context, id int64) (*model.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	aircraft, ok := s.aircraft[id]
	if !ok {
		return nil, model.ErrAircraftNotFound
	}
	return aircraft, nil
}

func (s *Storage) ListAircraft(ctx context.Context) ([]*model.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*model.Aircraft, 0, len(s.aircraft))
	for _, a := range s.aircraft {
		list = append(list, a)
	}
	// IDs are monotonic, so ID order is insertion order
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Storage) DeleteAircraft(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.aircraft[id]; !ok {
		return model.ErrAircraftNotFound
	}
	delete(s.aircraft, id)
	return nil
}

// Flight record operations

func (s *Storage) SaveFlight(ctx context.Context, flight *model.FlightRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights[flight.ID] = flight
	return nil
}

func (s *Storage) GetFlight(ctx context.Context, id int64) (*model.FlightRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flight, ok := s.flights[id]
	if !ok {
		return nil, model.ErrFlightNotFound
	}
	return flight, nil
}

func (s *Storage) ListFlightsForAircraft(ctx context.Context, aircraftID int64) ([]*model.FlightRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*model.FlightRecord, 0)
	for _, f := range s.flights {
		if f.AircraftID == aircraftID {
			list = append(list, f)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Storage) ListAllFlights(ctx context.Context) ([]*model.FlightRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*model.FlightRecord, 0, len(s.flights))
	for _, f := range s.flights {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Storage) DeleteFlight(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[id]; !ok {
		return model.ErrFlightNotFound
	}
	delete(s.flights, id)
	return nil
}

func (s *Storage) DeleteFlightsForAircraft(ctx context.Context, aircraftID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, f := range s.flights {
		if f.AircraftID == aircraftID {
			delete(s.flights, id)
		}
	}
	return nil
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}
