package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hangar7/flightlog/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// ID sequence tests

func (s *StorageSuite) TestSequencesAreMonotonic() {
	first, err := s.storage.NextFlightID(s.ctx)
	s.Require().NoError(err)
	second, err := s.storage.NextFlightID(s.ctx)
	s.Require().NoError(err)
	s.Equal(first+1, second)
}

func (s *StorageSuite) TestSequencesAreIndependent() {
	aircraftID, _ := s.storage.NextAircraftID(s.ctx)
	userID, _ := s.storage.NextUserID(s.ctx)

	s.Equal(int64(1), aircraftID)
	s.Equal(int64(1), userID)
}

// Aircraft tests

func (s *StorageSuite) TestSaveAndGetAircraft() {
	aircraft := &model.Aircraft{ID: 1, Name: "Piper PA-28", CreatedAt: time.Now().UTC()}

	err := s.storage.SaveAircraft(s.ctx, aircraft)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAircraft(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(aircraft.ID, retrieved.ID)
	s.Equal(aircraft.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetAircraftNotFound() {
	_, err := s.storage.GetAircraft(s.ctx, 42)
	s.ErrorIs(err, model.ErrAircraftNotFound)
}

func (s *StorageSuite) TestListAircraftInsertionOrder() {
	_ = s.storage.SaveAircraft(s.ctx, &model.Aircraft{ID: 2, Name: "Second"})
	_ = s.storage.SaveAircraft(s.ctx, &model.Aircraft{ID: 1, Name: "First"})

	list, err := s.storage.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("First", list[0].Name)
	s.Equal("Second", list[1].Name)
}

func (s *StorageSuite) TestDeleteAircraft() {
	_ = s.storage.SaveAircraft(s.ctx, &model.Aircraft{ID: 1, Name: "Piper PA-28"})

	err := s.storage.DeleteAircraft(s.ctx, 1)
	s.Require().NoError(err)

	_, err = s.storage.GetAircraft(s.ctx, 1)
	s.ErrorIs(err, model.ErrAircraftNotFound)

	list, err := s.storage.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *StorageSuite) TestDeleteAircraftNotFound() {
	err := s.storage.DeleteAircraft(s.ctx, 42)
	s.ErrorIs(err, model.ErrAircraftNotFound)
}

// Flight record tests

func (s *StorageSuite) flight(id, aircraftID int64) *model.FlightRecord {
	return &model.FlightRecord{
		ID:              id,
		AircraftID:      aircraftID,
		Pilot:           "Reyes",
		Copilot:         "Duarte",
		DepartureTime:   model.TimeOfDay{Hour: 9, Minute: 30},
		ArrivalTime:     model.TimeOfDay{Hour: 11, Minute: 15, Second: 30},
		TotalFlownHours: 1.75,
		DeparturePlace:  "SAEZ",
		FlightType:      "training",
		Observation:     "smooth leg",
	}
}

func (s *StorageSuite) TestSaveAndGetFlightRoundTripsTimes() {
	err := s.storage.SaveFlight(s.ctx, s.flight(1, 1))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetFlight(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(model.TimeOfDay{Hour: 9, Minute: 30}, retrieved.DepartureTime)
	s.Equal(model.TimeOfDay{Hour: 11, Minute: 15, Second: 30}, retrieved.ArrivalTime)
	s.Equal(1.75, retrieved.TotalFlownHours)
}

func (s *StorageSuite) TestGetFlightNotFound() {
	_, err := s.storage.GetFlight(s.ctx, 42)
	s.ErrorIs(err, model.ErrFlightNotFound)
}

func (s *StorageSuite) TestListFlightsForAircraft() {
	_ = s.storage.SaveFlight(s.ctx, s.flight(1, 1))
	_ = s.storage.SaveFlight(s.ctx, s.flight(2, 2))
	_ = s.storage.SaveFlight(s.ctx, s.flight(3, 1))

	list, err := s.storage.ListFlightsForAircraft(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(int64(1), list[0].ID)
	s.Equal(int64(3), list[1].ID)
}

func (s *StorageSuite) TestListAllFlights() {
	_ = s.storage.SaveFlight(s.ctx, s.flight(2, 2))
	_ = s.storage.SaveFlight(s.ctx, s.flight(1, 1))

	list, err := s.storage.ListAllFlights(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(int64(1), list[0].ID)
	s.Equal(int64(2), list[1].ID)
}

func (s *StorageSuite) TestDeleteFlightRemovesIndexes() {
	_ = s.storage.SaveFlight(s.ctx, s.flight(1, 1))

	err := s.storage.DeleteFlight(s.ctx, 1)
	s.Require().NoError(err)

	_, err = s.storage.GetFlight(s.ctx, 1)
	s.ErrorIs(err, model.ErrFlightNotFound)

	list, err := s.storage.ListFlightsForAircraft(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *StorageSuite) TestDeleteFlightNotFound() {
	err := s.storage.DeleteFlight(s.ctx, 42)
	s.ErrorIs(err, model.ErrFlightNotFound)
}

func (s *StorageSuite) TestDeleteFlightsForAircraft() {
	_ = s.storage.SaveFlight(s.ctx, s.flight(1, 1))
	_ = s.storage.SaveFlight(s.ctx, s.flight(2, 1))
	_ = s.storage.SaveFlight(s.ctx, s.flight(3, 2))

	err := s.storage.DeleteFlightsForAircraft(s.ctx, 1)
	s.Require().NoError(err)

	all, err := s.storage.ListAllFlights(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(int64(3), all[0].ID)
}

// User tests

func (s *StorageSuite) TestSaveAndGetUserByUsername() {
	user := &model.User{ID: 1, Username: "ann", PasswordHash: "hash123"}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "ann")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}
