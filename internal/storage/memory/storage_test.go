package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hangar7/flightlog/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// ID sequence tests

func (s *StorageSuite) TestSequencesAreMonotonic() {
	first, err := s.storage.NextAircraftID(s.ctx)
	s.Require().NoError(err)
	second, err := s.storage.NextAircraftID(s.ctx)
	s.Require().NoError(err)
	s.Equal(first+1, second)
}

func (s *StorageSuite) TestSequencesAreIndependent() {
	aircraftID, _ := s.storage.NextAircraftID(s.ctx)
	flightID, _ := s.storage.NextFlightID(s.ctx)
	userID, _ := s.storage.NextUserID(s.ctx)

	s.Equal(int64(1), aircraftID)
	s.Equal(int64(1), flightID)
	s.Equal(int64(1), userID)
}

// Aircraft tests

func (s *StorageSuite) TestSaveAndGetAircraft() {
	aircraft := &model.Aircraft{ID: 1, Name: "Cessna 172", CreatedAt: time.Now()}

	err := s.storage.SaveAircraft(s.ctx, aircraft)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAircraft(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Cessna 172", retrieved.Name)
}

func (s *StorageSuite) TestGetAircraftNotFound() {
	_, err := s.storage.GetAircraft(s.ctx, 42)
	s.ErrorIs(err, model.ErrAircraftNotFound)
}

func (s *StorageSuite) TestListAircraftInsertionOrder() {
	_ = s.storage.SaveAircraft(s.ctx, &model.Aircraft{ID: 1, Name: "First"})
	_ = s.storage.SaveAircraft(s.ctx, &model.Aircraft{ID: 3, Name: "Third"})
	_ = s.storage.SaveAircraft(s.ctx, &model.Aircraft{ID: 2, Name: "Second"})

	list, err := s.storage.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("First", list[0].Name)
	s.Equal("Second", list[1].Name)
	s.Equal("Third", list[2].Name)
}

func (s *StorageSuite) TestDeleteAircraft() {
	_ = s.storage.SaveAircraft(s.ctx, &model.Aircraft{ID: 1, Name: "Cessna 172"})

	err := s.storage.DeleteAircraft(s.ctx, 1)
	s.Require().NoError(err)

	_, err = s.storage.GetAircraft(s.ctx, 1)
	s.ErrorIs(err, model.ErrAircraftNotFound)
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
		ArrivalTime:     model.TimeOfDay{Hour: 11, Minute: 0},
		TotalFlownHours: 1.5,
		DeparturePlace:  "SAEZ",
		FlightType:      "training",
	}
}

func (s *StorageSuite) TestSaveAndGetFlight() {
	err := s.storage.SaveFlight(s.ctx, s.flight(1, 1))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetFlight(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Reyes", retrieved.Pilot)
	s.Equal(int64(1), retrieved.AircraftID)
}

func (s *StorageSuite) TestGetFlightNotFound() {
	_, err := s.storage.GetFlight(s.ctx, 42)
	s.ErrorIs(err, model.ErrFlightNotFound)
}

func (s *StorageSuite) TestListFlightsForAircraftFiltersAndOrders() {
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

	remaining, err := s.storage.ListAllFlights(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(remaining, 1)
	s.Equal(int64(3), remaining[0].ID)
}

// User tests

func (s *StorageSuite) TestSaveAndGetUserByUsername() {
	user := &model.User{ID: 1, Username: "ann", PasswordHash: "hash"}
	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "ann")
	s.Require().NoError(err)
	s.Equal(int64(1), retrieved.ID)
	s.Equal("hash", retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetUserByUsernameIsCaseSensitive() {
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: 1, Username: "ann"})

	_, err := s.storage.GetUserByUsername(s.ctx, "Ann")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}
