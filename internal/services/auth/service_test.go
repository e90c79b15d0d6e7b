package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/hangar7/flightlog/internal/dependencies/mocks"
	"github.com/hangar7/flightlog/internal/model"
	"github.com/hangar7/flightlog/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	cfg := DefaultConfig()
	cfg.BcryptCost = bcrypt.MinCost // keep the suite fast
	s.service = New(s.storage, s.clock, cfg)
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "ann_pilot", "password1")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("ann_pilot", session.Username)
	s.NotZero(session.UserID)
}

func (s *ServiceSuite) TestRegisterStoresOnlyHash() {
	_, err := s.service.Register(s.ctx, "ann_pilot", "password1")
	s.Require().NoError(err)

	user, err := s.storage.GetUserByUsername(s.ctx, "ann_pilot")
	s.Require().NoError(err)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("password1", user.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")))
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, err := s.service.Register(s.ctx, "ann_pilot", "password1")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "ann_pilot", "otherpass")
	s.ErrorIs(err, ErrUsernameExists)

	// Exactly one account remains
	user, err := s.storage.GetUserByUsername(s.ctx, "ann_pilot")
	s.Require().NoError(err)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")))
}

func (s *ServiceSuite) TestRegisterValidatesUsernameLength() {
	_, err := s.service.Register(s.ctx, "abc", "password1")
	s.ErrorIs(err, ErrUsernameLength)

	_, err = s.service.Register(s.ctx, "this_name_is_too_long", "password1")
	s.ErrorIs(err, ErrUsernameLength)
}

func (s *ServiceSuite) TestRegisterValidatesPasswordLength() {
	_, err := s.service.Register(s.ctx, "ann_pilot", "short")
	s.ErrorIs(err, ErrPasswordLength)
}

func (s *ServiceSuite) TestRegisterLengthFailureCreatesNoUser() {
	_, err := s.service.Register(s.ctx, "abc", "password1")
	s.Require().Error(err)

	_, err = s.storage.GetUserByUsername(s.ctx, "abc")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "ann_pilot", "password1")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "ann_pilot", "password1")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Equal("ann_pilot", session.Username)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, _ = s.service.Register(s.ctx, "ann_pilot", "password1")

	_, err := s.service.Login(s.ctx, "ann_pilot", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "password1")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailureShapeDoesNotRevealUserExistence() {
	_, _ = s.service.Register(s.ctx, "ann_pilot", "password1")

	_, unknownErr := s.service.Login(s.ctx, "nobody", "password1")
	_, wrongPwErr := s.service.Login(s.ctx, "ann_pilot", "wrongpassword")

	s.Equal(unknownErr, wrongPwErr)
}

// Session tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, _ := s.service.Register(s.ctx, "ann_pilot", "password1")

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.UserID, validated.UserID)
}

func (s *ServiceSuite) TestValidateSessionFailsWithInvalidToken() {
	_, err := s.service.ValidateSession("invalid_token")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsWhenExpired() {
	session, _ := s.service.Register(s.ctx, "ann_pilot", "password1")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSessionRemovesSession() {
	session, _ := s.service.Register(s.ctx, "ann_pilot", "password1")

	s.service.InvalidateSession(session.Token)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSessionNoopForUnknownToken() {
	// Should not panic
	s.service.InvalidateSession("unknown_token")
}

func (s *ServiceSuite) TestGetUserSucceeds() {
	session, _ := s.service.Register(s.ctx, "ann_pilot", "password1")

	user, err := s.service.GetUser(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal("ann_pilot", user.Username)
}

func (s *ServiceSuite) TestCleanExpiredSessionsRemovesExpired() {
	session1, _ := s.service.Register(s.ctx, "ann_pilot", "password1")

	s.clock.Advance(25 * time.Hour)

	session2, _ := s.service.Login(s.ctx, "ann_pilot", "password1")

	s.service.CleanExpiredSessions()

	_, err := s.service.ValidateSession(session1.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(session2.Token)
	s.NoError(err)
}
