package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hangar7/flightlog/internal/dependencies/mocks"
	"github.com/hangar7/flightlog/internal/services/auth"
	"github.com/hangar7/flightlog/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Uses the minimum bcrypt cost so auth-heavy tests stay fast.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	authCfg := auth.DefaultConfig()
	authCfg.BcryptCost = bcrypt.MinCost

	app := newWithDependencies(store, mockClock, authCfg)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
