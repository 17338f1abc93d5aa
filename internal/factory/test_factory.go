package factory

import (
	"log/slog"
	"time"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
)

// TestSeed is used by NewTestApp when the config leaves Seed unset
const TestSeed uint64 = 20240101

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App with a mocked clock and a fixed seed.
// Placement needs real variety, so randomness stays seeded rather than queued.
func NewTestApp(cfg Config, logger *slog.Logger) (*TestApp, error) {
	s, err := parseConfig(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = TestSeed
	}
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies(s, mockClock, random.New(seed), logger)
	if err != nil {
		return nil, err
	}
	app.Seed = seed

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}, nil
}
