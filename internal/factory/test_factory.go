package factory

import (
	"context"
	"time"

	"github.com/mcoot/blockhive/internal/dependencies/mocks"
	"github.com/mcoot/blockhive/internal/services/game"
	"github.com/mcoot/blockhive/internal/storage/memory"
	"github.com/mcoot/blockhive/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
	MockScheduler *mocks.MockScheduler
	MemoryStorage *memory.Storage
}

// NewTestApp creates an App at default settings with mocked dependencies.
// With an empty random queue every dealt piece is a gold single hex.
func NewTestApp() (*TestApp, error) {
	return NewTestAppWithConfig(game.DefaultConfig())
}

// NewTestAppWithConfig creates a test App. deal is queued on the mock random
// before the first tray is drawn, as (shape index, colour index) pairs.
func NewTestAppWithConfig(cfg game.Config, deal ...int) (*TestApp, error) {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockRandom.QueueIntn(deal...)
	mockScheduler := mocks.NewMockScheduler()

	app, err := newWithDependencies(context.Background(), store, mockClock, mockRandom, mockScheduler, cfg, testutil.NopLogger())
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		MockScheduler: mockScheduler,
		MemoryStorage: store,
	}, nil
}
