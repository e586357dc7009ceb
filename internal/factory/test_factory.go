package factory

import (
	"context"
	"time"

	"github.com/mcoot/tourneyview/internal/dependencies/mocks"
	"github.com/mcoot/tourneyview/internal/services/auth"
	"github.com/mcoot/tourneyview/internal/storage"
	"github.com/mcoot/tourneyview/internal/storage/memory"
	"github.com/mcoot/tourneyview/internal/testutil"
)

// Credentials used by NewTestApp
const (
	TestAdminUsername = "admin"
	TestAdminPassword = "test-password"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
}

// NewTestApp creates an App over fresh in-memory storage with a mocked clock
func NewTestApp() *TestApp {
	return NewTestAppWithStore(memory.New())
}

// NewTestAppWithStore creates an App over an existing store, which lets
// tests simulate a restart by building a second app on the same store
func NewTestAppWithStore(store storage.Store) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	mockIDs := mocks.NewMockIDs()

	app, err := newWithDependencies(context.Background(), store, mockClock, mockIDs, auth.Config{
		Username: TestAdminUsername,
		Password: TestAdminPassword,
	}, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}
