package testutil

import (
	"sessionbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, username string) domain.User {
	return domain.User{
		ID:       userID,
		Username: username,
	}
}
