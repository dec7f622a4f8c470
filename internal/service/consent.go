package service

import (
	"fmt"
	"sync"

	"sessionbot/internal/repository"

	"go.uber.org/zap"
)

// ConsentService tracks which users accepted the terms in this process
// and keeps the user registry up to date
type ConsentService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger

	// accepted is never persisted, it starts empty on every restart
	accepted map[int64]struct{}
	mu       sync.RWMutex
}

// NewConsentService creates a new consent service
func NewConsentService(userRepo repository.UserRepository, logger *zap.Logger) *ConsentService {
	return &ConsentService{
		userRepo: userRepo,
		logger:   logger,
		accepted: make(map[int64]struct{}),
	}
}

// RegisterIfAbsent adds the user to the registry on first contact
func (s *ConsentService) RegisterIfAbsent(userID int64) error {
	created, err := s.userRepo.EnsureUserExists(userID)
	if err != nil {
		return fmt.Errorf("failed to register user %d: %w", userID, err)
	}
	if created {
		s.logger.Info("New user registered", zap.Int64("user_id", userID))
	}
	return nil
}

// Accept registers the user and marks them as having accepted the terms.
// Only registered users are ever marked.
func (s *ConsentService) Accept(userID int64) error {
	if err := s.RegisterIfAbsent(userID); err != nil {
		return err
	}

	s.mu.Lock()
	s.accepted[userID] = struct{}{}
	s.mu.Unlock()
	return nil
}

// HasAccepted reports whether the user accepted the terms since startup
func (s *ConsentService) HasAccepted(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.accepted[userID]
	return ok
}
