package service

import (
	"errors"

	"sessionbot/internal/repository"

	"go.uber.org/zap"
)

// ErrAccessDenied is returned when a non-admin asks for statistics
var ErrAccessDenied = errors.New("access denied")

// StatsService handles admin statistics
type StatsService struct {
	userRepo repository.UserRepository
	adminID  int64
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(userRepo repository.UserRepository, adminID int64, logger *zap.Logger) *StatsService {
	return &StatsService{
		userRepo: userRepo,
		adminID:  adminID,
		logger:   logger,
	}
}

func (s *StatsService) checkAdmin(requesterID int64, request string) error {
	if s.adminID == 0 || requesterID != s.adminID {
		s.logger.Warn("Rejected admin request",
			zap.String("request", request),
			zap.Int64("user_id", requesterID),
		)
		return ErrAccessDenied
	}
	return nil
}

// UsersCount returns the number of registered users if requester is the admin
func (s *StatsService) UsersCount(requesterID int64) (int, error) {
	if err := s.checkAdmin(requesterID, "users_count"); err != nil {
		return 0, err
	}

	count, err := s.userRepo.CountUsers()
	if err != nil {
		s.logger.Error("Failed to count users", zap.Error(err))
		return 0, err
	}

	return count, nil
}

// UserIDs returns all registered user IDs if requester is the admin
func (s *StatsService) UserIDs(requesterID int64) ([]int64, error) {
	if err := s.checkAdmin(requesterID, "user_ids"); err != nil {
		return nil, err
	}

	ids, err := s.userRepo.ListUsers()
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	return ids, nil
}
