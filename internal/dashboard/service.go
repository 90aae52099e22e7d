package dashboard

import (
	"log/slog"

	"github.com/ems-project/ems-backend/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Statistics() (*Statistics, error) {
	stats, err := s.repo.Statistics()
	if err != nil {
		s.logger.Error("failed to compute dashboard statistics", "error", err)
		return nil, internal.NewInternalError("failed to compute dashboard statistics", err)
	}
	return stats, nil
}
