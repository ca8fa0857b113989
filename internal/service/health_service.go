package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
)

type healthRepository interface {
	Counts(ctx context.Context) (*models.HealthCounts, error)
}

// HealthService reports service liveness and dataset row counts.
type HealthService struct {
	repo   healthRepository
	logger *zap.Logger
}

// NewHealthService constructs a HealthService.
func NewHealthService(repo healthRepository, logger *zap.Logger) *HealthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{repo: repo, logger: logger}
}

// Check probes the database and returns the per-table counts.
func (s *HealthService) Check(ctx context.Context) (*models.HealthCounts, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		s.logger.Error("health check failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "database unreachable")
	}
	return counts, nil
}
