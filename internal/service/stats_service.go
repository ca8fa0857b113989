package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
)

type statsRepository interface {
	National(ctx context.Context) ([]models.RoadkillStat, error)
	ByProvince(ctx context.Context, province string) ([]models.RoadkillStat, error)
	ByCity(ctx context.Context, province, city string) ([]models.RoadkillStat, error)
	NationalTotal(ctx context.Context) (int, error)
	TopAnimals(ctx context.Context, limit int) ([]models.RoadkillStat, error)
}

// StatsService serves the pre-aggregated regional roadkill statistics loaded
// by the stats importer.
type StatsService struct {
	repo   statsRepository
	logger *zap.Logger
}

// NewStatsService constructs a StatsService.
func NewStatsService(repo statsRepository, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{repo: repo, logger: logger}
}

// National returns the per-species national aggregates.
func (s *StatsService) National(ctx context.Context) ([]models.AnimalStat, error) {
	stats, err := s.repo.National(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load national stats")
	}
	return toAnimalStats(stats), nil
}

// ByProvince returns the per-species aggregates for one province.
func (s *StatsService) ByProvince(ctx context.Context, province string) ([]models.AnimalStat, error) {
	if province == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "province is required")
	}
	stats, err := s.repo.ByProvince(ctx, province)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load province stats")
	}
	return toAnimalStats(stats), nil
}

// ByCity returns the per-species aggregates for one city.
func (s *StatsService) ByCity(ctx context.Context, province, city string) ([]models.AnimalStat, error) {
	if province == "" || city == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "province and city are required")
	}
	stats, err := s.repo.ByCity(ctx, province, city)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load city stats")
	}
	return toAnimalStats(stats), nil
}

// Summary returns the national total alongside the most affected species.
func (s *StatsService) Summary(ctx context.Context, topN int) (*models.StatsSummary, error) {
	total, err := s.repo.NationalTotal(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load stats total")
	}
	top, err := s.repo.TopAnimals(ctx, topN)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load top animals")
	}
	return &models.StatsSummary{TotalIncidents: total, TopAnimals: toAnimalStats(top)}, nil
}

func toAnimalStats(stats []models.RoadkillStat) []models.AnimalStat {
	out := make([]models.AnimalStat, 0, len(stats))
	for _, stat := range stats {
		out = append(out, models.AnimalStat{Animal: stat.AnimalType, Count: stat.IncidentCount})
	}
	return out
}
