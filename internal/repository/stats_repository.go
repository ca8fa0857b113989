package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/safari-for-safety/roadkill-api/internal/models"
)

// StatsRepository reads the imported per-species totals and the pre-aggregated
// regional roadkill statistics.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// AnimalTypeCounts returns the imported per-species national totals as
// aggregation buckets for merging with live report counts.
func (r *StatsRepository) AnimalTypeCounts(ctx context.Context) ([]models.BucketCount, error) {
	const query = `SELECT species_name AS bucket, incident_count AS count FROM animal_type_stats`
	var counts []models.BucketCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("list animal type counts: %w", err)
	}
	return counts, nil
}

// National returns the national per-species aggregate rows, count descending.
func (r *StatsRepository) National(ctx context.Context) ([]models.RoadkillStat, error) {
	const query = `SELECT id, province, city, animal_type, incident_count
		FROM roadkill_stats
		WHERE province IS NULL AND city IS NULL
		ORDER BY incident_count DESC`
	var stats []models.RoadkillStat
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("list national stats: %w", err)
	}
	return stats, nil
}

// ByProvince returns the province-level aggregate rows, count descending.
func (r *StatsRepository) ByProvince(ctx context.Context, province string) ([]models.RoadkillStat, error) {
	const query = `SELECT id, province, city, animal_type, incident_count
		FROM roadkill_stats
		WHERE province = $1 AND city IS NULL
		ORDER BY incident_count DESC`
	var stats []models.RoadkillStat
	if err := r.db.SelectContext(ctx, &stats, query, province); err != nil {
		return nil, fmt.Errorf("list province stats: %w", err)
	}
	return stats, nil
}

// ByCity returns the city-level aggregate rows, count descending.
func (r *StatsRepository) ByCity(ctx context.Context, province, city string) ([]models.RoadkillStat, error) {
	const query = `SELECT id, province, city, animal_type, incident_count
		FROM roadkill_stats
		WHERE province = $1 AND city = $2
		ORDER BY incident_count DESC`
	var stats []models.RoadkillStat
	if err := r.db.SelectContext(ctx, &stats, query, province, city); err != nil {
		return nil, fmt.Errorf("list city stats: %w", err)
	}
	return stats, nil
}

// NationalTotal sums the national aggregate counts.
func (r *StatsRepository) NationalTotal(ctx context.Context) (int, error) {
	const query = `SELECT COALESCE(SUM(incident_count), 0)
		FROM roadkill_stats
		WHERE province IS NULL AND city IS NULL`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("national stats total: %w", err)
	}
	return total, nil
}

// TopAnimals returns the most affected species nationally.
func (r *StatsRepository) TopAnimals(ctx context.Context, limit int) ([]models.RoadkillStat, error) {
	if limit <= 0 {
		limit = 5
	}
	const query = `SELECT id, province, city, animal_type, incident_count
		FROM roadkill_stats
		WHERE province IS NULL AND city IS NULL
		ORDER BY incident_count DESC
		LIMIT $1`
	var stats []models.RoadkillStat
	if err := r.db.SelectContext(ctx, &stats, query, limit); err != nil {
		return nil, fmt.Errorf("list top animals: %w", err)
	}
	return stats, nil
}
