package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/safari-for-safety/roadkill-api/internal/models"
)

// HealthRepository counts rows per table for the health endpoint.
type HealthRepository struct {
	db *sqlx.DB
}

// NewHealthRepository creates a new instance of HealthRepository.
func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Counts returns the per-table row counts, probing DB connectivity as a side
// effect.
func (r *HealthRepository) Counts(ctx context.Context) (*models.HealthCounts, error) {
	counts := &models.HealthCounts{}
	for _, probe := range []struct {
		table string
		dest  *int
	}{
		{"roadkill_incidents", &counts.RoadkillIncidents},
		{"animal_type_stats", &counts.AnimalTypes},
		{"weather_data", &counts.Weather},
		{"users", &counts.Users},
		{"roadkill_reports", &counts.UserReports},
	} {
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", probe.table)
		if err := r.db.GetContext(ctx, probe.dest, query); err != nil {
			return nil, fmt.Errorf("count %s: %w", probe.table, err)
		}
	}
	return counts, nil
}
