package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/safari-for-safety/roadkill-api/internal/models"
)

// IncidentRepository reads the bulk-imported official incident records.
type IncidentRepository struct {
	db *sqlx.DB
}

// NewIncidentRepository creates a new instance of IncidentRepository.
func NewIncidentRepository(db *sqlx.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// ListAll returns every official incident ordered by incident date descending.
func (r *IncidentRepository) ListAll(ctx context.Context) ([]models.Incident, error) {
	const query = `SELECT id, serial_number, incident_date, incident_time, jurisdiction, latitude, longitude, created_at
		FROM roadkill_incidents
		ORDER BY incident_date DESC`
	var incidents []models.Incident
	if err := r.db.SelectContext(ctx, &incidents, query); err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return incidents, nil
}

// ListByRegion returns official incidents whose jurisdiction contains the
// given region string (case-insensitive substring, no normalization of
// administrative-name variants).
func (r *IncidentRepository) ListByRegion(ctx context.Context, region string) ([]models.Incident, error) {
	const query = `SELECT id, serial_number, incident_date, incident_time, jurisdiction, latitude, longitude, created_at
		FROM roadkill_incidents
		WHERE jurisdiction ILIKE $1
		ORDER BY incident_date DESC`
	var incidents []models.Incident
	if err := r.db.SelectContext(ctx, &incidents, query, "%"+region+"%"); err != nil {
		return nil, fmt.Errorf("list incidents by region: %w", err)
	}
	return incidents, nil
}

// CountByRegionToken groups official incidents by the first
// whitespace-delimited token of the jurisdiction string.
func (r *IncidentRepository) CountByRegionToken(ctx context.Context) ([]models.BucketCount, error) {
	const query = `SELECT SPLIT_PART(jurisdiction, ' ', 1) AS bucket, COUNT(*) AS count
		FROM roadkill_incidents
		WHERE jurisdiction IS NOT NULL
		GROUP BY SPLIT_PART(jurisdiction, ' ', 1)`
	var counts []models.BucketCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count incidents by region token: %w", err)
	}
	return counts, nil
}

// CountByMonth groups official incidents by YYYY-MM, optionally bounded by the
// given date range.
func (r *IncidentRepository) CountByMonth(ctx context.Context, rng models.DateRange) ([]models.BucketCount, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT TO_CHAR(incident_date, 'YYYY-MM') AS bucket, COUNT(*) AS count
		FROM roadkill_incidents
		WHERE 1=1`)
	var args []interface{}
	if rng.Start != nil {
		args = append(args, *rng.Start)
		builder.WriteString(fmt.Sprintf(" AND incident_date >= $%d", len(args)))
	}
	if rng.End != nil {
		args = append(args, *rng.End)
		builder.WriteString(fmt.Sprintf(" AND incident_date <= $%d", len(args)))
	}
	builder.WriteString(" GROUP BY TO_CHAR(incident_date, 'YYYY-MM')")

	var counts []models.BucketCount
	if err := r.db.SelectContext(ctx, &counts, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("count incidents by month: %w", err)
	}
	return counts, nil
}
