package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/safari-for-safety/roadkill-api/internal/models"
)

// visibleStatuses filters the combined view to non-rejected reports.
const visibleStatuses = `(status = 'approved' OR status = 'pending')`

// ReportRepository provides database access for user-submitted reports.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ListVisible returns every non-rejected report ordered by incident date
// descending, for merging into the combined incident view.
func (r *ReportRepository) ListVisible(ctx context.Context) ([]models.Report, error) {
	const query = `SELECT id, user_id, animal_type, location_address, latitude, longitude, incident_date, incident_time,
			description, photo_url, status, temperature, precipitation, wind_speed, humidity, weather_condition, created_at
		FROM roadkill_reports
		WHERE ` + visibleStatuses + `
		ORDER BY incident_date DESC`
	var reports []models.Report
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("list visible reports: %w", err)
	}
	return reports, nil
}

// List returns reports joined with their submitter's username, optionally
// filtered by status, newest first.
func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT r.id, r.user_id, r.animal_type, r.location_address, r.latitude, r.longitude,
			r.incident_date, r.incident_time, r.description, r.photo_url, r.status, r.temperature, r.precipitation,
			r.wind_speed, r.humidity, r.weather_condition, r.created_at, u.username
		FROM roadkill_reports r
		LEFT JOIN users u ON r.user_id = u.id`)
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		builder.WriteString(fmt.Sprintf(" WHERE r.status = $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit)
	builder.WriteString(fmt.Sprintf(" ORDER BY r.created_at DESC LIMIT $%d", len(args)))
	args = append(args, offset)
	builder.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	var reports []models.Report
	if err := r.db.SelectContext(ctx, &reports, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// FindByID returns a single report joined with its submitter's username.
func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*models.Report, error) {
	const query = `SELECT r.id, r.user_id, r.animal_type, r.location_address, r.latitude, r.longitude,
			r.incident_date, r.incident_time, r.description, r.photo_url, r.status, r.temperature, r.precipitation,
			r.wind_speed, r.humidity, r.weather_condition, r.created_at, u.username
		FROM roadkill_reports r
		LEFT JOIN users u ON r.user_id = u.id
		WHERE r.id = $1`
	var report models.Report
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find report by id: %w", err)
	}
	return &report, nil
}

// ListByUser returns the reports submitted by the given user, newest first.
func (r *ReportRepository) ListByUser(ctx context.Context, userID int64) ([]models.Report, error) {
	const query = `SELECT id, user_id, animal_type, location_address, latitude, longitude, incident_date, incident_time,
			description, photo_url, status, temperature, precipitation, wind_speed, humidity, weather_condition, created_at
		FROM roadkill_reports
		WHERE user_id = $1
		ORDER BY created_at DESC`
	var reports []models.Report
	if err := r.db.SelectContext(ctx, &reports, query, userID); err != nil {
		return nil, fmt.Errorf("list reports by user: %w", err)
	}
	return reports, nil
}

// Create inserts a new report and returns the stored row.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	const query = `INSERT INTO roadkill_reports
			(user_id, animal_type, location_address, latitude, longitude, incident_date, incident_time,
			 description, photo_url, status, temperature, precipitation, wind_speed, humidity, weather_condition)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, user_id, animal_type, location_address, latitude, longitude, incident_date, incident_time,
			description, photo_url, status, temperature, precipitation, wind_speed, humidity, weather_condition, created_at`
	var stored models.Report
	err := r.db.GetContext(ctx, &stored, query,
		report.UserID,
		report.AnimalType,
		report.LocationAddress,
		report.Latitude,
		report.Longitude,
		report.IncidentDate,
		report.IncidentTime,
		report.Description,
		report.PhotoURL,
		report.Status,
		report.Temperature,
		report.Precipitation,
		report.WindSpeed,
		report.Humidity,
		report.WeatherCondition,
	)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return &stored, nil
}

// UpdateStatus sets the moderation status and returns the updated row.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.Report, error) {
	const query = `UPDATE roadkill_reports SET status = $1 WHERE id = $2
		RETURNING id, user_id, animal_type, location_address, latitude, longitude, incident_date, incident_time,
			description, photo_url, status, temperature, precipitation, wind_speed, humidity, weather_condition, created_at`
	var report models.Report
	if err := r.db.GetContext(ctx, &report, query, status, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update report status: %w", err)
	}
	return &report, nil
}

// Delete removes a report.
func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM roadkill_reports WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

// AnimalTypeExists reports whether the species is already known to either the
// imported stat table or any prior report, compared case-insensitively after
// trimming whitespace.
func (r *ReportRepository) AnimalTypeExists(ctx context.Context, animalType string) (bool, error) {
	const query = `SELECT EXISTS (
		SELECT 1 FROM (
			SELECT species_name FROM animal_type_stats
			UNION
			SELECT DISTINCT animal_type FROM roadkill_reports WHERE animal_type IS NOT NULL
		) combined
		WHERE LOWER(TRIM(species_name)) = LOWER(TRIM($1))
	)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, animalType); err != nil {
		return false, fmt.Errorf("check animal type exists: %w", err)
	}
	return exists, nil
}

// CountByRegionToken groups visible reports by the first whitespace-delimited
// token of the location address.
func (r *ReportRepository) CountByRegionToken(ctx context.Context) ([]models.BucketCount, error) {
	const query = `SELECT SPLIT_PART(location_address, ' ', 1) AS bucket, COUNT(*) AS count
		FROM roadkill_reports
		WHERE ` + visibleStatuses + ` AND location_address IS NOT NULL
		GROUP BY SPLIT_PART(location_address, ' ', 1)`
	var counts []models.BucketCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count reports by region token: %w", err)
	}
	return counts, nil
}

// CountByMonth groups visible reports by YYYY-MM, optionally bounded by the
// same date range applied to the official source.
func (r *ReportRepository) CountByMonth(ctx context.Context, rng models.DateRange) ([]models.BucketCount, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT TO_CHAR(incident_date, 'YYYY-MM') AS bucket, COUNT(*) AS count
		FROM roadkill_reports
		WHERE ` + visibleStatuses)
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
		return nil, fmt.Errorf("count reports by month: %w", err)
	}
	return counts, nil
}

// CountByAnimal groups visible reports by species string.
func (r *ReportRepository) CountByAnimal(ctx context.Context) ([]models.BucketCount, error) {
	const query = `SELECT animal_type AS bucket, COUNT(*) AS count
		FROM roadkill_reports
		WHERE ` + visibleStatuses + ` AND animal_type IS NOT NULL
		GROUP BY animal_type`
	var counts []models.BucketCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count reports by animal: %w", err)
	}
	return counts, nil
}
