package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/safari-for-safety/roadkill-api/internal/models"
)

// RegionRepository reads the derived administrative-region table.
type RegionRepository struct {
	db *sqlx.DB
}

// NewRegionRepository creates a new instance of RegionRepository.
func NewRegionRepository(db *sqlx.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

// ListProvinces returns the distinct province names in order.
func (r *RegionRepository) ListProvinces(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT province FROM regions ORDER BY province`
	var provinces []string
	if err := r.db.SelectContext(ctx, &provinces, query); err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	return provinces, nil
}

// ListCities returns a province's cities with their centroids.
func (r *RegionRepository) ListCities(ctx context.Context, province string) ([]models.Region, error) {
	const query = `SELECT id, province, city, latitude, longitude, full_address
		FROM regions
		WHERE province = $1 AND city IS NOT NULL
		ORDER BY city`
	var regions []models.Region
	if err := r.db.SelectContext(ctx, &regions, query, province); err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return regions, nil
}

// ListAll returns every region row ordered by province then city.
func (r *RegionRepository) ListAll(ctx context.Context) ([]models.Region, error) {
	const query = `SELECT id, province, city, latitude, longitude, full_address
		FROM regions
		ORDER BY province, city`
	var regions []models.Region
	if err := r.db.SelectContext(ctx, &regions, query); err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

// Nearest returns the region minimizing great-circle distance from the given
// coordinate. The spherical law of cosines (Earth radius 6371 km) is evaluated
// in-query for every row; the table holds a few hundred rows, so the linear
// scan is acceptable.
func (r *RegionRepository) Nearest(ctx context.Context, latitude, longitude float64) (*models.NearestRegion, error) {
	const query = `SELECT
			province,
			city,
			latitude,
			longitude,
			full_address,
			(
				6371 * acos(
					cos(radians($1)) *
					cos(radians(latitude)) *
					cos(radians(longitude) - radians($2)) +
					sin(radians($1)) *
					sin(radians(latitude))
				)
			) AS distance
		FROM regions
		ORDER BY distance
		LIMIT 1`
	var region models.NearestRegion
	if err := r.db.GetContext(ctx, &region, query, latitude, longitude); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("nearest region: %w", err)
	}
	return &region, nil
}
