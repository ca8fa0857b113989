package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/safari-for-safety/roadkill-api/internal/models"
)

// WeatherRepository reads the bulk-imported daily weather observations.
type WeatherRepository struct {
	db *sqlx.DB
}

// NewWeatherRepository creates a new instance of WeatherRepository.
func NewWeatherRepository(db *sqlx.DB) *WeatherRepository {
	return &WeatherRepository{db: db}
}

// List returns a page of observations, newest first, with the total row count.
func (r *WeatherRepository) List(ctx context.Context, limit, offset int) ([]models.WeatherObservation, int, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `SELECT id, station_number, station_name, observation_date, avg_temperature, precipitation,
			avg_wind_speed, sunshine_hours, total_cloud_cover, precipitation_duration, humidity
		FROM weather_data
		ORDER BY observation_date DESC
		LIMIT $1 OFFSET $2`
	var observations []models.WeatherObservation
	if err := r.db.SelectContext(ctx, &observations, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("list weather data: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM weather_data`); err != nil {
		return nil, 0, fmt.Errorf("count weather data: %w", err)
	}

	return observations, total, nil
}
