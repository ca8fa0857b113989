package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// statements are idempotent so Apply can run at every importer or server
// start without tracking versions.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS roadkill_incidents (
		id SERIAL PRIMARY KEY,
		serial_number VARCHAR(100) UNIQUE NOT NULL,
		incident_date DATE NOT NULL,
		incident_time VARCHAR(20),
		jurisdiction VARCHAR(255),
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_roadkill_incidents_jurisdiction ON roadkill_incidents(jurisdiction)`,
	`CREATE INDEX IF NOT EXISTS idx_roadkill_incidents_date ON roadkill_incidents(incident_date)`,

	`CREATE TABLE IF NOT EXISTS roadkill_reports (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		animal_type VARCHAR(100) NOT NULL,
		location_address VARCHAR(255) NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		incident_date DATE NOT NULL,
		incident_time VARCHAR(20),
		description TEXT,
		photo_url TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		temperature DOUBLE PRECISION,
		precipitation DOUBLE PRECISION,
		wind_speed DOUBLE PRECISION,
		humidity INTEGER,
		weather_condition VARCHAR(50),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_roadkill_reports_user ON roadkill_reports(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_roadkill_reports_status ON roadkill_reports(status)`,
	`CREATE INDEX IF NOT EXISTS idx_roadkill_reports_animal ON roadkill_reports(animal_type)`,

	`CREATE TABLE IF NOT EXISTS animal_type_stats (
		id SERIAL PRIMARY KEY,
		species_name VARCHAR(100) UNIQUE NOT NULL,
		incident_count INTEGER NOT NULL DEFAULT 0,
		percentage NUMERIC(6,2) NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS weather_data (
		id SERIAL PRIMARY KEY,
		station_number INTEGER NOT NULL,
		station_name VARCHAR(100),
		observation_date DATE NOT NULL,
		avg_temperature DOUBLE PRECISION,
		precipitation DOUBLE PRECISION,
		avg_wind_speed DOUBLE PRECISION,
		sunshine_hours DOUBLE PRECISION,
		total_cloud_cover DOUBLE PRECISION,
		precipitation_duration DOUBLE PRECISION,
		humidity DOUBLE PRECISION,
		UNIQUE (station_number, observation_date)
	)`,

	`CREATE TABLE IF NOT EXISTS regions (
		id SERIAL PRIMARY KEY,
		province VARCHAR(50) NOT NULL,
		city VARCHAR(100),
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		full_address VARCHAR(255),
		UNIQUE (province, city)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_regions_province ON regions(province)`,

	`CREATE TABLE IF NOT EXISTS roadkill_stats (
		id SERIAL PRIMARY KEY,
		province VARCHAR(50),
		city VARCHAR(100),
		animal_type VARCHAR(100) NOT NULL,
		incident_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_roadkill_stats_province ON roadkill_stats(province)`,
	`CREATE INDEX IF NOT EXISTS idx_roadkill_stats_city ON roadkill_stats(province, city)`,
	`CREATE INDEX IF NOT EXISTS idx_roadkill_stats_animal ON roadkill_stats(animal_type)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_roadkill_stats_unique ON roadkill_stats(
		COALESCE(province, ''),
		COALESCE(city, ''),
		animal_type
	)`,
}

// Apply creates all tables and indexes that do not exist yet.
func Apply(db *sqlx.DB) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
