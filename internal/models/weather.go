package models

import "time"

// WeatherObservation is one daily station observation from the weather CSV.
// All measurements are nullable because stations report partial data.
type WeatherObservation struct {
	ID                    int64     `db:"id" json:"id"`
	StationNumber         int       `db:"station_number" json:"station_number"`
	StationName           *string   `db:"station_name" json:"station_name,omitempty"`
	ObservationDate       time.Time `db:"observation_date" json:"observation_date"`
	AvgTemperature        *float64  `db:"avg_temperature" json:"avg_temperature,omitempty"`
	Precipitation         *float64  `db:"precipitation" json:"precipitation,omitempty"`
	AvgWindSpeed          *float64  `db:"avg_wind_speed" json:"avg_wind_speed,omitempty"`
	SunshineHours         *float64  `db:"sunshine_hours" json:"sunshine_hours,omitempty"`
	TotalCloudCover       *float64  `db:"total_cloud_cover" json:"total_cloud_cover,omitempty"`
	PrecipitationDuration *float64  `db:"precipitation_duration" json:"precipitation_duration,omitempty"`
	Humidity              *float64  `db:"humidity" json:"humidity,omitempty"`
}
