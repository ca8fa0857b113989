package models

import "time"

// ReportStatus enumerates the moderation states of a user report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

// Valid reports whether the status is one of the known states.
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusApproved, ReportStatusRejected:
		return true
	}
	return false
}

// Report is a user-submitted roadkill record, optionally enriched with the
// weather observed at submission time.
type Report struct {
	ID               int64        `db:"id" json:"id"`
	UserID           int64        `db:"user_id" json:"user_id"`
	AnimalType       string       `db:"animal_type" json:"animal_type"`
	LocationAddress  string       `db:"location_address" json:"location_address"`
	Latitude         float64      `db:"latitude" json:"latitude"`
	Longitude        float64      `db:"longitude" json:"longitude"`
	IncidentDate     time.Time    `db:"incident_date" json:"incident_date"`
	IncidentTime     *string      `db:"incident_time" json:"incident_time,omitempty"`
	Description      *string      `db:"description" json:"description,omitempty"`
	PhotoURL         *string      `db:"photo_url" json:"photo_url,omitempty"`
	Status           ReportStatus `db:"status" json:"status"`
	Temperature      *float64     `db:"temperature" json:"temperature,omitempty"`
	Precipitation    *float64     `db:"precipitation" json:"precipitation,omitempty"`
	WindSpeed        *float64     `db:"wind_speed" json:"wind_speed,omitempty"`
	Humidity         *int         `db:"humidity" json:"humidity,omitempty"`
	WeatherCondition *string      `db:"weather_condition" json:"weather_condition,omitempty"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
	Username         *string      `db:"username" json:"username,omitempty"`
}

// CreateReportRequest is the authenticated submission payload.
type CreateReportRequest struct {
	AnimalType       string   `json:"animal_type" validate:"required"`
	LocationAddress  string   `json:"location_address" validate:"required"`
	Latitude         *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	IncidentDate     string   `json:"incident_date" validate:"required,datetime=2006-01-02"`
	IncidentTime     *string  `json:"incident_time"`
	Description      *string  `json:"description"`
	PhotoURL         *string  `json:"photo_url"`
	Temperature      *float64 `json:"temperature"`
	Precipitation    *float64 `json:"precipitation" validate:"omitempty,min=0"`
	WindSpeed        *float64 `json:"wind_speed" validate:"omitempty,min=0"`
	Humidity         *int     `json:"humidity" validate:"omitempty,min=0,max=100"`
	WeatherCondition *string  `json:"weather_condition"`
}

// UpdateReportStatusRequest carries the new moderation state.
type UpdateReportStatusRequest struct {
	Status ReportStatus `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ReportFilter captures listing criteria for public report queries.
type ReportFilter struct {
	Status string
	Limit  int
	Offset int
}

// CreatedReport pairs the stored report with the advisory new-species flag.
type CreatedReport struct {
	Report      *Report
	IsNewAnimal bool
}
