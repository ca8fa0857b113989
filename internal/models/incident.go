package models

import "time"

// Data-type tags distinguishing the two incident sources in the combined view.
const (
	DataTypeOfficial   = "official"
	DataTypeUserReport = "user_report"
)

// Incident is a bulk-imported ("official") roadkill occurrence record.
type Incident struct {
	ID           int64     `db:"id" json:"id"`
	SerialNumber string    `db:"serial_number" json:"serial_number"`
	IncidentDate time.Time `db:"incident_date" json:"incident_date"`
	IncidentTime *string   `db:"incident_time" json:"incident_time,omitempty"`
	Jurisdiction *string   `db:"jurisdiction" json:"jurisdiction,omitempty"`
	Latitude     float64   `db:"latitude" json:"latitude"`
	Longitude    float64   `db:"longitude" json:"longitude"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CombinedIncident is the normalized record shape shared by official incidents
// and user reports in the combined view.
type CombinedIncident struct {
	Serial       string  `json:"serial_number"`
	IncidentDate string  `json:"incident_date"`
	IncidentTime *string `json:"incident_time,omitempty"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DataType     string  `json:"data_type"`
}

// BucketCount is a single grouped aggregation row from one source.
type BucketCount struct {
	Bucket string `db:"bucket"`
	Count  int    `db:"count"`
}

// RegionCount is an aggregated incident count keyed by the first
// whitespace-delimited token of the address string.
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// MonthCount is an aggregated incident count keyed by YYYY-MM month.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// AnimalCount is an aggregated incident count per species with its share of
// the merged total.
type AnimalCount struct {
	Species    string  `json:"species"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DateRange optionally bounds the by-date aggregation. Both sources of the
// combined view receive the same predicate.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}
