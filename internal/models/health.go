package models

// HealthCounts reports per-table row counts for the health endpoint.
type HealthCounts struct {
	RoadkillIncidents int `json:"roadkill_incidents"`
	AnimalTypes       int `json:"animal_types"`
	Weather           int `json:"weather"`
	Users             int `json:"users"`
	UserReports       int `json:"user_reports"`
}
