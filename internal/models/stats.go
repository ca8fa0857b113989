package models

import "time"

// AnimalTypeStat is a per-species national total maintained by the animal
// importer and extended at query time by live report counts.
type AnimalTypeStat struct {
	ID            int64     `db:"id" json:"id"`
	SpeciesName   string    `db:"species_name" json:"species_name"`
	IncidentCount int       `db:"incident_count" json:"incident_count"`
	Percentage    float64   `db:"percentage" json:"percentage"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// RoadkillStat is a pre-aggregated per-region per-species count. A row with
// NULL province and city is the national aggregate.
type RoadkillStat struct {
	ID            int64   `db:"id" json:"id"`
	Province      *string `db:"province" json:"province"`
	City          *string `db:"city" json:"city"`
	AnimalType    string  `db:"animal_type" json:"animal_type"`
	IncidentCount int     `db:"incident_count" json:"incident_count"`
}

// AnimalStat is the response shape for pre-aggregated animal statistics.
type AnimalStat struct {
	Animal string `json:"animal"`
	Count  int    `json:"count"`
}

// StatsSummary reports the national total and the most affected species.
type StatsSummary struct {
	TotalIncidents int          `json:"total_incidents"`
	TopAnimals     []AnimalStat `json:"top_animals"`
}
