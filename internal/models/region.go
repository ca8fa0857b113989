package models

// Region is an administrative region with its centroid, derived from the
// incident CSV by the region importer.
type Region struct {
	ID          int64   `db:"id" json:"id"`
	Province    string  `db:"province" json:"province"`
	City        *string `db:"city" json:"city"`
	Latitude    float64 `db:"latitude" json:"latitude"`
	Longitude   float64 `db:"longitude" json:"longitude"`
	FullAddress string  `db:"full_address" json:"full_address"`
}

// NearestRegion is a region row annotated with the great-circle distance from
// the queried coordinate.
type NearestRegion struct {
	Province    string  `db:"province" json:"province"`
	City        *string `db:"city" json:"city"`
	Latitude    float64 `db:"latitude" json:"latitude"`
	Longitude   float64 `db:"longitude" json:"longitude"`
	FullAddress string  `db:"full_address" json:"full_address"`
	Distance    float64 `db:"distance" json:"-"`
}

// ReverseGeocodeRequest asks for the region nearest to a coordinate.
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ReverseGeocodeResult is the response shape for the nearest-region lookup.
type ReverseGeocodeResult struct {
	Province    string  `json:"province"`
	City        *string `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	FullAddress string  `json:"full_address"`
	Distance    string  `json:"distance"`
}

// CityInfo is a city entry inside the grouped region hierarchy.
type CityInfo struct {
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	FullAddress string  `json:"full_address"`
}

// ProvinceGroup groups a province's cities for the hierarchy endpoint.
type ProvinceGroup struct {
	Province string     `json:"province"`
	Cities   []CityInfo `json:"cities"`
}
