package importer

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Source CSV column names, as exported by the upstream processing pipeline.
const (
	colSerialNumber = "일련번호"
	colIncidentDate = "접수일자"
	colIncidentTime = "접수시각"
	colJurisdiction = "관할기관"
	colLatitude     = "위도"
	colLongitude    = "경도"

	colSpeciesName   = "종명"
	colIncidentCount = "건수"
	colPercentage    = "비율(%)"

	colStationNumber  = "지점번호"
	colStationName    = "지점명"
	colObsDate        = "일자"
	colAvgTemperature = "일평균기온"
	colPrecipitation  = "강수량"
	colAvgWindSpeed   = "일평균풍속"
	colSunshineHours  = "일조시간"
	colCloudCover     = "전운량"
	colPrecipDuration = "강수계속시간"
	colHumidity       = "습도"
)

// logEvery throttles per-row progress logging.
const logEvery = 1000

// Result summarizes one dataset import.
type Result struct {
	Imported int
	Skipped  int
}

// Importer loads the processed CSV datasets into PostgreSQL.
type Importer struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// New constructs an Importer.
func New(db *sqlx.DB, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{db: db, logger: logger}
}
