package importer

import (
	"context"

	"go.uber.org/zap"
)

// ImportWeather loads the daily station observations. The source dates arrive
// as YYYYMMDD and are reformatted for PostgreSQL. Station plus date is unique;
// conflicts are ignored.
func (im *Importer) ImportWeather(ctx context.Context, path string) (*Result, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	const insert = `INSERT INTO weather_data
		(station_number, station_name, observation_date, avg_temperature,
		 precipitation, avg_wind_speed, sunshine_hours, total_cloud_cover,
		 precipitation_duration, humidity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (station_number, observation_date) DO NOTHING`

	result := &Result{}
	for _, r := range rows {
		station, stationOK := parseInt(r[colStationNumber])
		date, dateOK := normalizeObservationDate(r[colObsDate])

		if !stationOK || station == 0 || !dateOK {
			result.Skipped++
			continue
		}

		if _, err := im.db.ExecContext(ctx, insert,
			station, nullableString(r[colStationName]), date,
			nullableFloat(r[colAvgTemperature]), nullableFloat(r[colPrecipitation]),
			nullableFloat(r[colAvgWindSpeed]), nullableFloat(r[colSunshineHours]),
			nullableFloat(r[colCloudCover]), nullableFloat(r[colPrecipDuration]),
			nullableFloat(r[colHumidity]),
		); err != nil {
			im.logger.Warn("skipping weather row",
				zap.Int("station", station), zap.String("date", date), zap.Error(err))
			result.Skipped++
			continue
		}

		result.Imported++
		if result.Imported%logEvery == 0 {
			im.logger.Info("importing weather", zap.Int("imported", result.Imported))
		}
	}

	im.logger.Info("weather import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// normalizeObservationDate turns YYYYMMDD into YYYY-MM-DD. Already-dashed
// dates pass through unchanged.
func normalizeObservationDate(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if len(s) == 10 && s[4] == '-' && s[7] == '-' {
		return s, true
	}
	if len(s) != 8 {
		return "", false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	return s[:4] + "-" + s[4:6] + "-" + s[6:], true
}
