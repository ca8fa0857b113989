package importer

import (
	"context"

	"go.uber.org/zap"
)

// ImportIncidents loads the official incident CSV. Rows missing a serial
// number, date or coordinate are skipped. Re-runs are idempotent because the
// serial number carries a unique constraint and conflicts are ignored.
func (im *Importer) ImportIncidents(ctx context.Context, path string) (*Result, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	const insert = `INSERT INTO roadkill_incidents
		(serial_number, incident_date, incident_time, jurisdiction, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (serial_number) DO NOTHING`

	result := &Result{}
	for _, r := range rows {
		serial := r[colSerialNumber]
		date := r[colIncidentDate]
		latitude, latOK := parseFloat(r[colLatitude])
		longitude, lonOK := parseFloat(r[colLongitude])

		if serial == "" || date == "" || !latOK || !lonOK {
			result.Skipped++
			continue
		}

		if _, err := im.db.ExecContext(ctx, insert,
			serial, date, nullableString(r[colIncidentTime]), nullableString(r[colJurisdiction]),
			latitude, longitude,
		); err != nil {
			im.logger.Warn("skipping incident row", zap.String("serial", serial), zap.Error(err))
			result.Skipped++
			continue
		}

		result.Imported++
		if result.Imported%logEvery == 0 {
			im.logger.Info("importing incidents", zap.Int("imported", result.Imported))
		}
	}

	im.logger.Info("incident import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}
