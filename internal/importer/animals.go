package importer

import (
	"context"

	"go.uber.org/zap"
)

// ImportAnimalStats loads the per-species national totals. Unlike the other
// datasets, an existing species row is updated in place so a refreshed CSV
// replaces stale counts.
func (im *Importer) ImportAnimalStats(ctx context.Context, path string) (*Result, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	const upsert = `INSERT INTO animal_type_stats (species_name, incident_count, percentage)
		VALUES ($1, $2, $3)
		ON CONFLICT (species_name)
		DO UPDATE SET
			incident_count = $2,
			percentage = $3,
			updated_at = CURRENT_TIMESTAMP`

	result := &Result{}
	for _, r := range rows {
		species := r[colSpeciesName]
		count, countOK := parseInt(r[colIncidentCount])
		percentage, _ := parseFloat(r[colPercentage])

		if species == "" || !countOK || count == 0 {
			result.Skipped++
			continue
		}

		if _, err := im.db.ExecContext(ctx, upsert, species, count, percentage); err != nil {
			im.logger.Warn("skipping animal stat row", zap.String("species", species), zap.Error(err))
			result.Skipped++
			continue
		}
		result.Imported++
	}

	im.logger.Info("animal stats import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}
