package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ImportStats rebuilds the pre-aggregated roadkill_stats table from the
// per-species CSV. The delete and reload run in one transaction so readers
// never observe a half-loaded table.
func (im *Importer) ImportStats(ctx context.Context, path string) (*Result, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	tx, err := im.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin stats import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM roadkill_stats`); err != nil {
		return nil, fmt.Errorf("clear stats: %w", err)
	}

	const insert = `INSERT INTO roadkill_stats (province, city, animal_type, incident_count)
		VALUES (NULL, NULL, $1, $2)
		ON CONFLICT DO NOTHING`

	result := &Result{}
	for _, r := range rows {
		species := r[colSpeciesName]
		count, countOK := parseInt(r[colIncidentCount])

		if species == "" || !countOK {
			result.Skipped++
			continue
		}

		if _, err := tx.ExecContext(ctx, insert, species, count); err != nil {
			return result, fmt.Errorf("insert stat %s: %w", species, err)
		}
		result.Imported++
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("commit stats import: %w", err)
	}

	im.logger.Info("stats import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}
