package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// requiredColumns is the exact column set the employees table must carry.
var requiredColumns = []string{"id", "first_name", "last_name", "phone", "email", "login", "created_at"}

// CheckSchema reports the current shape of the employees table and which
// required columns are missing from it. A missing table reports every
// required column as missing rather than failing.
func (r *Repository) CheckSchema(ctx context.Context) (models.SchemaReport, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("check_schema").Observe(duration)
	}()
	query := `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = 'employees';
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return models.SchemaReport{}, fmt.Errorf("failed to inspect employees table: %w", err)
	}
	defer rows.Close()

	var report models.SchemaReport
	existing := make(map[string]bool)
	for rows.Next() {
		var col models.Column
		if err = rows.Scan(&col.Name, &col.DataType); err != nil {
			return models.SchemaReport{}, fmt.Errorf("failed to scan column row: %w", err)
		}
		existing[col.Name] = true
		report.Columns = append(report.Columns, col)
	}
	if err = rows.Err(); err != nil {
		return models.SchemaReport{}, fmt.Errorf("failed to read column rows: %w", err)
	}

	for _, name := range requiredColumns {
		if !existing[name] {
			report.Missing = append(report.Missing, name)
		}
	}

	return report, nil
}
