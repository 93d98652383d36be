package backend

import (
	"context"
	"log/slog"

	"mesa-booking/internal/domain/table"
)

// ListTables fetches every table. Rows that do not describe a usable table
// are skipped.
func (c *Client) ListTables(ctx context.Context) ([]table.Table, error) {
	var rows []mesaDTO
	if err := c.get(ctx, "/api/mesas", nil, &rows); err != nil {
		return nil, err
	}

	tables := make([]table.Table, 0, len(rows))
	for _, row := range rows {
		t, err := table.NewTable(row.ID, int(row.Numero), int(row.Capacidad))
		if err != nil {
			c.logger.Warn("Skipping invalid table row",
				slog.String("id", row.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		tables = append(tables, t)
	}
	return tables, nil
}
