package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ReelTables lists every table the API owns, in dependency order.
var ReelTables = []string{
	"users",
	"applications",
	"flagged_activities",
	"alerts",
	"portfolios",
	"projects",
	"project_credits",
	"project_media",
	"posts",
	"post_interactions",
	"messages",
	"trend_tags",
	"kpis",
	"insight_reports",
}

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

// CountRows returns the row count of each table in ReelTables.
func (r *tablesRepository) CountRows(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(ReelTables))

	for _, table := range ReelTables {
		var count int64
		// table names come from the fixed list above
		if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}
