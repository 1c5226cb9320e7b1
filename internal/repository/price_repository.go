// Package repository implements the time-series extraction layer over the
// crop_prices table. It exposes the two retrieval modes the pipeline needs:
// a tail of the most recent distinct dates (model seed window) and an
// ascending range from a cutoff date (historical graphs).
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/rajeev970/smartagri-go/internal/database"
	"github.com/rajeev970/smartagri-go/internal/models"
)

// Querier defines the database operations the repository needs. It is
// satisfied by *pgxpool.Pool and by pgxmock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// GraphRow is one extracted graph observation: per-date averages of the
// modal price and of the daily min/max band.
type GraphRow struct {
	Date  string
	Modal float64
	Min   float64
	Max   float64
}

// PriceRepository extracts daily price series. Records with null or
// non-positive modal prices are excluded; duplicate records for a date are
// averaged into a single point. A repository without an underlying store
// returns empty series, never errors: callers treat empty as "data
// unavailable" and fall back.
type PriceRepository struct {
	db     Querier
	logger *logrus.Logger
}

// NewPriceRepository creates a repository over the given database. A nil
// database yields a repository that always reports no data.
func NewPriceRepository(db *database.PostgresDB, logger *logrus.Logger) *PriceRepository {
	var querier Querier
	if db != nil && db.Pool != nil {
		querier = db.Pool
	}
	return &PriceRepository{db: querier, logger: logger}
}

// NewPriceRepositoryWithQuerier creates a repository with a custom querier
// (for tests).
func NewPriceRepositoryWithQuerier(db Querier, logger *logrus.Logger) *PriceRepository {
	return &PriceRepository{db: db, logger: logger}
}

// Available reports whether an underlying store exists.
func (r *PriceRepository) Available() bool {
	return r.db != nil
}

// LastPrices returns the averaged modal price for the most recent n distinct
// dates matching any alias, sorted ascending. Fewer than n rows means fewer
// points exist; that is the caller's sufficiency check, not an error here.
func (r *PriceRepository) LastPrices(ctx context.Context, aliases []string, n int) ([]models.PricePoint, error) {
	if r.db == nil {
		return []models.PricePoint{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT date, AVG(modal_price) AS modal_price
		FROM crop_prices
		WHERE commodity = ANY($1) AND modal_price IS NOT NULL AND modal_price > 0
		GROUP BY date
		ORDER BY date DESC
		LIMIT $2`,
		aliases, n)
	if err != nil {
		return nil, fmt.Errorf("query last prices: %w", err)
	}
	defer rows.Close()

	var desc []models.PricePoint
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.Date, &p.Price); err != nil {
			return nil, fmt.Errorf("scan price point: %w", err)
		}
		desc = append(desc, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate last prices: %w", err)
	}

	// Query is newest-first so LIMIT takes the tail; re-sort ascending.
	points := make([]models.PricePoint, len(desc))
	for i, p := range desc {
		points[len(desc)-1-i] = p
	}
	return points, nil
}

// GraphRows returns per-date averages of modal/min/max prices on or after
// the cutoff date, optionally filtered by state and district, ascending,
// capped at limit points to bound response size.
func (r *PriceRepository) GraphRows(ctx context.Context, aliases []string, state, district, cutoff string, limit int) ([]GraphRow, error) {
	if r.db == nil {
		return []GraphRow{}, nil
	}

	query := `
		SELECT date, AVG(modal_price) AS modal_price, AVG(min_price) AS min_price, AVG(max_price) AS max_price
		FROM crop_prices
		WHERE commodity = ANY($1) AND modal_price IS NOT NULL AND modal_price > 0
		  AND date >= $2`
	args := []interface{}{aliases, cutoff}
	if state != "" {
		args = append(args, state)
		query += fmt.Sprintf(" AND state = $%d", len(args))
	}
	if district != "" {
		args = append(args, district)
		query += fmt.Sprintf(" AND district = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" GROUP BY date ORDER BY date ASC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query graph rows: %w", err)
	}
	defer rows.Close()

	out := []GraphRow{}
	for rows.Next() {
		var row GraphRow
		var minP, maxP *float64
		if err := rows.Scan(&row.Date, &row.Modal, &minP, &maxP); err != nil {
			return nil, fmt.Errorf("scan graph row: %w", err)
		}
		if minP != nil {
			row.Min = *minP
		}
		if maxP != nil {
			row.Max = *maxP
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate graph rows: %w", err)
	}
	return out, nil
}
