package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"card-lister/models"
)

// PostgresWriter persists processed listings to PostgreSQL, keyed by the
// tracking SKU.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id            SERIAL PRIMARY KEY,
			tracking_sku  VARCHAR(80)  UNIQUE NOT NULL,
			player        TEXT         NOT NULL,
			year          VARCHAR(10)  NOT NULL,
			card_set      TEXT         NOT NULL,
			card_number   VARCHAR(40)  NOT NULL,
			sport         VARCHAR(50)  NOT NULL,
			title         TEXT         NOT NULL,
			title_length  INT          NOT NULL DEFAULT 0,
			score         INT          NOT NULL DEFAULT 0,
			category_id   VARCHAR(20)  NOT NULL,
			avg_price     NUMERIC(10,2),
			median_price  NUMERIC(10,2),
			sales_count   INT          NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_listings_player ON listings(player);
		CREATE INDEX IF NOT EXISTS idx_listings_sport  ON listings(sport);
		CREATE INDEX IF NOT EXISTS idx_listings_score  ON listings(score);
	`)
	return err
}

// Write batch-inserts processed listings, 50 rows at a time.
func (pw *PostgresWriter) Write(results []*models.ListingResult) error {
	if len(results) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(results); i += batchSize {
		end := i + batchSize
		if end > len(results) {
			end = len(results)
		}
		if err := pw.insertBatch(results[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.ListingResult) error {
	const cols = 13
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, r := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")

		var avgPrice, medianPrice interface{}
		salesCount := 0
		if r.Pricing != nil {
			avgPrice = r.Pricing.Average
			medianPrice = r.Pricing.Median
			salesCount = r.Pricing.Count
		}

		valueArgs = append(valueArgs,
			r.TrackingSKU, r.Card.Player, r.Card.Year, r.Card.CardSet,
			r.Card.CardNumber, r.Card.Sport, r.Title, r.TitleReport.Length,
			r.TitleReport.Score, r.CategoryID, avgPrice, medianPrice, salesCount)
	}

	query := fmt.Sprintf(`
		INSERT INTO listings (tracking_sku, player, year, card_set, card_number,
			sport, title, title_length, score, category_id, avg_price, median_price, sales_count)
		VALUES %s
		ON CONFLICT (tracking_sku) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves stored listings, most recent first.
func (pw *PostgresWriter) FetchAll() ([]*models.StoredListing, error) {
	rows, err := pw.db.Query(`
		SELECT id, tracking_sku, player, year, card_set, card_number, sport,
			title, title_length, score, category_id,
			COALESCE(avg_price, 0), COALESCE(median_price, 0), created_at
		FROM listings
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []*models.StoredListing
	for rows.Next() {
		l := &models.StoredListing{}
		if err := rows.Scan(
			&l.ID, &l.TrackingSKU, &l.Player, &l.Year, &l.CardSet,
			&l.CardNumber, &l.Sport, &l.Title, &l.TitleLength, &l.Score,
			&l.CategoryID, &l.AvgPrice, &l.MedianPrice, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
