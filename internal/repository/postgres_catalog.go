package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
)

// DefaultProject is returned for catalog lookups of unknown project ids.
// Serving a stable placeholder keeps detail pages renderable for stale links.
var DefaultProject = models.Project{
	ID:       "unknown",
	Name:     "Unknown Project",
	Category: "Other",
	Score:    0,
	Change:   0,
}

// PostgresCatalog implements Catalog on PostgreSQL. Each entity has exactly
// one row; repeated reads of the same id return the same record.
type PostgresCatalog struct {
	db *sql.DB
}

// NewPostgresCatalog opens a Postgres connection and verifies it.
func NewPostgresCatalog(dsn string) (*PostgresCatalog, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &PostgresCatalog{db: db}, nil
}

// Migrate creates catalog tables if missing.
func (c *PostgresCatalog) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			category TEXT NOT NULL,
			score    INTEGER NOT NULL,
			change   DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS protocols (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			category   TEXT NOT NULL,
			tvl        DOUBLE PRECISION NOT NULL,
			volume_24h DOUBLE PRECISION NOT NULL,
			change_24h DOUBLE PRECISION NOT NULL,
			users      INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS collections (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			category    TEXT NOT NULL,
			floor_price DOUBLE PRECISION NOT NULL,
			volume_24h  DOUBLE PRECISION NOT NULL,
			volume_7d   DOUBLE PRECISION NOT NULL,
			volume_30d  DOUBLE PRECISION NOT NULL,
			change_24h  DOUBLE PRECISION NOT NULL,
			holders     INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("catalog migrate: %w", err)
		}
	}
	return nil
}

func (c *PostgresCatalog) ProjectByID(ctx context.Context, id string) (models.Project, error) {
	var p models.Project
	err := c.db.QueryRowContext(ctx,
		`SELECT id, name, category, score, change FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Category, &p.Score, &p.Change)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultProject, nil
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("project by id: %w", err)
	}
	return p, nil
}

func (c *PostgresCatalog) Projects(ctx context.Context) ([]models.Project, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, category, score, change FROM projects ORDER BY score DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Score, &p.Change); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (c *PostgresCatalog) Protocols(ctx context.Context) ([]models.DeFiProtocol, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, category, tvl, volume_24h, change_24h, users FROM protocols ORDER BY tvl DESC`)
	if err != nil {
		return nil, fmt.Errorf("list protocols: %w", err)
	}
	defer rows.Close()

	var out []models.DeFiProtocol
	for rows.Next() {
		var p models.DeFiProtocol
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.TVL, &p.Volume24h, &p.Change24h, &p.Users); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (c *PostgresCatalog) Collections(ctx context.Context) ([]models.NftCollection, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, category, floor_price, volume_24h, volume_7d, volume_30d, change_24h, holders
		 FROM collections ORDER BY volume_24h DESC`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var out []models.NftCollection
	for rows.Next() {
		var n models.NftCollection
		if err := rows.Scan(&n.ID, &n.Name, &n.Category, &n.FloorPrice, &n.Volume24h, &n.Volume7d, &n.Volume30d, &n.Change24h, &n.Holders); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (c *PostgresCatalog) UpsertProject(ctx context.Context, p models.Project) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, category, score, change)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			score = EXCLUDED.score,
			change = EXCLUDED.change`,
		p.ID, p.Name, p.Category, p.Score, p.Change)
	if err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}
	return nil
}

// Close closes the database handle.
func (c *PostgresCatalog) Close() error {
	return c.db.Close()
}

var _ repository.Catalog = (*PostgresCatalog)(nil)
