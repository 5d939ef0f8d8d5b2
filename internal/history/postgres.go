package history

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Connect opens a pgx pool, verifies connectivity, and applies any
// pending schema migrations.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := migrate(databaseURL); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// migrate runs the embedded goose migrations over a database/sql
// connection (goose does not speak pgx pools directly).
func migrate(databaseURL string) error {
	db, err := goose.OpenDBWithDriver("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// PostgresStore is a Repository backed by Postgres. Eviction beyond
// Capacity happens inside Append so the table never grows past the cap.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Append implements Repository.
func (s *PostgresStore) Append(ctx context.Context, entry Entry) (Entry, error) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO scan_history (url, classification, risk_score, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, entry.URL, entry.Classification, entry.RiskScore, entry.Timestamp).Scan(&entry.ID)
	if err != nil {
		return Entry{}, err
	}

	// Evict everything older than the newest Capacity entries.
	_, err = s.pool.Exec(ctx, `
		DELETE FROM scan_history
		WHERE id NOT IN (
			SELECT id FROM scan_history
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		)
	`, Capacity)
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List implements Repository.
func (s *PostgresStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, url, classification, risk_score, created_at
		FROM scan_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, Capacity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.URL, &entry.Classification, &entry.RiskScore, &entry.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear implements Repository.
func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM scan_history`)
	return err
}

// Remove implements Repository.
func (s *PostgresStore) Remove(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM scan_history WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
