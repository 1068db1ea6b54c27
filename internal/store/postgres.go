package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kieseatic/Ats/internal/types"
)

// PostgresStore persists uploaded jobs in PostgreSQL so they survive
// restarts. Schema:
//
//	CREATE TABLE IF NOT EXISTS jobs (
//	    id         TEXT PRIMARY KEY,
//	    title      TEXT NOT NULL,
//	    record     JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Add inserts job records, keeping the stored record when an ID collides.
func (s *PostgresStore) Add(ctx context.Context, jobs []types.JobRecord) error {
	for i := range jobs {
		record, err := json.Marshal(jobs[i])
		if err != nil {
			return fmt.Errorf("failed to marshal job %q: %w", jobs[i].Identifier(), err)
		}
		_, err = s.pool.Exec(ctx,
			`INSERT INTO jobs (id, title, record)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO NOTHING`,
			jobs[i].ID, jobs[i].Title, record,
		)
		if err != nil {
			return fmt.Errorf("failed to insert job %q: %w", jobs[i].Identifier(), err)
		}
	}
	return nil
}

// List returns all stored jobs in upload order.
func (s *PostgresStore) List(ctx context.Context) ([]types.JobRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT record FROM jobs ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobRecord
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		var job types.JobRecord
		if err := json.Unmarshal(record, &job); err != nil {
			return nil, fmt.Errorf("failed to decode job record: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Get returns the job with the given ID, or nil when absent.
func (s *PostgresStore) Get(ctx context.Context, id string) (*types.JobRecord, error) {
	var record []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM jobs WHERE id = $1`, id,
	).Scan(&record)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job types.JobRecord
	if err := json.Unmarshal(record, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job record: %w", err)
	}
	return &job, nil
}

// Count returns the number of stored jobs.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return n, nil
}
