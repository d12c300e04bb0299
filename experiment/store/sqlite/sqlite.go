// Package sqlite persists experiment reports to a SQLite database, grounded
// on the teacher repo's internal/storage/sqlite package: single-connection
// WAL-mode handle, idempotent CREATE TABLE IF NOT EXISTS migrations, and a
// thin repository type wrapping *sql.DB.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/covarray/experiment/domain"
)

// Store persists experiment reports using SQLite.
type Store struct {
	db *sql.DB
}

// Open creates (or opens) the SQLite database at path and runs migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return nil, err
	}

	// SQLite serializes writes best behind a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			spec_id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			spec_id TEXT NOT NULL,
			t INTEGER NOT NULL,
			k INTEGER NOT NULL,
			v INTEGER NOT NULL,
			stride INTEGER NOT NULL,
			min_size INTEGER NOT NULL,
			mean_size REAL NOT NULL,
			sizes_json TEXT NOT NULL,
			FOREIGN KEY (spec_id) REFERENCES reports(spec_id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_spec ON results(spec_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SaveReport persists report, replacing any existing report with the same
// SpecID.
func (s *Store) SaveReport(ctx context.Context, report *domain.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reports WHERE spec_id = ?`, report.SpecID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO reports (spec_id) VALUES (?)`, report.SpecID); err != nil {
		return err
	}

	for _, res := range report.Results {
		sizesJSON, err := json.Marshal(res.Sizes)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO results (spec_id, t, k, v, stride, min_size, mean_size, sizes_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			report.SpecID, res.Config.T, res.Config.K, res.Config.V, res.Stride,
			res.Min, res.Mean, string(sizesJSON))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadReport retrieves a previously saved report by spec ID.
func (s *Store) LoadReport(ctx context.Context, specID string) (*domain.Report, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports WHERE spec_id = ?`, specID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, domain.ErrReportNotFound
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT t, k, v, stride, min_size, mean_size, sizes_json
		FROM results WHERE spec_id = ? ORDER BY id ASC`, specID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := &domain.Report{SpecID: specID}
	for rows.Next() {
		var res domain.Result
		var sizesJSON string
		if err := rows.Scan(&res.Config.T, &res.Config.K, &res.Config.V, &res.Stride,
			&res.Min, &res.Mean, &sizesJSON); err != nil {
			return nil, err
		}
		res.Config.Stride = res.Stride
		if err := json.Unmarshal([]byte(sizesJSON), &res.Sizes); err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
