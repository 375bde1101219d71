package database

import (
	"database/sql"
	"fmt"
)

// initNormalizationsTable initializes the run ledger table
func initNormalizationsTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS normalizations (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        filepath TEXT NOT NULL,
        stage TEXT NOT NULL,
        params JSON,
        status TEXT NOT NULL,
        error TEXT,
        started_at TIMESTAMP NOT NULL,
        finished_at TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_normalizations_filepath ON normalizations(filepath);
    CREATE INDEX IF NOT EXISTS idx_normalizations_status ON normalizations(status);
    CREATE INDEX IF NOT EXISTS idx_normalizations_started_at ON normalizations(started_at);
    `
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create normalizations table: %w", err)
	}
	return nil
}
