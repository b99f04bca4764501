package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS build_records (
		id                TEXT PRIMARY KEY,
		document_id       TEXT NOT NULL,
		title             TEXT NOT NULL,
		edition           TEXT NOT NULL
		                  CHECK(edition IN ('STARTER','EXECUTIVE','DELUXE')),
		trim_size         TEXT NOT NULL,
		binding           TEXT NOT NULL
		                  CHECK(binding IN ('softcover','hardcover','spiral','saddle_stitch')),
		theme_id          TEXT NOT NULL,
		page_count        INTEGER NOT NULL,
		validation_status TEXT NOT NULL
		                  CHECK(validation_status IN ('valid','invalid','unvalidated')),
		error_count       INTEGER NOT NULL DEFAULT 0,
		warning_count     INTEGER NOT NULL DEFAULT 0,
		fallback_count    INTEGER NOT NULL DEFAULT 0,
		degraded_count    INTEGER NOT NULL DEFAULT 0,
		padding_added     INTEGER NOT NULL DEFAULT 0,
		artifact_path     TEXT,
		created_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_build_records_created ON build_records(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_build_records_document ON build_records(document_id)`,
}
