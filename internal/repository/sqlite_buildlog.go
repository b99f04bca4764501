package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/visioncraft/workbook/internal/domain"
)

// ErrNotFound indicates the requested build record does not exist.
var ErrNotFound = errors.New("build record not found")

// SQLiteBuildLogRepo implements BuildLogRepo using a SQLite database.
type SQLiteBuildLogRepo struct {
	db *sql.DB
}

// NewSQLiteBuildLogRepo creates a new SQLiteBuildLogRepo.
func NewSQLiteBuildLogRepo(db *sql.DB) *SQLiteBuildLogRepo {
	return &SQLiteBuildLogRepo{db: db}
}

const buildRecordColumns = `id, document_id, title, edition, trim_size, binding, theme_id,
	page_count, validation_status, error_count, warning_count,
	fallback_count, degraded_count, padding_added, artifact_path, created_at`

func (r *SQLiteBuildLogRepo) Create(ctx context.Context, rec *domain.BuildRecord) error {
	query := `INSERT INTO build_records (` + buildRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.DocumentID,
		rec.Title,
		string(rec.Edition),
		string(rec.Trim),
		string(rec.Binding),
		rec.ThemeID,
		rec.PageCount,
		rec.ValidationStatus,
		rec.ErrorCount,
		rec.WarningCount,
		rec.FallbackCount,
		rec.DegradedCount,
		boolToInt(rec.PaddingAdded),
		nullableString(rec.ArtifactPath),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting build record: %w", err)
	}
	return nil
}

func (r *SQLiteBuildLogRepo) GetByID(ctx context.Context, id string) (*domain.BuildRecord, error) {
	query := `SELECT ` + buildRecordColumns + ` FROM build_records WHERE id = ?`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteBuildLogRepo) GetByDocumentID(ctx context.Context, documentID string) (*domain.BuildRecord, error) {
	query := `SELECT ` + buildRecordColumns + ` FROM build_records
		WHERE document_id = ? ORDER BY created_at DESC LIMIT 1`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, documentID))
}

func (r *SQLiteBuildLogRepo) List(ctx context.Context, limit int) ([]*domain.BuildRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + buildRecordColumns + ` FROM build_records
		ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing build records: %w", err)
	}
	defer rows.Close()

	var records []*domain.BuildRecord
	for rows.Next() {
		rec, err := r.scanRecordFromRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating build records: %w", err)
	}
	return records, nil
}

func (r *SQLiteBuildLogRepo) SetArtifactPath(ctx context.Context, id, path string) error {
	query := `UPDATE build_records SET artifact_path = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, path, id)
	if err != nil {
		return fmt.Errorf("updating artifact path: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking artifact path update: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteBuildLogRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM build_records WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting build record: %w", err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared scan path.
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *SQLiteBuildLogRepo) scanRecord(row *sql.Row) (*domain.BuildRecord, error) {
	rec, err := scanBuildRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteBuildLogRepo) scanRecordFromRows(rows *sql.Rows) (*domain.BuildRecord, error) {
	return scanBuildRecord(rows)
}

func scanBuildRecord(s scanner) (*domain.BuildRecord, error) {
	var rec domain.BuildRecord
	var edition, trim, binding, createdAtStr string
	var paddingAdded int
	var artifactPath sql.NullString

	err := s.Scan(
		&rec.ID, &rec.DocumentID, &rec.Title,
		&edition, &trim, &binding, &rec.ThemeID,
		&rec.PageCount, &rec.ValidationStatus,
		&rec.ErrorCount, &rec.WarningCount,
		&rec.FallbackCount, &rec.DegradedCount,
		&paddingAdded, &artifactPath, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning build record: %w", err)
	}

	rec.Edition = domain.Edition(edition)
	rec.Trim = domain.TrimSizeID(trim)
	rec.Binding = domain.BindingType(binding)
	rec.PaddingAdded = intToBool(paddingAdded)
	if artifactPath.Valid {
		rec.ArtifactPath = artifactPath.String
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing build record created_at: %w", err)
	}
	rec.CreatedAt = createdAt
	return &rec, nil
}
