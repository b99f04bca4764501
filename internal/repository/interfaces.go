// Package repository persists build-log records in SQLite.
package repository

import (
	"context"

	"github.com/visioncraft/workbook/internal/domain"
)

// BuildLogRepo records completed pipeline runs.
type BuildLogRepo interface {
	Create(ctx context.Context, r *domain.BuildRecord) error
	GetByID(ctx context.Context, id string) (*domain.BuildRecord, error)
	GetByDocumentID(ctx context.Context, documentID string) (*domain.BuildRecord, error)
	List(ctx context.Context, limit int) ([]*domain.BuildRecord, error)
	SetArtifactPath(ctx context.Context, id, path string) error
	Delete(ctx context.Context, id string) error
}
