// Package service orchestrates the build pipeline: sequence assembly,
// print validation, padding, rendering, and the build log.
package service

import (
	"context"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/printcheck"
	"github.com/visioncraft/workbook/internal/render"
	"github.com/visioncraft/workbook/internal/sequence"
)

// BuildParams controls the pipeline steps beyond sequence assembly.
type BuildParams struct {
	// Product selects the print substrate for validation strictness.
	Product domain.ProductClass

	// Render produces the PDF artifact as part of the build.
	Render bool

	// SkipLog suppresses the build-log record.
	SkipLog bool
}

// BuildOutcome is everything one pipeline run produced.
type BuildOutcome struct {
	Document       *domain.Document
	Report         *printcheck.Report
	Artifact       *render.Artifact
	Record         *domain.BuildRecord
	FallbackCount  int
	DegradedCount  int
	PaddingApplied int
}

type PipelineService interface {
	// Build runs the full pipeline. Generation degradation never fails a
	// build; validation failure is reported in the outcome, not as an
	// error.
	Build(ctx context.Context, opts sequence.BuildOptions, params BuildParams) (*BuildOutcome, error)

	// Validate runs print validation over an existing document.
	Validate(ctx context.Context, doc *domain.Document, product domain.ProductClass) (*printcheck.Report, error)

	// Render produces the PDF artifact for an existing document.
	Render(ctx context.Context, doc *domain.Document) (*render.Artifact, error)

	// History lists recent build records, newest first.
	History(ctx context.Context, limit int) ([]*domain.BuildRecord, error)

	// RecordArtifact stores where a rendered artifact was written.
	RecordArtifact(ctx context.Context, recordID, path string) error
}
