package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/printcheck"
	"github.com/visioncraft/workbook/internal/render"
	"github.com/visioncraft/workbook/internal/repository"
	"github.com/visioncraft/workbook/internal/sequence"
)

type pipelineService struct {
	builder  *sequence.Builder
	engine   *printcheck.Engine
	renderer *render.Renderer
	log      repository.BuildLogRepo
}

// NewPipelineService wires the pipeline stages together. log may be nil to
// run without a build log.
func NewPipelineService(
	builder *sequence.Builder,
	engine *printcheck.Engine,
	renderer *render.Renderer,
	log repository.BuildLogRepo,
) PipelineService {
	return &pipelineService{builder: builder, engine: engine, renderer: renderer, log: log}
}

func (s *pipelineService) Build(ctx context.Context, opts sequence.BuildOptions, params BuildParams) (*BuildOutcome, error) {
	if params.Product == "" {
		params.Product = domain.ProductPaper
	}

	built, err := s.builder.Build(ctx, opts)
	if err != nil {
		return nil, err
	}
	doc := built.Document

	report, err := s.engine.Validate(ctx, doc, printcheck.TargetSize{}, doc.Binding, params.Product)
	if err != nil {
		return nil, err
	}

	// Below-minimum and odd counts are fixed by padding, then the document
	// is validated again so the report reflects what will be printed.
	padded := 0
	if report.PageCount.PaddingNeeded > 0 {
		padded = sequence.ApplyPadding(doc, report)
		report, err = s.engine.Validate(ctx, doc, printcheck.TargetSize{}, doc.Binding, params.Product)
		if err != nil {
			return nil, err
		}
	}

	outcome := &BuildOutcome{
		Document:       doc,
		Report:         report,
		FallbackCount:  built.FallbackCount,
		DegradedCount:  built.DegradedCount,
		PaddingApplied: padded,
	}

	if params.Render && report.Status == printcheck.StatusValid {
		artifact, err := s.renderer.Render(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("rendering document %s: %w", doc.ID, err)
		}
		outcome.Artifact = artifact
	}

	if s.log != nil && !params.SkipLog {
		rec := &domain.BuildRecord{
			ID:               uuid.New().String(),
			DocumentID:       doc.ID,
			Title:            doc.Title,
			Edition:          doc.Edition,
			Trim:             doc.Trim,
			Binding:          doc.Binding,
			ThemeID:          doc.ThemeID,
			PageCount:        doc.PageCount(),
			ValidationStatus: string(report.Status),
			ErrorCount:       len(report.Errors),
			WarningCount:     len(report.Warnings),
			FallbackCount:    built.FallbackCount,
			DegradedCount:    built.DegradedCount,
			PaddingAdded:     padded > 0,
			CreatedAt:        time.Now().UTC(),
		}
		if err := s.log.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("recording build: %w", err)
		}
		outcome.Record = rec
	}

	return outcome, nil
}

func (s *pipelineService) Validate(ctx context.Context, doc *domain.Document, product domain.ProductClass) (*printcheck.Report, error) {
	if product == "" {
		product = domain.ProductPaper
	}
	return s.engine.Validate(ctx, doc, printcheck.TargetSize{}, doc.Binding, product)
}

func (s *pipelineService) Render(ctx context.Context, doc *domain.Document) (*render.Artifact, error) {
	return s.renderer.Render(ctx, doc)
}

func (s *pipelineService) History(ctx context.Context, limit int) ([]*domain.BuildRecord, error) {
	if s.log == nil {
		return nil, nil
	}
	return s.log.List(ctx, limit)
}

func (s *pipelineService) RecordArtifact(ctx context.Context, recordID, path string) error {
	if s.log == nil {
		return nil
	}
	return s.log.SetArtifactPath(ctx, recordID, path)
}
