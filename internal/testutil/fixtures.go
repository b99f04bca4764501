// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/visioncraft/workbook/internal/db"
	"github.com/visioncraft/workbook/internal/domain"
	"github.com/visioncraft/workbook/internal/layout"
)

// NewTestDB opens an in-memory SQLite database with migrations applied and
// closes it when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// DocumentOption mutates a test document before it is returned.
type DocumentOption func(*domain.Document)

// WithBinding sets the document's binding type.
func WithBinding(b domain.BindingType) DocumentOption {
	return func(d *domain.Document) { d.Binding = b }
}

// WithTrim sets the document's trim size.
func WithTrim(tr domain.TrimSizeID) DocumentOption {
	return func(d *domain.Document) { d.Trim = tr }
}

// WithTheme sets the document's cover theme ID.
func WithTheme(id string) DocumentOption {
	return func(d *domain.Document) { d.ThemeID = id }
}

// WithPageCount grows or trims the notes pages so the document has exactly
// n pages.
func WithPageCount(n int) DocumentOption {
	return func(d *domain.Document) {
		for len(d.Pages) > n {
			d.Pages = d.Pages[:len(d.Pages)-1]
		}
		var meta domain.LayoutMeta
		if len(d.Pages) > 0 {
			meta = d.Pages[0].Layout
		}
		for len(d.Pages) < n {
			d.Pages = append(d.Pages, &domain.Page{
				ID:     uuid.New().String(),
				Kind:   domain.PageNotes,
				Title:  "Notes",
				Layout: meta,
			})
		}
		d.Renumber()
	}
}

// NewTestDocument builds a small valid document: cover, title, notes pages
// and a back cover on Trade 6×9 softcover. Options run after construction.
func NewTestDocument(t *testing.T, opts ...DocumentOption) *domain.Document {
	t.Helper()

	doc := &domain.Document{
		ID:        uuid.New().String(),
		Edition:   domain.EditionStarter,
		Trim:      domain.TrimTrade6x9,
		Binding:   domain.BindingSoftcover,
		ThemeID:   "midnight-garden",
		Title:     "Test Workbook",
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	kinds := []domain.PageKind{
		domain.PageCoverFront, domain.PageTitle,
		domain.PageNotes, domain.PageCoverBack,
	}
	for _, k := range kinds {
		doc.Pages = append(doc.Pages, &domain.Page{
			ID:   uuid.New().String(),
			Kind: k,
		})
	}

	for _, opt := range opts {
		opt(doc)
	}

	meta, err := layout.Resolve(doc.Trim, doc.Binding)
	if err != nil {
		t.Fatalf("resolving layout for test document: %v", err)
	}
	for _, p := range doc.Pages {
		p.Layout = meta
	}
	doc.Renumber()
	return doc
}
