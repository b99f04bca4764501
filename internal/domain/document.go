package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is an ordered sequence of pages plus document-level metadata.
// Page-count parity and vendor bounds are target invariants enforced by the
// print validation engine, not by construction; a document may transiently
// violate them before validation and padding.
type Document struct {
	ID        string      `json:"id"`
	Edition   Edition     `json:"edition"`
	Trim      TrimSizeID  `json:"trim"`
	Binding   BindingType `json:"binding"`
	ThemeID   string      `json:"themeId"`
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	Pages     []*Page     `json:"pages"`
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Validate checks every page for kind/payload consistency.
func (d *Document) Validate() error {
	for i, p := range d.Pages {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}
	return nil
}

// Renumber assigns 1-based page numbers in sequence order.
func (d *Document) Renumber() {
	for i, p := range d.Pages {
		p.PageNumber = i + 1
	}
}

// Marshal produces the wire format shared with the renderer and the
// external persistence collaborator.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	return data, nil
}

// UnmarshalDocument parses a document from its wire format and validates
// page/payload consistency.
func UnmarshalDocument(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshaling document: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
