package domain

import "time"

// BuildRecord is one entry in the local build log: a document that went
// through the build pipeline, with its validation verdict and where the
// rendered artifact landed. The log is an operator convenience, not the
// source of truth for orders.
type BuildRecord struct {
	ID               string      `json:"id"`
	DocumentID       string      `json:"documentId"`
	Title            string      `json:"title"`
	Edition          Edition     `json:"edition"`
	Trim             TrimSizeID  `json:"trim"`
	Binding          BindingType `json:"binding"`
	ThemeID          string      `json:"themeId"`
	PageCount        int         `json:"pageCount"`
	ValidationStatus string      `json:"validationStatus"`
	ErrorCount       int         `json:"errorCount"`
	WarningCount     int         `json:"warningCount"`
	FallbackCount    int         `json:"fallbackCount"`
	DegradedCount    int         `json:"degradedCount"`
	PaddingAdded     bool        `json:"paddingAdded"`
	ArtifactPath     string      `json:"artifactPath,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
}
