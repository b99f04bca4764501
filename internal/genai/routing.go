package genai

import "strings"

// ProviderID names one of the static backing providers.
type ProviderID string

const (
	// ProviderGallery handles vision and gallery content, and is the
	// default route.
	ProviderGallery ProviderID = "gallery"

	// ProviderFinance handles budget and financial content.
	ProviderFinance ProviderID = "finance"

	// ProviderJournal handles reflection and journaling content.
	ProviderJournal ProviderID = "journal"
)

// RouteKind selects the backing provider for a content kind. The routing is
// a pure function of the kind string: substring matches decide the route,
// and anything unmatched goes to the gallery provider.
func RouteKind(kind ContentKind) ProviderID {
	k := strings.ToLower(string(kind))
	switch {
	case strings.Contains(k, "vision"), strings.Contains(k, "gallery"):
		return ProviderGallery
	case strings.Contains(k, "budget"), strings.Contains(k, "financial"), strings.Contains(k, "savings"):
		return ProviderFinance
	case strings.Contains(k, "reflection"), strings.Contains(k, "journal"):
		return ProviderJournal
	default:
		return ProviderGallery
	}
}
