package domain

import "fmt"

// MalformedPageError reports a page whose typed payload does not match its
// kind. This is a programmer error, not a runtime condition to recover from.
type MalformedPageError struct {
	Kind   PageKind
	Reason string
}

func (e *MalformedPageError) Error() string {
	return fmt.Sprintf("malformed %s page: %s", e.Kind, e.Reason)
}

// Page is one typed page of a workbook document. Exactly one payload field
// may be set, and only when the kind requires it; Validate enforces the
// pairing. PageNumber is assigned only after final sequencing.
type Page struct {
	ID         string   `json:"id"`
	Kind       PageKind `json:"kind"`
	PageNumber int      `json:"pageNumber"`

	Layout LayoutMeta `json:"layout"`

	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	TextBlocks  []TextBlock  `json:"textBlocks,omitempty"`
	ImageBlocks []ImageBlock `json:"imageBlocks,omitempty"`
	Tables      []TableBlock `json:"tables,omitempty"`

	Calendar     *MonthlyCalendarData `json:"calendar,omitempty"`
	Weekly       *WeeklyPlannerData   `json:"weekly,omitempty"`
	HabitTracker *HabitTrackerData    `json:"habitTracker,omitempty"`
	Roadmap      *RoadmapData         `json:"roadmap,omitempty"`
	Budget       *BudgetData          `json:"budget,omitempty"`
	VisionSpread *VisionSpreadData    `json:"visionSpread,omitempty"`
}

// payloadField names one of Page's typed payload pointers.
type payloadField string

const (
	payloadNone         payloadField = ""
	payloadCalendar     payloadField = "calendar"
	payloadWeekly       payloadField = "weekly"
	payloadHabitTracker payloadField = "habitTracker"
	payloadRoadmap      payloadField = "roadmap"
	payloadBudget       payloadField = "budget"
	payloadVisionSpread payloadField = "visionSpread"
)

// requiredPayload maps each page kind to the payload it must carry. Kinds
// absent from the map carry no payload.
var requiredPayload = map[PageKind]payloadField{
	PageMonthlyCalendar: payloadCalendar,
	PageWeeklyPlanner:   payloadWeekly,
	PageHabitTracker:    payloadHabitTracker,
	PageRoadmap:         payloadRoadmap,
	PageBudgetOverview:  payloadBudget,
	PageSavingsTracker:  payloadBudget,
	PageVisionSpread:    payloadVisionSpread,
}

// payloads returns the set fields of p as a name -> present map.
func (p *Page) payloads() map[payloadField]bool {
	set := map[payloadField]bool{}
	if p.Calendar != nil {
		set[payloadCalendar] = true
	}
	if p.Weekly != nil {
		set[payloadWeekly] = true
	}
	if p.HabitTracker != nil {
		set[payloadHabitTracker] = true
	}
	if p.Roadmap != nil {
		set[payloadRoadmap] = true
	}
	if p.Budget != nil {
		set[payloadBudget] = true
	}
	if p.VisionSpread != nil {
		set[payloadVisionSpread] = true
	}
	return set
}

// Validate checks that p's kind is known and its payload fields match the
// kind's requirement exactly. It returns a *MalformedPageError on mismatch.
func (p *Page) Validate() error {
	if !IsValidPageKind(p.Kind) {
		return &MalformedPageError{Kind: p.Kind, Reason: "unknown page kind"}
	}

	want := requiredPayload[p.Kind]
	have := p.payloads()

	if want != payloadNone && !have[want] {
		return &MalformedPageError{
			Kind:   p.Kind,
			Reason: fmt.Sprintf("missing required %s payload", want),
		}
	}
	for field := range have {
		if field != want {
			return &MalformedPageError{
				Kind:   p.Kind,
				Reason: fmt.Sprintf("unexpected %s payload", field),
			}
		}
	}
	return nil
}

// IsPageTypeConsistent reports whether the page's payload matches its kind.
func IsPageTypeConsistent(p *Page) bool {
	return p.Validate() == nil
}
