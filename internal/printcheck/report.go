package printcheck

// Status is the aggregate validation verdict.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
)

// Issue is one human-readable finding, serializable for the UI collaborator.
type Issue struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	PageNumber int    `json:"pageNumber,omitempty"`
}

// Issue codes.
const (
	CodePageCountLow    = "PAGE_COUNT_BELOW_MIN"
	CodePageCountHigh   = "PAGE_COUNT_ABOVE_MAX"
	CodePageCountOdd    = "PAGE_COUNT_ODD"
	CodeImageResolution = "IMAGE_RESOLUTION_LOW"
	CodeImageUnreadable = "IMAGE_UNREADABLE"
)

// ImageResolution is the per-image check detail.
type ImageResolution struct {
	PageNumber     int         `json:"pageNumber"`
	BlockID        string      `json:"blockId"`
	URL            string      `json:"url"`
	WidthPx        int         `json:"widthPx"`
	HeightPx       int         `json:"heightPx"`
	TargetWidthMm  float64     `json:"targetWidthMm"`
	TargetHeightMm float64     `json:"targetHeightMm"`
	EffectiveDPI   float64     `json:"effectiveDpi"`
	Band           QualityBand `json:"band"`
	ProbeError     string      `json:"probeError,omitempty"`
}

// PageCountCheck summarizes the page-count rule evaluation.
type PageCountCheck struct {
	Current       int  `json:"current"`
	Min           int  `json:"min"`
	Max           int  `json:"max"`
	IsEven        bool `json:"isEven"`
	PaddingNeeded int  `json:"paddingNeeded"`
}

// Report is the full validation result. The engine never mutates the
// document; everything corrective (padding) is a caller decision.
type Report struct {
	Status           Status            `json:"status"`
	Errors           []Issue           `json:"errors"`
	Warnings         []Issue           `json:"warnings"`
	ImageResolutions []ImageResolution `json:"imageResolutions"`
	PageCount        PageCountCheck    `json:"pageCount"`
}

func (r *Report) addError(issue Issue) {
	r.Errors = append(r.Errors, issue)
	r.Status = StatusInvalid
}

func (r *Report) addWarning(issue Issue) {
	r.Warnings = append(r.Warnings, issue)
}
