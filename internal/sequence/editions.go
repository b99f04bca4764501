package sequence

import "github.com/visioncraft/workbook/internal/domain"

// editionSpec fixes the page template for one edition. The booleans and
// counts expand into the ordered kind sequence in Builder.Build; the order
// itself is the same for every edition, editions only differ in what they
// include.
type editionSpec struct {
	coachLetter   bool
	roadmap       bool
	moodTracker   bool
	goalDetails   bool // one GOAL_DETAIL page per goal
	savings       bool
	months        int
	weeklyPages   int
	reflectionPgs int
	notesPages    int
	quotePage     bool
	backCover     bool
}

var editionSpecs = map[domain.Edition]editionSpec{
	domain.EditionStarter: {
		months:        3,
		weeklyPages:   4,
		reflectionPgs: 1,
		notesPages:    2,
		backCover:     true,
	},
	domain.EditionExecutive: {
		coachLetter:   true,
		roadmap:       true,
		months:        12,
		weeklyPages:   4,
		reflectionPgs: 2,
		notesPages:    4,
		quotePage:     true,
		backCover:     true,
	},
	domain.EditionDeluxe: {
		coachLetter:   true,
		roadmap:       true,
		moodTracker:   true,
		goalDetails:   true,
		savings:       true,
		months:        12,
		weeklyPages:   12,
		reflectionPgs: 4,
		notesPages:    6,
		quotePage:     true,
		backCover:     true,
	},
}
