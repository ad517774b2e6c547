package summary

import "github.com/alexanderramin/chronolog/internal/domain"

// Placeholders rendered when a link cannot resolve to a live activity.
const (
	DeletedActivityLabel = "(Deleted Activity)"
	NoActivityLabel      = "No Activity"
)

// ResolveName performs the read-time join from an entry to its display
// name. A linked entry resolves to the activity's current name (or the
// deleted placeholder when the id is gone); an explicitly unlinked entry
// renders the no-activity placeholder; a legacy entry falls back to its
// stored name snapshot. The result is never written back to the entry.
func ResolveName(e domain.TimeEntry, activities []domain.Activity) string {
	switch e.Link.Kind {
	case domain.LinkLinked:
		for _, a := range activities {
			if a.ID == e.Link.ID {
				return a.Name
			}
		}
		return DeletedActivityLabel
	case domain.LinkNone:
		return NoActivityLabel
	default:
		return e.ActivityName
	}
}
