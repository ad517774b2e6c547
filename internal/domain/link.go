package domain

// LinkKind distinguishes the three activity-linkage states an entry can be
// in. The distinction matters on the wire: a legacy entry has no activityId
// field at all, an unlinked entry has an explicit null, and a linked entry
// carries the activity id.
type LinkKind int

const (
	// LinkLegacy marks an entry recorded before activity linking existed.
	// Its name is rendered from the stored ActivityName snapshot.
	LinkLegacy LinkKind = iota
	// LinkNone marks an entry explicitly recorded without an activity.
	LinkNone
	// LinkLinked marks an entry bound to an activity id, resolved against
	// the registry at read time.
	LinkLinked
)

// ActivityLink is the tagged union over the three linkage states.
// The zero value is LinkLegacy.
type ActivityLink struct {
	Kind LinkKind
	ID   string
}

// LinkTo returns a link bound to the given activity id.
func LinkTo(id string) ActivityLink {
	return ActivityLink{Kind: LinkLinked, ID: id}
}

// NoLink returns the explicit "no activity" link.
func NoLink() ActivityLink {
	return ActivityLink{Kind: LinkNone}
}

// LegacyLink returns the absent-field link for pre-linking entries.
func LegacyLink() ActivityLink {
	return ActivityLink{}
}
