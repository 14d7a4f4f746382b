package workflow

import "fmt"

// GraphID identifies one stored revision of a named workflow definition.
// A name may exist in many versions; (Name, Version) is unique and ID is the
// storage-internal surrogate key the node and arc rows hang off.
type GraphID struct {
	// ID is the internal database identifier of this graph revision.
	ID int64
	// Name is the human-chosen workflow name, e.g. "approve-request".
	Name string
	// Version is the revision number within the name. Latest = highest.
	Version int
}

// String returns the canonical "name/version" form used in logs and errors.
func (g GraphID) String() string {
	return fmt.Sprintf("%s/%d", g.Name, g.Version)
}
