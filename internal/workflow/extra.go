package workflow

// Extra is the open, type-indexed auxiliary payload attached to a node.
// Concrete kinds live with the module that knows how to load them (see the
// top-level modules/ tree); the core never inspects payloads beyond the tag.
type Extra interface {
	// ExtraType returns the node-type tag the payload belongs to.
	ExtraType() string
}

// NoExtra is the default payload for node types without a registered loader.
// It is a valid value, not an error condition.
type NoExtra struct{}

// ExtraType implements Extra.
func (NoExtra) ExtraType() string { return "none" }
