package workflow

// Arc is a directed edge between two node references of the same graph.
type Arc struct {
	// ID is the internal database identifier of the arc row.
	ID int64
	// Name labels the arc. Engines use named arcs to pick which outgoing
	// paths a completing node activates. Empty is the default arc.
	Name string
	// TailRefID is the RefID of the node the arc leaves.
	TailRefID int64
	// HeadRefID is the RefID of the node the arc enters.
	HeadRefID int64
}
