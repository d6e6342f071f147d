package config

import "strconv"

// LimitKind selects the search bound placed on a "go" command.
type LimitKind string

const (
	// LimitNodes stops the search after a number of nodes.
	LimitNodes LimitKind = "nodes"
	// LimitDepth stops the search at a depth in plies.
	LimitDepth LimitKind = "depth"
)

// Limit is the single search bound sent with every "go" command.
type Limit struct {
	Kind  LimitKind
	Value int
}

// GoCommand renders the search-start command for the limit.
func (l Limit) GoCommand() string {
	return "go " + string(l.Kind) + " " + strconv.Itoa(l.Value)
}

func (l Limit) String() string {
	return string(l.Kind) + "=" + strconv.Itoa(l.Value)
}
