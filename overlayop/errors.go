package overlayop

import (
	"fmt"

	"github.com/planargeo/overlay/geom"
)

// TopologyException reports that the engine could not produce a valid
// result: noding output that fails validation, a broken or unlinked result
// ring during ring tracing, or a free hole with no containing shell.
type TopologyException struct {
	Msg   string
	Coord *geom.Coordinate
}

func (e *TopologyException) Error() string {
	if e.Coord != nil {
		return fmt.Sprintf("topology exception: %s at %v", e.Msg, *e.Coord)
	}
	return fmt.Sprintf("topology exception: %s", e.Msg)
}

func newTopologyException(msg string, c *geom.Coordinate) error {
	return &TopologyException{Msg: msg, Coord: c}
}
