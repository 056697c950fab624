package engine

import (
	"fmt"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/gss"
	"github.com/npillmayer/gll/sppf"
)

// Descriptor is a resumption token: (slot, gss-ref, input-position,
// sppf-node). Equality is structural, which lets the seen-set deduplicate
// descriptors with a plain map.
type Descriptor struct {
	Slot grammar.Slot
	GSS  gss.Ref
	Pos  int
	Node sppf.Node
}

func (d Descriptor) String() string {
	return fmt.Sprintf("<%s, %s, %d, %s>", d.Slot, d.GSS, d.Pos, d.Node)
}
