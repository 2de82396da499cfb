package format

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/dhamidi/minij/lang/tree"
)

// dumpConfig prints Go values without pointer addresses so that dumps of
// the same input are identical across runs.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// DumpEncoder writes the raw Go structure of a tree.
type DumpEncoder struct {
	w io.Writer
}

func NewDumpEncoder(w io.Writer) *DumpEncoder {
	return &DumpEncoder{w: w}
}

func (e *DumpEncoder) Encode(n tree.Node) error {
	_, err := io.WriteString(e.w, dumpConfig.Sdump(n))
	return err
}
