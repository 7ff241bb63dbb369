package encode

import (
	"fmt"
	"os"

	"github.com/yamldump/go-yamldump/debug"
	"github.com/yamldump/go-yamldump/ir"
)

// scanDuplicates walks the containment graph under root in pre-order and
// fills the duplicate registry with every container node reachable through
// more than one path. Membership is by node identity, never by structural
// equality. Anchor numbers follow first-discovery pre-order and are stable
// within one call. A revisited node is not re-descended, which also bounds
// the walk on cyclic graphs.
func scanDuplicates(es *EncState, root *ir.Node) {
	var (
		objects []*ir.Node
		seen    = map[*ir.Node]bool{}
		dup     = map[*ir.Node]bool{}
	)
	var inspect func(y *ir.Node)
	inspect = func(y *ir.Node) {
		if y == nil || y.Type != ir.ObjectType && y.Type != ir.ArrayType {
			return
		}
		if seen[y] {
			dup[y] = true
			return
		}
		seen[y] = true
		objects = append(objects, y)
		for _, yf := range y.Fields {
			inspect(yf)
		}
		for _, yv := range y.Values {
			inspect(yv)
		}
	}
	inspect(root)

	es.dupIndex = map[*ir.Node]int{}
	es.usedDup = map[*ir.Node]bool{}
	for _, y := range objects {
		if !dup[y] {
			continue
		}
		es.dupIndex[y] = len(es.dupIndex)
		if debug.Anchors() {
			fmt.Fprintf(os.Stderr, "anchor ref_%d: %s node\n", es.dupIndex[y], y.Type)
		}
	}
}
