package encode

import (
	"testing"

	"github.com/yamldump/go-yamldump/internal/enctest"
	"github.com/yamldump/go-yamldump/ir"
)

func TestScanDuplicates(t *testing.T) {
	a := ir.FromKeyVals([]ir.KeyVal{kv("y", ir.FromInt(2))})
	b := ir.FromKeyVals([]ir.KeyVal{kv("x", ir.FromInt(1))})
	root := ir.FromKeyVals([]ir.KeyVal{
		kv("p", b),
		kv("q", a),
		kv("r", ir.FromSlice([]*ir.Node{a, b})),
	})

	es := newEncState()
	scanDuplicates(es, root)
	if len(es.dupIndex) != 2 {
		t.Fatalf("dupIndex has %d entries, want 2", len(es.dupIndex))
	}
	// anchor numbers follow first-discovery order, not detection order
	if es.dupIndex[b] != 0 {
		t.Errorf("dupIndex[b] = %d, want 0", es.dupIndex[b])
	}
	if es.dupIndex[a] != 1 {
		t.Errorf("dupIndex[a] = %d, want 1", es.dupIndex[a])
	}
}

func TestSharedMappingAnchored(t *testing.T) {
	shared := ir.FromKeyVals([]ir.KeyVal{kv("c", ir.FromInt(1))})
	root := ir.FromKeyVals([]ir.KeyVal{
		kv("x", shared),
		kv("y", shared),
	})
	enctest.Equal(t, "x: &ref_0\n  c: 1\ny: *ref_0\n", mustDump(t, root))
}

func TestSharedNodesRenderOrder(t *testing.T) {
	a := ir.FromKeyVals([]ir.KeyVal{kv("y", ir.FromInt(2))})
	b := ir.FromKeyVals([]ir.KeyVal{kv("x", ir.FromInt(1))})
	root := ir.FromKeyVals([]ir.KeyVal{
		kv("p", b),
		kv("q", a),
		kv("r", ir.FromSlice([]*ir.Node{a, b})),
	})
	want := "p: &ref_0\n  x: 1\n" +
		"q: &ref_1\n  y: 2\n" +
		"r:\n  - *ref_1\n  - *ref_0\n"
	enctest.Equal(t, want, mustDump(t, root))
}

func TestAnchorsOff(t *testing.T) {
	shared := ir.FromKeyVals([]ir.KeyVal{kv("c", ir.FromInt(1))})
	root := ir.FromKeyVals([]ir.KeyVal{
		kv("x", shared),
		kv("y", shared),
	})
	enctest.Equal(t, "x:\n  c: 1\ny:\n  c: 1\n", mustDump(t, root, Anchors(false)))
}

func TestCyclicMapping(t *testing.T) {
	root := &ir.Node{Type: ir.ObjectType}
	root.Fields = []*ir.Node{ir.FromString("self")}
	root.Values = []*ir.Node{root}
	enctest.Equal(t, "&ref_0\nself: *ref_0\n", mustDump(t, root))
}

func TestFlowAnchor(t *testing.T) {
	shared := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	root := ir.FromKeyVals([]ir.KeyVal{
		kv("x", shared),
		kv("y", shared),
	})
	got := mustDump(t, root, FlowLevel(0))
	enctest.Equal(t, "{x: &ref_0 [1], y: *ref_0}\n", got)
}

func TestScalarsNeverAnchored(t *testing.T) {
	s := ir.FromString("v")
	root := ir.FromKeyVals([]ir.KeyVal{
		kv("a", s),
		kv("b", s),
	})
	enctest.Equal(t, "a: v\nb: v\n", mustDump(t, root))
}
