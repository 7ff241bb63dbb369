package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yamldump/go-yamldump/internal/enctest"
	"github.com/yamldump/go-yamldump/ir"
	"github.com/yamldump/go-yamldump/schema"
)

func mustDump(t *testing.T, y *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	s, err := String(y, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: v}
}

func TestScalarRoots(t *testing.T) {
	cases := []struct {
		name string
		y    *ir.Node
		want string
	}{
		{"string", ir.FromString("hello"), "hello\n"},
		{"null", ir.Null(), "null\n"},
		{"bool", ir.FromBool(true), "true\n"},
		{"int", ir.FromInt(-17), "-17\n"},
		{"float", ir.FromFloat(1.5), "1.5\n"},
		{"numeric string", ir.FromString("123"), "'123'\n"},
		{"null-like string", ir.FromString("~"), "'~'\n"},
		{"empty string", ir.FromString(""), "''\n"},
		{"deprecated boolean", ir.FromString("yes"), "'yes'\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enctest.Equal(t, c.want, mustDump(t, c.y))
		})
	}
}

func TestCompatModeOff(t *testing.T) {
	got := mustDump(t, ir.FromString("yes"), CompatMode(false))
	enctest.Equal(t, "yes\n", got)
}

func TestRepresentStyleOverride(t *testing.T) {
	got := mustDump(t, ir.FromInt(255), Styles(map[string]string{"!!int": "hexadecimal"}))
	enctest.Equal(t, "0xff\n", got)
}

func TestUnknownRepresentStyle(t *testing.T) {
	_, err := String(ir.FromInt(1), Styles(map[string]string{"!!int": "roman"}))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("got %v, want ErrConfig", err)
	}
}

func TestBlockMapping(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("a", ir.FromInt(1)),
		kv("b", ir.FromString("x")),
	})
	enctest.Equal(t, "a: 1\nb: x\n", mustDump(t, y))
}

func TestNestedMapping(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("a", ir.FromKeyVals([]ir.KeyVal{kv("b", ir.FromInt(1))})),
	})
	enctest.Equal(t, "a:\n  b: 1\n", mustDump(t, y))
	enctest.Equal(t, "a:\n   b: 1\n", mustDump(t, y, Indent(3)))
}

func TestBlockSequence(t *testing.T) {
	y := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
	enctest.Equal(t, "- 1\n- 2\n", mustDump(t, y))
}

func TestSequenceUnderKey(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("a", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})),
	})
	enctest.Equal(t, "a:\n  - 1\n  - 2\n", mustDump(t, y))
	enctest.Equal(t, "a:\n- 1\n- 2\n", mustDump(t, y, ArrayIndent(false)))
}

func TestCompactNesting(t *testing.T) {
	y := ir.FromSlice([]*ir.Node{
		ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
		ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromInt(1))}),
	})
	enctest.Equal(t, "- - 1\n- a: 1\n", mustDump(t, y))
}

func TestEmptyContainers(t *testing.T) {
	enctest.Equal(t, "{}\n", mustDump(t, ir.FromMap(nil)))
	enctest.Equal(t, "[]\n", mustDump(t, ir.FromSlice(nil)))
}

func TestSortKeys(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("b", ir.FromInt(2)),
		kv("a", ir.FromInt(1)),
	})
	enctest.Equal(t, "b: 2\na: 1\n", mustDump(t, y))
	enctest.Equal(t, "a: 1\nb: 2\n", mustDump(t, y, SortKeys(true)))
	enctest.Equal(t, "b: 2\na: 1\n", mustDump(t, y, SortKeys(false)))

	reverse := func(a, b string) int { return strings.Compare(b, a) }
	enctest.Equal(t, "b: 2\na: 1\n", mustDump(t, y, SortKeys(reverse)))
}

func TestSortKeysBadValue(t *testing.T) {
	_, err := String(ir.FromMap(nil), SortKeys(42))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("got %v, want ErrConfig", err)
	}
}

func TestIndentBadValue(t *testing.T) {
	_, err := String(ir.Null(), Indent(0))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("got %v, want ErrConfig", err)
	}
}

func TestFlowLevel(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("a", ir.FromInt(1)),
		kv("b", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})),
	})
	enctest.Equal(t, "{a: 1, b: [1, 2]}\n", mustDump(t, y, FlowLevel(0)))
	enctest.Equal(t, "a: 1\nb: [1, 2]\n", mustDump(t, y, FlowLevel(1)))
	enctest.Equal(t, "{a:1,b:[1,2]}\n", mustDump(t, y, FlowLevel(0), CondenseFlow(true)))
}

func TestFlowScalarStaysSingleLine(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromString("x\ny"))})
	enctest.Equal(t, "{a: \"x\\ny\"}\n", mustDump(t, y, FlowLevel(0)))
}

func TestCondenseFlowQuotesLongKeys(t *testing.T) {
	long := strings.Repeat("k", 1100)
	y := ir.FromKeyVals([]ir.KeyVal{kv(long, ir.FromInt(1))})
	got := mustDump(t, y, FlowLevel(0), CondenseFlow(true))
	if !strings.HasPrefix(got, `{"`+long+`":1}`) {
		t.Errorf("long flow key not quoted: %q", got[:40])
	}
}

func TestTaggedString(t *testing.T) {
	y := ir.FromString("x").WithTag("!note")
	enctest.Equal(t, "!note x\n", mustDump(t, y))
}

func TestTaggedIntFallsBackToImplicitRepresent(t *testing.T) {
	y := ir.FromInt(5).WithTag("!meters")
	enctest.Equal(t, "!meters '5'\n", mustDump(t, y))
}

func TestTaggedMapping(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromInt(1))}).WithTag("!custom")
	enctest.Equal(t, "!custom \na: 1\n", mustDump(t, y))
}

func TestTagURIWrapping(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"!note", "!note x\n"},
		{"!!timestamp", "!!timestamp x\n"},
		{"tag:yaml.org,2002:set", "!!set x\n"},
		{"tag:example.com,2020:thing", "!<tag:example.com,2020:thing> x\n"},
	}
	for _, c := range cases {
		got := mustDump(t, ir.FromString("x").WithTag(c.tag))
		enctest.Equal(t, c.want, got)
	}
}

func TestCustomExplicitMatcher(t *testing.T) {
	s := schema.Default()
	s.Explicit = append(s.Explicit, &schema.Matcher{
		Tag:       "!upper",
		Predicate: func(y *ir.Node) bool { return y.Type == ir.StringType },
		Represent: func(y *ir.Node) (string, error) {
			return strings.ToUpper(y.String), nil
		},
	})
	y := ir.FromString("abc").WithTag("!upper")
	enctest.Equal(t, "!upper ABC\n", mustDump(t, y, WithSchema(s)))
}

func TestExplicitPairForTaggedKey(t *testing.T) {
	y := &ir.Node{
		Type:   ir.ObjectType,
		Fields: []*ir.Node{ir.FromString("k").WithTag("!note")},
		Values: []*ir.Node{ir.FromInt(1)},
	}
	enctest.Equal(t, "? !note k\n: 1\n", mustDump(t, y))
}

func TestExplicitPairForLongKey(t *testing.T) {
	long := strings.Repeat("k", 1100)
	y := ir.FromKeyVals([]ir.KeyVal{kv(long, ir.FromInt(1))})
	got := mustDump(t, y)
	if !strings.HasPrefix(got, "? "+long) {
		t.Errorf("long key not in explicit form: %q", got[:20])
	}
	if !strings.HasSuffix(got, "\n: 1\n") {
		t.Errorf("explicit value misplaced: %q", got[len(got)-10:])
	}
}

func TestUnsupportedNode(t *testing.T) {
	bad := &ir.Node{Type: ir.NumberType} // no numeric payload matches nothing
	_, err := String(bad)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}

func TestSkipInvalid(t *testing.T) {
	bad := &ir.Node{Type: ir.NumberType}
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("a", ir.FromInt(1)),
		kv("b", bad),
		kv("c", ir.FromInt(3)),
	})
	got := mustDump(t, y, SkipInvalid(true))
	enctest.Equal(t, "a: 1\nc: 3\n", got)

	if got := mustDump(t, bad, SkipInvalid(true)); got != "" {
		t.Errorf("dropped root gave %q, want empty", got)
	}
}

func TestBlockScalars(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"clipped", "hello\nworld", "|-\n  hello\n  world\n"},
		{"single trailing newline", "hello\n", "|\n  hello\n"},
		{"kept trailing newlines", "a\n\n", "|+\n  a\n\n"},
		{"indent indicator", " lead\ntail", "|2-\n   lead\n  tail\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enctest.Equal(t, c.want, mustDump(t, ir.FromString(c.in)))
		})
	}
}

func TestWideIndentForcesDoubleQuotes(t *testing.T) {
	got := mustDump(t, ir.FromString("\n foo"), Indent(10))
	enctest.Equal(t, "\"\\n foo\"\n", got)
}

func TestFoldedScalar(t *testing.T) {
	got := mustDump(t, ir.FromString("aaa bbb ccc ddd"), LineWidth(8))
	enctest.Equal(t, ">-\n  aaa bbb\n  ccc ddd\n", got)
}

func TestUnlimitedLineWidth(t *testing.T) {
	long := strings.Repeat("a", 1000)
	got := mustDump(t, ir.FromString(long), LineWidth(-1))
	enctest.Equal(t, long+"\n", got)
}

func TestMultilineKey(t *testing.T) {
	y := &ir.Node{
		Type:   ir.ObjectType,
		Fields: []*ir.Node{ir.FromString("a\nb")},
		Values: []*ir.Node{ir.FromInt(1)},
	}
	enctest.Equal(t, "\"a\\nb\": 1\n", mustDump(t, y))
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromInt(7)); got != "7" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	y := ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromInt(1))})
	if err := Encode(y, buf); err != nil {
		t.Fatal(err)
	}
	enctest.Equal(t, "a: 1\n", buf.String())
}
