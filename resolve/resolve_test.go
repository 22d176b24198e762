package resolve

import (
	"errors"
	"testing"

	"github.com/signadot/toml-query/ir"
	"github.com/signadot/toml-query/parse"
	"github.com/signadot/toml-query/token"
)

const fruitDoc = `
fruit:
  blah:
    - name: apple
      physical:
        color: red
        shape: round
    - name: banana
      physical:
        color: yellow
        shape: bent
`

const scalarDoc = `
table:
  a: 1
example:
  - true
  - false
str: hello
`

func mustParse(t *testing.T, doc string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func mustToks(t *testing.T, query string) []token.Token {
	t.Helper()
	toks, err := token.Tokenize(query, token.DefaultSeparator)
	if err != nil {
		t.Fatalf("tokenize %q: %v", query, err)
	}
	return toks
}

type readTest struct {
	Doc   string
	Query string
	Type  ir.Type
	Found bool
	Err   error
}

var readTests = []readTest{
	{Doc: scalarDoc, Query: "table", Type: ir.TableType, Found: true},
	{Doc: scalarDoc, Query: "table.a", Type: ir.IntegerType, Found: true},
	{Doc: scalarDoc, Query: "example", Type: ir.ArrayType, Found: true},
	{Doc: scalarDoc, Query: "example.[0]", Type: ir.BoolType, Found: true},
	{Doc: scalarDoc, Query: "example.[1]", Type: ir.BoolType, Found: true},
	{Doc: fruitDoc, Query: "fruit.blah.[1].name", Type: ir.StringType, Found: true},
	{Doc: fruitDoc, Query: "fruit.blah.[0].physical.color", Type: ir.StringType, Found: true},

	// absent targets are not errors
	{Doc: "{}", Query: "a"},
	{Doc: scalarDoc, Query: "table.b"},
	{Doc: scalarDoc, Query: "table.b.c.d"},
	{Doc: scalarDoc, Query: "example.[4]"},
	{Doc: fruitDoc, Query: "fruit.blah.[9].name"},

	// structural mismatches are
	{Doc: scalarDoc, Query: "table.[0]", Err: ErrNoIndexInTable},
	{Doc: "{}", Query: "[0]", Err: ErrNoIndexInTable},
	{Doc: scalarDoc, Query: "example.foo", Err: ErrNoIdentifierInArray},
	{Doc: scalarDoc, Query: "table.a.b", Err: ErrQueryingValueAsTable},
	{Doc: scalarDoc, Query: "table.a.[0]", Err: ErrQueryingValueAsArray},
	{Doc: scalarDoc, Query: "str.anything", Err: ErrQueryingValueAsTable},
}

func TestRead(t *testing.T) {
	for _, tc := range readTests {
		doc := mustParse(t, tc.Doc)
		node, err := Read(doc, mustToks(t, tc.Query))
		if tc.Err != nil {
			if !errors.Is(err, tc.Err) {
				t.Errorf("%q: got error %v, want %v", tc.Query, err, tc.Err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.Query, err)
			continue
		}
		if !tc.Found {
			if node != nil {
				t.Errorf("%q: got node of type %s, want nil", tc.Query, node.Type)
			}
			continue
		}
		if node == nil {
			t.Errorf("%q: got nil, want node", tc.Query)
			continue
		}
		if node.Type != tc.Type {
			t.Errorf("%q: got type %s, want %s", tc.Query, node.Type, tc.Type)
		}
	}
}

// Mut must agree with Read on every query: same presence, same node, same
// error classification.
func TestMutAgreesWithRead(t *testing.T) {
	for _, tc := range readTests {
		doc := mustParse(t, tc.Doc)
		toks := mustToks(t, tc.Query)
		rNode, rErr := Read(doc, toks)
		mNode, mErr := Mut(doc, toks)
		if (rErr == nil) != (mErr == nil) {
			t.Errorf("%q: Read err %v, Mut err %v", tc.Query, rErr, mErr)
			continue
		}
		if rNode != mNode {
			t.Errorf("%q: Read and Mut located different nodes", tc.Query)
		}
	}
}

func TestReadEmptyPath(t *testing.T) {
	doc := mustParse(t, scalarDoc)
	node, err := Read(doc, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if node != doc {
		t.Errorf("empty path should yield the document root")
	}
}

func TestMutWritesThrough(t *testing.T) {
	doc := mustParse(t, scalarDoc)
	node, err := Mut(doc, mustToks(t, "table.a"))
	if err != nil || node == nil {
		t.Fatalf("got (%v, %v)", node, err)
	}
	node.Int = 42
	got, err := Read(doc, mustToks(t, "table.a"))
	if err != nil || got == nil {
		t.Fatalf("got (%v, %v)", got, err)
	}
	if got.Int != 42 {
		t.Errorf("got %d, want 42", got.Int)
	}
}

func TestOrCreateBuildsTables(t *testing.T) {
	doc := ir.NewTable()
	node, err := OrCreate(doc, mustToks(t, "example.foo"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if node == nil || node.Type != ir.TableType || len(node.Table) != 0 {
		t.Fatalf("want fresh empty table, got %+v", node)
	}
	ex, ok := doc.Table["example"]
	if !ok || ex.Type != ir.TableType {
		t.Fatalf("intermediate table not created")
	}
	if ex.Table["foo"] != node {
		t.Errorf("created node not linked into the document")
	}
}

func TestOrCreateIdempotent(t *testing.T) {
	doc := ir.NewTable()
	first, err := OrCreate(doc, mustToks(t, "a.b.c"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	snapshot := doc.Clone()
	second, err := OrCreate(doc, mustToks(t, "a.b.c"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if first != second {
		t.Errorf("second resolve should find the node created by the first")
	}
	if !ir.Equal(doc, snapshot) {
		t.Errorf("second resolve changed the document")
	}
}

func TestOrCreateExisting(t *testing.T) {
	doc := mustParse(t, scalarDoc)
	snapshot := doc.Clone()
	node, err := OrCreate(doc, mustToks(t, "example.[1]"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if node.Type != ir.BoolType || node.Bool {
		t.Errorf("got %+v, want existing false", node)
	}
	if !ir.Equal(doc, snapshot) {
		t.Errorf("resolving an existing node changed the document")
	}
}

func TestOrCreateErrors(t *testing.T) {
	tests := []struct {
		Query string
		Err   error
	}{
		{Query: "example.[2]", Err: ErrIndexOutOfBounds},
		{Query: "example.[2].x", Err: ErrIndexOutOfBounds},
		{Query: "table.[0]", Err: ErrNoIndexInTable},
		{Query: "example.foo", Err: ErrNoIdentifierInArray},
		{Query: "table.a.b", Err: ErrQueryingValueAsTable},
		{Query: "str.[0]", Err: ErrQueryingValueAsArray},
	}
	for _, tc := range tests {
		doc := mustParse(t, scalarDoc)
		_, err := OrCreate(doc, mustToks(t, tc.Query))
		if !errors.Is(err, tc.Err) {
			t.Errorf("%q: got error %v, want %v", tc.Query, err, tc.Err)
		}
	}
}

// Writing into a slot obtained from OrCreate must be visible to a later
// Read over the same path.
func TestOrCreateRoundTrip(t *testing.T) {
	doc := ir.NewTable()
	slot, err := OrCreate(doc, mustToks(t, "server.port"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	*slot = *ir.FromInt(8080)
	got, err := Read(doc, mustToks(t, "server.port"))
	if err != nil || got == nil {
		t.Fatalf("got (%v, %v)", got, err)
	}
	if got.Type != ir.IntegerType || got.Int != 8080 {
		t.Errorf("got %+v, want integer 8080", got)
	}
}
