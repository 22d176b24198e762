package parse

import (
	"strings"
	"testing"

	"github.com/signadot/toml-query/ir"
)

func TestParseYAML(t *testing.T) {
	doc, err := Parse([]byte(`
server:
  host: localhost
  ports: [80, 443]
`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	srv := ir.Get(doc, "server")
	if srv == nil || srv.Type != ir.TableType {
		t.Fatalf("got %+v", srv)
	}
	if ir.Get(srv, "host").String != "localhost" {
		t.Errorf("got %q", ir.Get(srv, "host").String)
	}
	ports := ir.Get(srv, "ports")
	if len(ports.Values) != 2 || ports.Values[1].Int != 443 {
		t.Errorf("got %+v", ports)
	}
}

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": [true, "x"]}`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if ir.Get(doc, "a").Type != ir.IntegerType {
		t.Errorf("got %s", ir.Get(doc, "a").Type)
	}
	if ir.Get(doc, "b").Values[0].Type != ir.BoolType {
		t.Errorf("got %s", ir.Get(doc, "b").Values[0].Type)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   \n\t"} {
		doc, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if doc.Type != ir.TableType || len(doc.Table) != 0 {
			t.Errorf("%q: got %+v, want empty table", in, doc)
		}
	}
}

func TestParseNull(t *testing.T) {
	if _, err := Parse([]byte("a: null")); err == nil {
		t.Errorf("null value should fail")
	}
}

func TestParseBad(t *testing.T) {
	if _, err := Parse([]byte("a: [1, 2\nb: }")); err == nil {
		t.Errorf("malformed input should fail")
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader("x: 1"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if ir.Get(doc, "x").Int != 1 {
		t.Errorf("got %+v", doc)
	}
}
