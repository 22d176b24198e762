package tomlq

import (
	"errors"
	"testing"
)

func TestMatchTable(t *testing.T) {
	doc := mustParse(t, confDoc)
	tests := []struct {
		Query   string
		Program string
		Want    bool
	}{
		{Query: "server", Program: `port == 8080 && tls`, Want: true},
		{Query: "server", Program: `host == "example.com"`, Want: false},
		{Query: "accounts.[0]", Program: `admin && name == "alice"`, Want: true},
		{Query: "server.port", Program: `value > 1024`, Want: true},
		{Query: "server.host", Program: `value startsWith "local"`, Want: true},
		{Query: "server.timeout", Program: `value < 1.0`, Want: false},
	}
	for _, tc := range tests {
		got, err := Match(doc, tc.Query, tc.Program)
		if err != nil {
			t.Errorf("%q / %q: unexpected error %v", tc.Query, tc.Program, err)
			continue
		}
		if got != tc.Want {
			t.Errorf("%q / %q: got %v, want %v", tc.Query, tc.Program, got, tc.Want)
		}
	}
}

func TestMatchErrors(t *testing.T) {
	doc := mustParse(t, confDoc)
	if _, err := Match(doc, "cluster", `true`); err == nil {
		t.Errorf("absent query should fail")
	} else {
		var naErr *NotAvailableError
		if !errors.As(err, &naErr) {
			t.Errorf("got %T, want *NotAvailableError", err)
		}
	}
	if _, err := Match(doc, "server", `port +`); err == nil {
		t.Errorf("malformed program should fail")
	}
	if _, err := Match(doc, "server", `port`); err == nil {
		t.Errorf("non-bool result should fail")
	}
}

func TestFilter(t *testing.T) {
	doc := mustParse(t, confDoc)
	admins, err := Filter(doc, "accounts", `admin`)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("got %d elements, want 1", len(admins))
	}
	if name := admins[0].Table["name"].String; name != "alice" {
		t.Errorf("got %q, want alice", name)
	}

	none, err := Filter(doc, "accounts", `name == "carol"`)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d elements, want 0", len(none))
	}
}

func TestFilterScalars(t *testing.T) {
	doc := mustParse(t, "nums: [1, 5, 12, 3]")
	big, err := Filter(doc, "nums", `value > 4`)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(big) != 2 || big[0].Int != 5 || big[1].Int != 12 {
		t.Errorf("got %d elements", len(big))
	}
}

func TestFilterNotArray(t *testing.T) {
	doc := mustParse(t, confDoc)
	_, err := Filter(doc, "server", `true`)
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("got %T (%v), want *TypeError", err, err)
	}
	if typeErr.Expected != "Array" {
		t.Errorf("got %+v", typeErr)
	}
}
