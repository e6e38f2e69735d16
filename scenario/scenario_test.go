package scenario

import (
	"strings"
	"testing"

	"github.com/patterncore/pmatch"
	"github.com/patterncore/pmatch/matcher"
	"github.com/patterncore/pmatch/pattern"
)

const twoCases = `
cases:
  - title: list cons
    target: [1, 2, 5, 9, 4]
    matcher: list-of-int
    clauses: head-tail
    mode: first
    expected:
      - x: 1
  - title: multiset cons
    target: [1, 2, 5, 9, 4]
    matcher: multiset-of-int
    clauses: head-tail
    expected:
      - x: 1
      - x: 2
`

func TestLoadParsesCases(t *testing.T) {
	s, err := Load(strings.NewReader(twoCases))
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if len(s.Cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(s.Cases))
	}
	if s.Cases[0].Title != "list cons" {
		t.Errorf("got title %q", s.Cases[0].Title)
	}
	if s.Cases[1].Matcher != "multiset-of-int" {
		t.Errorf("got matcher %q", s.Cases[1].Matcher)
	}
	if len(s.Cases[1].Expected) != 2 {
		t.Errorf("got %d expected bindings, want 2", len(s.Cases[1].Expected))
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.RegisterMatcher("eq", matcher.Eq)

	m, err := r.Lookup("eq")
	if err != nil {
		t.Fatalf("Lookup: %s", err)
	}
	if m.Name() != matcher.Eq.Name() {
		t.Errorf("got matcher %v, want Eq", m)
	}

	if _, err := r.Lookup("nope"); err == nil {
		t.Errorf("expected an error looking up an unregistered matcher")
	}
}

func TestRegistryLookupClauses(t *testing.T) {
	r := NewRegistry()
	r.RegisterClauses("head-tail", []pmatch.Clause{
		{
			Pattern: pattern.Cons(pattern.VarBind("x"), pattern.VarBind("xs")),
			Body: func(b pattern.Bindings) interface{} {
				return b[0]
			},
		},
	})

	clauses, err := r.LookupClauses("head-tail")
	if err != nil {
		t.Fatalf("LookupClauses: %s", err)
	}
	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}

	if _, err := r.LookupClauses("nope"); err == nil {
		t.Errorf("expected an error looking up an unregistered clause set")
	}
}
