package script

import (
	"testing"

	"github.com/patterncore/pmatch/pattern"
)

func TestValueEvaluatesAgainstBindings(t *testing.T) {
	p := Value("b[0] + 2")
	veq, ok := p.(pattern.ValueEqPattern)
	if !ok {
		t.Fatalf("Value did not return a ValueEqPattern: %T", p)
	}

	got := veq.Expr(pattern.Bindings{3})
	n, ok := got.(int64)
	if !ok || n != 5 {
		t.Errorf("got %#v, want int64(5)", got)
	}
}

func TestPredicateSeesBindingsAndTarget(t *testing.T) {
	p := Predicate("t > b[0]")
	pred, ok := p.(pattern.PredicatePattern)
	if !ok {
		t.Fatalf("Predicate did not return a PredicatePattern: %T", p)
	}

	if !pred.Fn(pattern.Bindings{10}, 20) {
		t.Errorf("expected 20 > 10 to be true")
	}
	if pred.Fn(pattern.Bindings{10}, 5) {
		t.Errorf("expected 5 > 10 to be false")
	}
}

func TestValuePanicsOnBadSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic compiling invalid JS source")
		}
	}()
	Value("b[0] +")
}
