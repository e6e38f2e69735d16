package engine

import (
	"reflect"
	"testing"

	"github.com/patterncore/pmatch/matcher"
	"github.com/patterncore/pmatch/pattern"
	"github.com/patterncore/pmatch/seq"
)

func ints(xs ...int) seq.Seq {
	vs := make([]pattern.Value, len(xs))
	for i, x := range xs {
		vs[i] = x
	}
	return seq.FromSlice(vs)
}

func TestListConsFirstSolutionOnly(t *testing.T) {
	p := pattern.Cons(pattern.VarBind("x"), pattern.VarBind("xs"))
	d := NewDriver(DFS, Seed(p, matcher.List(matcher.Eq), ints(1, 2, 5, 9, 4)))

	bs, ok, err := d.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if bs[0] != 1 {
		t.Errorf("got x=%v, want 1", bs[0])
	}
	tail := seq.ToSlice(bs[1].(seq.Seq), 10)
	if !reflect.DeepEqual(tail, []pattern.Value{2, 5, 9, 4}) {
		t.Errorf("got xs=%v, want [2 5 9 4]", tail)
	}
}

func TestMultisetConsEnumeratesEveryPosition(t *testing.T) {
	p := pattern.Cons(pattern.VarBind("x"), pattern.VarBind("xs"))
	d := NewDriver(BFS, Seed(p, matcher.Multiset(matcher.Eq), ints(1, 2, 5, 9, 4)))

	var got []pattern.Value
	for {
		bs, ok, err := d.Next()
		if err != nil {
			t.Fatalf("Next: %s", err)
		}
		if !ok {
			break
		}
		got = append(got, bs[0])
	}

	want := []pattern.Value{1, 2, 5, 9, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSetConsSkipsDuplicatesAndRepeatsTail(t *testing.T) {
	p := pattern.Cons(pattern.VarBind("x"), pattern.VarBind("xs"))
	d := NewDriver(BFS, Seed(p, matcher.Set(matcher.Eq), ints(1, 2, 1, 3)))

	var got []pattern.Value
	for {
		bs, ok, err := d.Next()
		if err != nil {
			t.Fatalf("Next: %s", err)
		}
		if !ok {
			break
		}
		got = append(got, bs[0])
		if tail := seq.ToSlice(bs[1].(seq.Seq), 10); !reflect.DeepEqual(tail, []pattern.Value{1, 2, 1, 3}) {
			t.Errorf("x=%v: got tail %v, want the whole original [1 2 1 3]", bs[0], tail)
		}
	}

	want := []pattern.Value{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (the repeated 1 must not produce a second solution)", got, want)
	}
}

func TestAndThreadsBindingsThroughSameTarget(t *testing.T) {
	p := pattern.And(pattern.VarBind("x"), pattern.Predicate(func(b pattern.Bindings, t pattern.Value) bool {
		return b[0] == t
	}))
	d := NewDriver(DFS, Seed(p, matcher.Eq, 7))

	bs, ok, err := d.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if bs[0] != 7 {
		t.Errorf("got %v, want 7", bs[0])
	}
}

func TestOrUnionsBothBranches(t *testing.T) {
	p := pattern.Or(pattern.Val(1), pattern.Val(2))
	d := NewDriver(BFS, Seed(p, matcher.Eq, 2))

	bs, ok, err := d.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if len(bs) != 0 {
		t.Errorf("Val has arity 0, expected no bindings, got %v", bs)
	}

	if _, ok, err := d.Next(); err != nil || ok {
		t.Errorf("expected exactly one solution for target 2, got ok=%v err=%v", ok, err)
	}
}

func TestOrArityMismatchErrors(t *testing.T) {
	p := pattern.Or(pattern.VarBind("x"), pattern.Val(2))
	d := NewDriver(DFS, Seed(p, matcher.Eq, 2))

	_, _, err := d.Next()
	if _, ok := err.(pattern.ErrArityMismatch); !ok {
		t.Fatalf("got err=%v, want ErrArityMismatch", err)
	}
}

func TestNotFailsWhenInnerMatches(t *testing.T) {
	p := pattern.Not(pattern.Val(3))
	d := NewDriver(DFS, Seed(p, matcher.Eq, 3))

	if _, ok, err := d.Next(); err != nil || ok {
		t.Errorf("expected Not(3) to fail against target 3, got ok=%v err=%v", ok, err)
	}
}

func TestNotSucceedsWhenInnerFails(t *testing.T) {
	p := pattern.Not(pattern.Val(3))
	d := NewDriver(DFS, Seed(p, matcher.Eq, 4))

	if _, ok, err := d.Next(); err != nil || !ok {
		t.Errorf("expected Not(3) to succeed against target 4, got ok=%v err=%v", ok, err)
	}
}

func TestLaterResolvesOnceDependencyIsBound(t *testing.T) {
	// x binds 3, then a Later pattern checks the (same) target against
	// whatever x was bound to -- a forward reference that only becomes
	// decidable once x is bound, exercising the Expr plumbing end to end.
	later := pattern.Later(func(b pattern.Bindings) (pattern.Value, bool) {
		if len(b) < 1 {
			return nil, false
		}
		return b[0], true
	})
	p := pattern.And(pattern.VarBind("x"), later)

	d := NewDriver(DFS, Seed(p, matcher.Eq, 3))
	bs, ok, err := d.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if bs[0] != 3 {
		t.Fatalf("got %v, want 3", bs[0])
	}
}

func TestLaterDeadlocksWhenDependencyNeverArrives(t *testing.T) {
	later := pattern.Later(func(b pattern.Bindings) (pattern.Value, bool) {
		return nil, false
	})
	d := NewDriver(DFS, Seed(later, matcher.Eq, 1))

	_, _, err := d.Next()
	if _, ok := err.(pattern.ErrDeadlock); !ok {
		t.Fatalf("got err=%v, want ErrDeadlock", err)
	}
}

func TestFairBFSOverInfiniteListDoesNotStarve(t *testing.T) {
	// Cons($x, Cons($y, _)) over [1..]: with fair BFS this must produce
	// (1,2) as its first solution in a bounded number of steps, even though
	// the target never ends.
	p := pattern.Cons(pattern.VarBind("x"), pattern.Cons(pattern.VarBind("y"), pattern.Wildcard))
	naturals := func() seq.Seq { return seq.Ints(1) }
	d := NewDriver(BFS, Seed(p, matcher.List(matcher.Eq), naturals()))

	bs, ok, err := d.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if bs[0] != 1 || bs[1] != 2 {
		t.Errorf("got (%v, %v), want (1, 2)", bs[0], bs[1])
	}
}

func TestPredicateFiltersSolutions(t *testing.T) {
	p := pattern.Cons(pattern.And(pattern.VarBind("x"), pattern.Predicate(func(b pattern.Bindings, t pattern.Value) bool {
		return t.(int)%2 == 0
	})), pattern.Wildcard)
	d := NewDriver(BFS, Seed(p, matcher.Multiset(matcher.Eq), ints(1, 2, 3, 4)))

	var got []pattern.Value
	for {
		bs, ok, err := d.Next()
		if err != nil {
			t.Fatalf("Next: %s", err)
		}
		if !ok {
			break
		}
		got = append(got, bs[0])
	}

	want := []pattern.Value{2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
