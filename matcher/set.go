package matcher

import (
	"reflect"

	"github.com/patterncore/pmatch/pattern"
	"github.com/patterncore/pmatch/seq"
)

// SetMatcher matches a seq.Seq as a set: Cons produces one alternative per
// distinct element (first-seen-index order), with the tail being the
// entire original set unchanged -- so elements may be picked again in a
// later Cons against that tail.
//
// Like MultisetMatcher, duplicate scanning never enumerates the whole
// target up front: each Decompose call looks at exactly the next element
// and either offers it (if not seen before) plus a continuation, or just
// the continuation (if it's a repeat), so a Set over an infinite target
// works the same way a Multiset or Join over one does.
type SetMatcher struct {
	Inner Matcher
}

// Set constructs a matcher for a set of elements decomposed by inner.
func Set(inner Matcher) Matcher { return SetMatcher{Inner: inner} }

func (s SetMatcher) Name() string { return "Set(" + s.Inner.Name() + ")" }

type setScan struct {
	seen      []pattern.Value
	remaining seq.Seq
	original  seq.Seq
}

func (s SetMatcher) Decompose(tag string, args []pattern.Pattern, b pattern.Bindings, target pattern.Value) ([]Alternative, error) {
	switch tag {
	case "cons":
		ph, pt := args[0], args[1]

		var st setScan
		switch t := target.(type) {
		case seq.Seq:
			st = setScan{remaining: t, original: t}
		case setScan:
			st = t
		default:
			return nil, nil
		}
		return s.pickAlternatives(ph, pt, st), nil

	default:
		return nil, pattern.ErrUnsupportedPattern{Tag: tag, Matcher: s.Name()}
	}
}

func (s SetMatcher) pickAlternatives(ph, pt pattern.Pattern, st setScan) []Alternative {
	h, t, ok := st.remaining.Uncons()
	if !ok {
		return nil
	}

	isNew := !containsDeep(st.seen, h)

	alts := make([]Alternative, 0, 2)
	if isNew {
		alts = append(alts, Alternative{
			{Pattern: ph, Matcher: s.Inner, Target: h},
			{Pattern: pt, Matcher: s, Target: st.original},
		})
	}

	nextSeen := st.seen
	if isNew {
		nextSeen = append(append([]pattern.Value(nil), st.seen...), h)
	}
	cont := pattern.User("cons", ph, pt)
	alts = append(alts, Alternative{
		{Pattern: cont, Matcher: s, Target: setScan{seen: nextSeen, remaining: t, original: st.original}},
	})

	return alts
}

func containsDeep(xs []pattern.Value, v pattern.Value) bool {
	for _, x := range xs {
		if reflect.DeepEqual(x, v) {
			return true
		}
	}
	return false
}
