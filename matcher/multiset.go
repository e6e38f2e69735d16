package matcher

import (
	"github.com/patterncore/pmatch/pattern"
	"github.com/patterncore/pmatch/seq"
)

// MultisetMatcher matches a seq.Seq as an unordered bag: Cons produces one
// alternative per element, in positional order (the first element's
// alternative first), with the tail being every other element in its
// original relative order.
//
// As with ListMatcher's Join, this is expanded incrementally: Decompose
// never enumerates every position in the target at once. It instead
// offers "pick the next element" and "skip it, keep scanning" as the (at
// most two) alternatives of a single step, via the same skip/continue
// encoding, so a Multiset over an infinite target (the "[1..]" fair-BFS
// scenario) works without ever asking for an infinite alternative list.
type MultisetMatcher struct {
	Inner Matcher
}

// Multiset constructs a matcher for an unordered bag of elements decomposed
// by inner.
func Multiset(inner Matcher) Matcher { return MultisetMatcher{Inner: inner} }

func (m MultisetMatcher) Name() string { return "Multiset(" + m.Inner.Name() + ")" }

// pickState carries the elements skipped over so far (to be spliced back
// into the tail, in their original order) and the not-yet-considered
// remainder.
type pickState struct {
	skipped   []pattern.Value
	remaining seq.Seq
}

func (m MultisetMatcher) Decompose(tag string, args []pattern.Pattern, b pattern.Bindings, target pattern.Value) ([]Alternative, error) {
	switch tag {
	case "cons":
		ph, pt := args[0], args[1]

		var st pickState
		switch t := target.(type) {
		case seq.Seq:
			st = pickState{remaining: t}
		case pickState:
			st = t
		default:
			return nil, nil
		}
		return m.pickAlternatives(ph, pt, st.skipped, st.remaining), nil

	default:
		return nil, pattern.ErrUnsupportedPattern{Tag: tag, Matcher: m.Name()}
	}
}

func (m MultisetMatcher) pickAlternatives(ph, pt pattern.Pattern, skipped []pattern.Value, remaining seq.Seq) []Alternative {
	h, t, ok := remaining.Uncons()
	if !ok {
		return nil
	}

	alts := make([]Alternative, 0, 2)

	// Pick h: the tail is every other element, in original order.
	tail := seq.Concat(seq.FromSlice(skipped), t)
	alts = append(alts, Alternative{
		{Pattern: ph, Matcher: m.Inner, Target: h},
		{Pattern: pt, Matcher: m, Target: tail},
	})

	// Skip h and keep scanning for the next candidate.
	grown := append(append([]pattern.Value(nil), skipped...), h)
	cont := pattern.User("cons", ph, pt)
	alts = append(alts, Alternative{
		{Pattern: cont, Matcher: m, Target: pickState{skipped: grown, remaining: t}},
	})

	return alts
}
