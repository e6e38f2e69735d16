package matcher

import (
	"github.com/patterncore/pmatch/pattern"
	"github.com/patterncore/pmatch/seq"
)

// ListMatcher matches a seq.Seq preserving order: Cons splits into exactly
// one alternative (the first element and the rest, in original order),
// and Join splits into one alternative per prefix/suffix pair, shortest
// prefix first.
//
// Join is expanded incrementally rather than all at once: decomposing
// "join" produces at most two alternatives -- stop splitting here, or
// grow the prefix by one more element and try again -- so that a Join
// against an infinite target (the twin-primes scenario) never asks the
// matcher for an infinite alternative list. The fair-BFS driver
// interleaves the "stop" and "grow" branches, which is what makes the
// shortest-prefix-first order emerge without the matcher enumerating
// anything itself.
type ListMatcher struct {
	Inner Matcher
}

// List constructs a matcher for an ordered sequence of elements decomposed
// by inner.
func List(inner Matcher) Matcher { return ListMatcher{Inner: inner} }

func (l ListMatcher) Name() string { return "List(" + l.Inner.Name() + ")" }

// joinState carries the accumulated prefix and the not-yet-considered
// remainder between successive "joinAt" decompositions of the same Join.
type joinState struct {
	prefix    []pattern.Value
	remaining seq.Seq
}

func (l ListMatcher) Decompose(tag string, args []pattern.Pattern, b pattern.Bindings, target pattern.Value) ([]Alternative, error) {
	switch tag {
	case "cons":
		xs, ok := target.(seq.Seq)
		if !ok {
			return nil, nil
		}
		ph, pt := args[0], args[1]
		h, t, ok := xs.Uncons()
		if !ok {
			return nil, nil
		}
		return []Alternative{{
			{Pattern: ph, Matcher: l.Inner, Target: h},
			{Pattern: pt, Matcher: l, Target: t},
		}}, nil

	case "join":
		xs, ok := target.(seq.Seq)
		if !ok {
			return nil, nil
		}
		pa, pb := args[0], args[1]
		return l.joinAlternatives(pa, pb, nil, xs), nil

	case "joinAt":
		st, ok := target.(joinState)
		if !ok {
			return nil, nil
		}
		pa, pb := args[0], args[1]
		return l.joinAlternatives(pa, pb, st.prefix, st.remaining), nil

	default:
		return nil, pattern.ErrUnsupportedPattern{Tag: tag, Matcher: l.Name()}
	}
}

func (l ListMatcher) joinAlternatives(pa, pb pattern.Pattern, prefix []pattern.Value, remaining seq.Seq) []Alternative {
	alts := make([]Alternative, 0, 2)

	// Stop here: pa matches the prefix accumulated so far, pb matches
	// everything not yet consumed.
	alts = append(alts, Alternative{
		{Pattern: pa, Matcher: l, Target: seq.FromSlice(prefix)},
		{Pattern: pb, Matcher: l, Target: remaining},
	})

	if h, t, ok := remaining.Uncons(); ok {
		grown := append(append([]pattern.Value(nil), prefix...), h)
		cont := pattern.User("joinAt", pa, pb)
		alts = append(alts, Alternative{
			{Pattern: cont, Matcher: l, Target: joinState{prefix: grown, remaining: t}},
		})
	}

	return alts
}
