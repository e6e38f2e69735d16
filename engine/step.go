package engine

import (
	"github.com/patterncore/pmatch/matcher"
	"github.com/patterncore/pmatch/pattern"
)

// step pops s's top atom and dispatches on its pattern, returning every
// child state the expansion produces (zero, one, or many) and a non-nil
// error only for the three "abort the whole search" programmer-error
// kinds.
func step(s State) ([]State, error) {
	top := s.stack[0]
	rest := s.stack[1:]
	b, t, m := s.Bindings, top.Target, top.Matcher

	switch p := top.Pattern.(type) {
	case pattern.WildcardPattern:
		return []State{s.withStack(rest, true)}, nil

	case pattern.VarBindPattern:
		next := s
		next.Bindings = b.Append(t)
		return []State{next.withStack(rest, true)}, nil

	case pattern.ValueEqPattern:
		if pattern.Equal(p.Expr(b), t) {
			return []State{s.withStack(rest, true)}, nil
		}
		return nil, nil

	case pattern.LambdaPattern:
		if pattern.Equal(p.Fn(b), t) {
			return []State{s.withStack(rest, true)}, nil
		}
		return nil, nil

	case pattern.PredicatePattern:
		if p.Fn(b, t) {
			return []State{s.withStack(rest, true)}, nil
		}
		return nil, nil

	case pattern.AndPattern:
		stack := prepend(rest, atom{Atom: matcher.Atom{Pattern: p.Q, Matcher: m, Target: t}})
		stack = prepend(stack, atom{Atom: matcher.Atom{Pattern: p.P, Matcher: m, Target: t}})
		return []State{s.withStack(stack, true)}, nil

	case pattern.OrPattern:
		if p.P.Arity() != p.Q.Arity() {
			return nil, pattern.ErrArityMismatch{Left: p.P.Arity(), Right: p.Q.Arity()}
		}
		left := s.withStack(prepend(rest, atom{Atom: matcher.Atom{Pattern: p.P, Matcher: m, Target: t}}), true)
		right := s.withStack(prepend(rest, atom{Atom: matcher.Atom{Pattern: p.Q, Matcher: m, Target: t}}), true)
		return []State{left, right}, nil

	case pattern.NotPattern:
		sub := seed(p.P, m, t)
		_, found, err := NewDriver(DFS, sub).Next()
		if err != nil {
			return nil, err
		}
		if found {
			return nil, nil
		}
		return []State{s.withStack(rest, true)}, nil

	case pattern.LaterPattern:
		v, ok := p.Expr(b)
		if ok {
			if pattern.Equal(v, t) {
				return []State{s.withStack(rest, true)}, nil
			}
			return nil, nil
		}
		if top.deferrals >= 1 && s.noProgress >= len(s.stack) {
			return nil, pattern.ErrDeadlock{}
		}
		deferred := top
		deferred.deferrals++
		next := s.withStack(append(append([]atom(nil), rest...), deferred), false)
		next.noProgress = s.noProgress + 1
		return []State{next}, nil

	case pattern.UserPattern:
		alts, err := m.Decompose(p.Tag, p.Args, b, t)
		if err != nil {
			return nil, err
		}
		children := make([]State, 0, len(alts))
		for _, alt := range alts {
			stack := append([]atom(nil), rest...)
			for i := len(alt) - 1; i >= 0; i-- {
				stack = prepend(stack, atom{Atom: alt[i]})
			}
			children = append(children, s.withStack(stack, true))
		}
		return children, nil

	default:
		return nil, pattern.ErrUnsupportedPattern{Tag: "?", Matcher: m.Name()}
	}
}

func prepend(stack []atom, a atom) []atom {
	out := make([]atom, 0, len(stack)+1)
	out = append(out, a)
	out = append(out, stack...)
	return out
}
