package matcher

import "github.com/patterncore/pmatch/pattern"

// SomethingMatcher is the opaque matcher: only the universal patterns
// (Wildcard, VarBind, ValueEq, Predicate, And, Or, Not, Later, Lambda)
// apply against it. Any User pattern former directed at Something is a
// programmer error.
type SomethingMatcher struct{}

// Something is the canonical opaque matcher instance.
var Something Matcher = SomethingMatcher{}

func (SomethingMatcher) Name() string { return "Something" }

func (SomethingMatcher) Decompose(tag string, args []pattern.Pattern, b pattern.Bindings, target pattern.Value) ([]Alternative, error) {
	return nil, pattern.ErrUnsupportedPattern{Tag: tag, Matcher: "Something"}
}
