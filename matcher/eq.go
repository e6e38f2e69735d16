package matcher

import "github.com/patterncore/pmatch/pattern"

// EqMatcher is used for leaf (atomic) types: ValueEq matches by
// reflect.DeepEqual, which coincides with == for every comparable type an
// atomic matcher is meant to carry (numbers, strings, bools). It supports
// no User pattern formers of its own.
type EqMatcher struct{}

// Eq is the canonical atomic-equality matcher instance.
var Eq Matcher = EqMatcher{}

func (EqMatcher) Name() string { return "Eq" }

func (EqMatcher) Decompose(tag string, args []pattern.Pattern, b pattern.Bindings, target pattern.Value) ([]Alternative, error) {
	return nil, pattern.ErrUnsupportedPattern{Tag: tag, Matcher: "Eq"}
}
