package pattern

// Pattern is a recursive sum type over the pattern formers: Wildcard,
// VarBind, ValueEq, Predicate, And, Or, Not, Later, Lambda, and User.
// No evaluation happens at construction time: the closures attached to
// ValueEq, Predicate, Later, Lambda and User are captured by reference and
// run only when the engine expands the atom that carries them.
type Pattern interface {
	// Arity is the statically known number of values this pattern
	// contributes to Bindings once fully expanded, so that
	// |bindings_out| = |bindings_in| + arity. The engine consults it only
	// to enforce that Or's two branches agree; it does not re-check the
	// binding count at run time.
	Arity() int

	isPattern()
}

// --- Wildcard ---------------------------------------------------------

// WildcardPattern binds nothing and always matches.
type WildcardPattern struct{}

// Wildcard is the pattern that matches anything and binds nothing.
var Wildcard Pattern = WildcardPattern{}

func (WildcardPattern) Arity() int { return 0 }
func (WildcardPattern) isPattern() {}

// --- VarBind ------------------------------------------------------------

// VarBindPattern binds the whole target to the next binding slot. Name is
// advisory, carried only for diagnostics and for surface syntax that
// rewrites $name into a VarBind.
type VarBindPattern struct {
	Name string
}

// VarBind constructs a pattern that binds its target under the given
// (advisory) name.
func VarBind(name string) Pattern { return VarBindPattern{Name: name} }

func (VarBindPattern) Arity() int { return 1 }
func (VarBindPattern) isPattern() {}

// --- ValueEq --------------------------------------------------------------

// ValueEqPattern matches iff the target equals Expr(bindings).
type ValueEqPattern struct {
	Expr func(Bindings) Value
}

// ValueEq constructs a value-equality pattern from a closure over the
// current bindings.
func ValueEq(expr func(Bindings) Value) Pattern {
	return ValueEqPattern{Expr: expr}
}

// Val constructs a ValueEq pattern that always evaluates to the same
// constant, the common case of matching a literal.
func Val(v Value) Pattern {
	return ValueEqPattern{Expr: func(Bindings) Value { return v }}
}

func (ValueEqPattern) Arity() int { return 0 }
func (ValueEqPattern) isPattern() {}

// --- Predicate ------------------------------------------------------------

// PredicatePattern matches iff Fn(bindings, target) is true. Binds nothing.
type PredicatePattern struct {
	Fn func(Bindings, Value) bool
}

// Predicate constructs a predicate pattern.
func Predicate(fn func(Bindings, Value) bool) Pattern {
	return PredicatePattern{Fn: fn}
}

func (PredicatePattern) Arity() int { return 0 }
func (PredicatePattern) isPattern() {}

// --- And -------------------------------------------------------------------

// AndPattern matches iff P matches, then Q matches against the same
// target under the bindings P produced.
type AndPattern struct {
	P, Q Pattern
}

// And constructs a conjunction; Q is evaluated under P's extended
// bindings, against the same target.
func And(p, q Pattern) Pattern { return AndPattern{P: p, Q: q} }

func (a AndPattern) Arity() int { return a.P.Arity() + a.Q.Arity() }
func (AndPattern) isPattern()   {}

// --- Or ----------------------------------------------------------------

// OrPattern is the union of P's and Q's alternatives. Both sides must
// produce the same binding arity; the engine checks this when it expands
// the atom (ArityMismatch otherwise), not here at construction.
type OrPattern struct {
	P, Q Pattern
}

// Or constructs a disjunction.
func Or(p, q Pattern) Pattern { return OrPattern{P: p, Q: q} }

func (o OrPattern) Arity() int { return o.P.Arity() }
func (OrPattern) isPattern()   {}

// --- Not -----------------------------------------------------------------

// NotPattern matches iff P produces no solution under the current
// bindings. P must itself have arity 0; NotPattern binds nothing.
type NotPattern struct {
	P Pattern
}

// Not constructs a negation. P must bind nothing (arity 0); neither this
// constructor nor the engine's expansion of the Not checks that.
func Not(p Pattern) Pattern { return NotPattern{P: p} }

func (NotPattern) Arity() int { return 0 }
func (NotPattern) isPattern() {}

// --- Later ---------------------------------------------------------------

// LaterPattern evaluates to a value-equality pattern, but only once its
// dependencies (whatever prior bindings Expr reads) exist. Expr reports ok
// = false when it cannot yet be evaluated; the engine re-enqueues the atom
// at the bottom of the obligation stack and retries later.
type LaterPattern struct {
	Expr func(Bindings) (Value, bool)
}

// Later constructs a deferred value-equality pattern used to express a
// forward reference to a sibling pattern's bindings.
func Later(expr func(Bindings) (Value, bool)) Pattern {
	return LaterPattern{Expr: expr}
}

func (LaterPattern) Arity() int { return 0 }
func (LaterPattern) isPattern() {}

// --- Lambda --------------------------------------------------------------

// LambdaPattern is a pure value pattern matched by equality, like ValueEq,
// but named separately since surface syntax distinguishes "a computed
// value" (Lambda) from "an externally supplied expression" (ValueEq). The
// engine treats both identically.
type LambdaPattern struct {
	Fn func(Bindings) Value
}

// Lambda constructs a pattern matched by equality against Fn(bindings).
func Lambda(fn func(Bindings) Value) Pattern {
	return LambdaPattern{Fn: fn}
}

func (LambdaPattern) Arity() int { return 0 }
func (LambdaPattern) isPattern() {}

// --- User ------------------------------------------------------------------

// UserPattern is a matcher-level pattern former: list/multiset/set cons,
// join, or any matcher-specific extension. Tag names the former (e.g.
// "cons", "join"); Args are the sub-patterns the former takes (e.g. head
// and tail for cons). The engine hands Tag, Args, the current bindings,
// the matcher and the target to the matcher's Decompose method; it does
// not interpret Args itself.
//
// A UserPattern's own arity is the sum of its Args' arities: the former
// itself never binds anything extra, only the sub-patterns it decomposes
// into do.
type UserPattern struct {
	Tag  string
	Args []Pattern
}

// User constructs a matcher-dispatched pattern former.
func User(tag string, args ...Pattern) Pattern {
	return UserPattern{Tag: tag, Args: args}
}

func (u UserPattern) Arity() int {
	n := 0
	for _, a := range u.Args {
		n += a.Arity()
	}
	return n
}
func (UserPattern) isPattern() {}

// Cons is the list/multiset/set "head :: tail" former, built on User.
func Cons(head, tail Pattern) Pattern { return User("cons", head, tail) }

// Join is the list "prefix ++ suffix" former, built on User.
func Join(prefix, suffix Pattern) Pattern { return User("join", prefix, suffix) }
