package pattern

// Bindings is an ordered, heterogeneously typed tuple of previously bound
// values. Position corresponds to the left-to-right order in which
// variable binders are encountered while a pattern tree is expanded.
// Bindings grow only by append; extending a Bindings never mutates the
// one it was extended from (see Append/AppendMany), so sibling branches of
// a search that diverged from the same prefix never see each other's
// bindings.
type Bindings []Value

// Empty is the binding list with no bound values yet.
var Empty = Bindings{}

// Len reports the number of bound values.
func (bs Bindings) Len() int {
	return len(bs)
}

// Index returns the value bound at position i.
func (bs Bindings) Index(i int) Value {
	return bs[i]
}

// Append returns a new Bindings with v bound at the next position. The
// receiver is left unchanged: a branching search shares a Bindings
// prefix across sibling states, so extending it must copy rather than
// mutate in place.
func (bs Bindings) Append(v Value) Bindings {
	out := make(Bindings, len(bs)+1)
	copy(out, bs)
	out[len(bs)] = v
	return out
}

// AppendMany returns a new Bindings with vs bound, in order, after bs.
func (bs Bindings) AppendMany(vs ...Value) Bindings {
	out := make(Bindings, len(bs)+len(vs))
	copy(out, bs)
	copy(out[len(bs):], vs)
	return out
}

// Copy makes a shallow copy of the Bindings, for the (rare) caller that
// wants a mutable scratch slice without aliasing bs's backing array.
func (bs Bindings) Copy() Bindings {
	acc := make(Bindings, len(bs))
	copy(acc, bs)
	return acc
}
