/* Copyright 2018 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package seq implements a lazy, possibly-infinite singly linked sequence.
// It is the target representation the List/Multiset/Set matchers
// decompose: a plain Go slice cannot stand in for an infinite target
// ("[1..]", the primes), so every element past the head is produced by a
// thunk evaluated only when something actually asks for it.
package seq

import "github.com/patterncore/pmatch/pattern"

// Seq is an immutable cons cell: either empty, or a head plus a thunk
// that computes the tail on demand. Values are never cached across
// copies; re-deriving a tail is assumed cheap and pure, matching the
// matcher protocol's own referential-transparency requirement.
type Seq struct {
	head   pattern.Value
	ok     bool
	tailFn func() Seq
}

// Nil is the empty sequence.
var Nil = Seq{}

// Cons builds a sequence cell. tail is called at most once per Uncons
// call on this cell; callers that need the tail more than once should
// hold onto the returned Seq rather than re-calling Uncons.
func Cons(head pattern.Value, tail func() Seq) Seq {
	return Seq{head: head, ok: true, tailFn: tail}
}

// Uncons reports the head and the remaining sequence, or ok=false if s is
// empty.
func (s Seq) Uncons() (pattern.Value, Seq, bool) {
	if !s.ok {
		return nil, Nil, false
	}
	return s.head, s.tailFn(), true
}

// IsEmpty reports whether s has no elements.
func (s Seq) IsEmpty() bool { return !s.ok }

// FromSlice builds a finite Seq from a Go slice.
func FromSlice(xs []pattern.Value) Seq {
	if len(xs) == 0 {
		return Nil
	}
	head, rest := xs[0], xs[1:]
	return Cons(head, func() Seq { return FromSlice(rest) })
}

// ToSlice forces up to n elements of s into a Go slice, stopping early if
// s is shorter. For a genuinely infinite s, n must be finite -- this
// function is for tests and diagnostics, never for the engine itself.
func ToSlice(s Seq, n int) []pattern.Value {
	out := make([]pattern.Value, 0, n)
	cur := s
	for i := 0; i < n; i++ {
		h, t, ok := cur.Uncons()
		if !ok {
			break
		}
		out = append(out, h)
		cur = t
	}
	return out
}

// Concat lazily appends b after a.
func Concat(a, b Seq) Seq {
	h, t, ok := a.Uncons()
	if !ok {
		return b
	}
	return Cons(h, func() Seq { return Concat(t, b) })
}

// Ints is the infinite sequence from, from+1, from+2, ....
func Ints(from int) Seq {
	return Cons(from, func() Seq { return Ints(from + 1) })
}

// Primes is the infinite sequence of primes, produced lazily by trial
// division against the primes already produced.
func Primes() Seq {
	return primesFrom(nil, 2)
}

func primesFrom(found []int, n int) Seq {
	for {
		prime := true
		for _, p := range found {
			if p*p > n {
				break
			}
			if n%p == 0 {
				prime = false
				break
			}
		}
		if prime {
			next := append(append([]int(nil), found...), n)
			m := n
			return Cons(m, func() Seq { return primesFrom(next, m+1) })
		}
		n++
	}
}
