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

package pmatch

import (
	"github.com/patterncore/pmatch/engine"
	"github.com/patterncore/pmatch/matcher"
	"github.com/patterncore/pmatch/pattern"
	"github.com/patterncore/pmatch/util"
)

// Clause pairs a pattern with the body to evaluate against each set of
// bindings that pattern produces against the target.
type Clause struct {
	Pattern pattern.Pattern
	Body    func(pattern.Bindings) interface{}
}

// Cursor is a lazy, pull-based sequence of clause results. Calling Next
// advances the underlying search driver(s) synchronously; nothing runs
// until the caller asks for it, and nothing runs ahead of what's been
// asked for.
type Cursor struct {
	mode    engine.Mode
	target  pattern.Value
	matcher matcher.Matcher
	clauses []Clause

	index   int
	current *engine.Driver
}

func newCursor(mode engine.Mode, target pattern.Value, m matcher.Matcher, clauses []Clause) *Cursor {
	return &Cursor{mode: mode, target: target, matcher: m, clauses: clauses}
}

// Next returns the next result, or ok=false when every clause's solutions
// have been exhausted, or a non-nil error if expansion hit a programmer
// error (ArityMismatch, UnsupportedPattern, Deadlock).
func (c *Cursor) Next() (interface{}, bool, error) {
	for c.index < len(c.clauses) {
		cl := c.clauses[c.index]
		if c.current == nil {
			util.Logf("pmatch: starting clause %d", c.index)
			c.current = engine.NewDriver(c.mode, engine.Seed(cl.Pattern, c.matcher, c.target))
		}

		bs, ok, err := c.current.Next()
		if err != nil {
			// A programmer error aborts the whole cursor, not just this
			// clause: later clauses are not tried.
			c.current = nil
			c.index = len(c.clauses)
			return nil, false, err
		}
		if !ok {
			c.current = nil
			c.index++
			continue
		}
		return cl.Body(bs), true, nil
	}
	return nil, false, nil
}

// Take pulls up to n results eagerly. It's a convenience for tests and
// demos over what would otherwise be an infinite Cursor; it never blocks
// forever because it only ever calls Next n times.
func (c *Cursor) Take(n int) ([]interface{}, error) {
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		v, ok, err := c.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out, nil
}

// Match evaluates the body of the first clause whose pattern has at least
// one solution against target, applied to that first solution's
// bindings. It fails with pattern.ErrNoMatch if no clause matches.
func Match(target pattern.Value, m matcher.Matcher, clauses []Clause) (interface{}, error) {
	c := newCursor(engine.DFS, target, m, clauses)
	v, ok, err := c.Next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pattern.ErrNoMatch{}
	}
	return v, nil
}

// MatchAll concatenates the lazy result streams of every clause (each
// projected through that clause's body), enumerated fair-breadth-first so
// that infinite solution sets never starve a finite one.
func MatchAll(target pattern.Value, m matcher.Matcher, clauses []Clause) *Cursor {
	return newCursor(engine.BFS, target, m, clauses)
}

// MatchDFS is MatchAll with depth-first ordering instead of fair
// breadth-first.
func MatchDFS(target pattern.Value, m matcher.Matcher, clauses []Clause) *Cursor {
	return newCursor(engine.DFS, target, m, clauses)
}
