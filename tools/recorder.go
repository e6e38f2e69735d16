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

// Package tools provides after-the-fact diagnostics for a match: a
// Graphviz and a Mermaid rendering of the search tree a Driver actually
// explored, and a Markdown/HTML run report.
package tools

import (
	"fmt"

	"github.com/patterncore/pmatch/engine"
	"github.com/patterncore/pmatch/pattern"
)

// Step is one expansion the search driver performed: a parent state and
// the children it produced (empty on a dead end, one element for most
// pattern forms, two for Or and the list/multiset/set "keep scanning"
// continuations).
type Step struct {
	ID       int
	Parent   engine.State
	Children []engine.State
}

// Recorder attaches to a Driver via its Trace hook and accumulates the
// Steps it performs, in the order Next() performed them.
type Recorder struct {
	Steps []Step
}

// NewRecorder builds an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Attach installs this Recorder as d's Trace hook. It must be called
// before the first Next() call to capture every step.
func (r *Recorder) Attach(d *engine.Driver) {
	d.Trace = func(popped engine.State, children []engine.State) {
		r.Steps = append(r.Steps, Step{ID: len(r.Steps), Parent: popped, Children: children})
	}
}

// Solutions returns the bindings of every Step whose popped state was
// already solved -- i.e. every solution the recorded run produced, in
// discovery order. A solved state has no children (step never expands a
// solved state further), so these are exactly the leaves with Children
// == nil and Parent.Solved() == true.
func (r *Recorder) Solutions() []pattern.Bindings {
	var out []pattern.Bindings
	for _, s := range r.Steps {
		if s.Parent.Solved() {
			out = append(out, s.Parent.Bindings)
		}
	}
	return out
}

func label(s engine.State) string {
	if s.Solved() {
		return sanitize(fmt.Sprintf("solved %v", []pattern.Value(s.Bindings)))
	}
	return sanitize(fmt.Sprintf("pending=%d %v", s.Pending(), []pattern.Value(s.Bindings)))
}
