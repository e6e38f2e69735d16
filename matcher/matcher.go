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

// Package matcher defines the matcher protocol -- how a target value is
// decomposed into smaller pieces for a pattern to match against -- and the
// reference matcher instances: Something, Eq, List, Multiset, Set.
package matcher

import "github.com/patterncore/pmatch/pattern"

// Atom is a unit of unresolved matching obligation: a pattern, the matcher
// that should decompose it, and the target it's matched against.
type Atom struct {
	Pattern pattern.Pattern
	Matcher Matcher
	Target  pattern.Value
}

// Alternative is one successor: a list of new atoms whose conjunction is
// equivalent to the User pattern former that produced it.
type Alternative []Atom

// Matcher is the extension point matcher authors implement. For every
// UserPattern former directed at it, a Matcher answers: "produce a finite
// list of alternatives, each a list of new matching atoms whose
// conjunction is equivalent to this User(tag, args) matching target under
// this matcher." Implementations must be total: return a nil alternative
// list (not an error) for "no match", and reserve the error return for a
// tag the matcher does not implement at all.
type Matcher interface {
	Decompose(tag string, args []pattern.Pattern, b pattern.Bindings, target pattern.Value) ([]Alternative, error)

	// Name identifies the matcher in diagnostics and in
	// pattern.ErrUnsupportedPattern.
	Name() string
}
