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

// Package scenario loads named match scenarios from YAML. Surface-syntax
// quasiquotation (turning pattern *text* into the pattern algebra) is
// explicitly out of scope for the core, so a scenario file never encodes
// a pattern as text: it names a matcher and a clause set that Go code has
// already registered with a Registry, and supplies the data (target,
// expected bindings) around them.
package scenario

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/patterncore/pmatch"
	"github.com/patterncore/pmatch/matcher"
)

// Case is one named scenario: a target, the name of a registered matcher,
// the name of a registered clause set, and (optionally) the expected
// bindings for assertions.
type Case struct {
	Title    string                   `yaml:"title"`
	Target   interface{}              `yaml:"target"`
	Matcher  string                   `yaml:"matcher"`
	Clauses  string                   `yaml:"clauses"`
	Mode     string                   `yaml:"mode,omitempty"` // "first" | "all" | "dfs"; default "all"
	Expected []map[string]interface{} `yaml:"expected,omitempty"`
}

// Suite is a named collection of Cases, as loaded from one YAML document.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Load parses a Suite from r.
func Load(r io.Reader) (*Suite, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var s Suite
	if err := yaml.Unmarshal(bs, &s); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return &s, nil
}

// Registry resolves the matcher and clause-set names a Case references.
// Go code populates it at program start; scenario files only ever select
// from what's already registered.
type Registry struct {
	Matchers map[string]matcher.Matcher
	Clauses  map[string][]pmatch.Clause
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		Matchers: make(map[string]matcher.Matcher),
		Clauses:  make(map[string][]pmatch.Clause),
	}
}

// RegisterMatcher names m for later lookup by Case.Matcher.
func (r *Registry) RegisterMatcher(name string, m matcher.Matcher) {
	r.Matchers[name] = m
}

// Lookup resolves a Case's matcher name, erroring out if it was never
// registered -- a scenario file naming an unknown matcher is an authoring
// mistake, not a no-match result.
func (r *Registry) Lookup(name string) (matcher.Matcher, error) {
	m, ok := r.Matchers[name]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown matcher %q", name)
	}
	return m, nil
}

// RegisterClauses names a clause set for later lookup by Case.Clauses.
func (r *Registry) RegisterClauses(name string, clauses []pmatch.Clause) {
	r.Clauses[name] = clauses
}

// LookupClauses resolves a Case's clause-set name, erroring out if it was
// never registered -- the same authoring-mistake treatment as Lookup.
func (r *Registry) LookupClauses(name string) ([]pmatch.Clause, error) {
	c, ok := r.Clauses[name]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown clause set %q", name)
	}
	return c, nil
}
