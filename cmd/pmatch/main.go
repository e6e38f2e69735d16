/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
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

// Package main is a little command-line utility to drive a named
// scenario's matcher against its target and print the bindings found.
//
//	pmatch -f scenario.yaml -case "list cons" -n 5
//	pmatch -f scenario.yaml -case "list cons" -dot > tree.dot
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/patterncore/pmatch"
	"github.com/patterncore/pmatch/engine"
	"github.com/patterncore/pmatch/matcher"
	"github.com/patterncore/pmatch/pattern"
	"github.com/patterncore/pmatch/scenario"
	"github.com/patterncore/pmatch/seq"
	"github.com/patterncore/pmatch/tools"
	"github.com/patterncore/pmatch/util/testutil"
)

func main() {
	var (
		file    = flag.String("f", "", "scenario YAML file")
		title   = flag.String("case", "", "title of the case to run (default: the first one)")
		n       = flag.Int("n", 10, "max number of results to print")
		dot     = flag.Bool("dot", false, "write a Graphviz dot of the search tree instead of results")
		mermaid = flag.Bool("mermaid", false, "write a Mermaid flowchart of the search tree instead of results")
		report  = flag.Bool("report", false, "write a Markdown run report instead of results")
		bench   = flag.Int("bench", 0, "number of times to re-run the match and report mean time/allocs")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("pmatch: -f scenario file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	suite, err := scenario.Load(f)
	if err != nil {
		log.Fatal(err)
	}

	c, err := findCase(suite, *title)
	if err != nil {
		log.Fatal(err)
	}

	reg := builtinRegistry()
	m, err := reg.Lookup(c.Matcher)
	if err != nil {
		log.Fatal(err)
	}
	clauses, err := reg.LookupClauses(c.Clauses)
	if err != nil {
		log.Fatal(err)
	}

	target := toTarget(c.Matcher, c.Target)
	mode := engine.BFS
	if c.Mode == "dfs" || c.Mode == "first" {
		mode = engine.DFS
	}

	if 0 < *bench {
		runBench(*bench, mode, target, m, clauses)
		return
	}

	driver := engine.NewDriver(mode, engine.Seed(clauses[0].Pattern, m, target))
	rec := tools.NewRecorder()
	rec.Attach(driver)

	results := drive(driver, clauses[0].Body, *n)

	switch {
	case *dot:
		tools.Dot(rec, os.Stdout)
	case *mermaid:
		tools.Mermaid(rec, os.Stdout)
	case *report:
		fmt.Print(tools.Markdown(c.Title, rec))
	default:
		js, err := json.Marshal(results)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\n", js)
	}
}

func findCase(s *scenario.Suite, title string) (*scenario.Case, error) {
	if title == "" {
		if len(s.Cases) == 0 {
			return nil, fmt.Errorf("pmatch: scenario file has no cases")
		}
		return &s.Cases[0], nil
	}
	for i := range s.Cases {
		if s.Cases[i].Title == title {
			return &s.Cases[i], nil
		}
	}
	return nil, fmt.Errorf("pmatch: no case titled %q", title)
}

func drive(d *engine.Driver, body func(pattern.Bindings) interface{}, n int) []interface{} {
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		bs, ok, err := d.Next()
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			break
		}
		out = append(out, body(bs))
	}
	return out
}

func runBench(count int, mode engine.Mode, target pattern.Value, m matcher.Matcher, clauses []pmatch.Clause) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	allocs := stats.TotalAlloc
	then := time.Now()

	for i := 0; i < count; i++ {
		d := engine.NewDriver(mode, engine.Seed(clauses[0].Pattern, m, target))
		if _, _, err := d.Next(); err != nil {
			log.Fatal(err)
		}
	}

	elapsed := time.Since(then)
	meanNanos := elapsed.Nanoseconds() / int64(count)

	runtime.ReadMemStats(&stats)
	allocated := (stats.TotalAlloc - allocs) / uint64(count)

	log.Printf("%d iterations, %d mean ns/match, %d mean bytes allocated per match", count, meanNanos, allocated)
}

// toTarget converts a scenario's decoded-JSON/YAML target into the shape
// the named matcher expects: a seq.Seq for the sequence matchers, the
// bare value for Eq.
func toTarget(matcherName string, v interface{}) pattern.Value {
	// A scenario author may have quoted a list as a JSON string (handy
	// when hand-editing YAML); Dwimjs resolves either shape to a native
	// list before the switch below inspects it (numbers parsed from a JSON
	// string come out as float64, YAML integers as int).
	v = testutil.Dwimjs(v)

	switch matcherName {
	case "list-of-int", "multiset-of-int", "set-of-int":
		xs, ok := v.([]interface{})
		if !ok {
			log.Fatalf("pmatch: target for %q must be a list", matcherName)
		}
		vals := make([]pattern.Value, len(xs))
		for i, x := range xs {
			vals[i] = x
		}
		return seq.FromSlice(vals)
	default:
		return v
	}
}

// builtinRegistry names the small fixed set of matchers and demonstration
// clause sets the command line can run; scenario files select from these
// by name rather than encoding a pattern as text (quasiquotation is out
// of scope).
func builtinRegistry() *scenario.Registry {
	r := scenario.NewRegistry()
	r.RegisterMatcher("eq", matcher.Eq)
	r.RegisterMatcher("list-of-int", matcher.List(matcher.Eq))
	r.RegisterMatcher("multiset-of-int", matcher.Multiset(matcher.Eq))
	r.RegisterMatcher("set-of-int", matcher.Set(matcher.Eq))

	r.RegisterClauses("head-tail", []pmatch.Clause{
		{
			Pattern: pattern.Cons(pattern.VarBind("x"), pattern.VarBind("xs")),
			Body: func(b pattern.Bindings) interface{} {
				return map[string]interface{}{"x": b[0], "xs": b[1]}
			},
		},
	})
	return r
}
