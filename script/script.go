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

// Package script lets ValueEq and Predicate patterns be authored as
// ECMAScript source text instead of Go closures, using goja. It gives the
// pattern algebra a "bindings in, decision out" scripting capability a
// surface-syntax quasiquoter would otherwise have to compile straight to
// Go closures.
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/patterncore/pmatch/pattern"
)

// compile parses src once into a goja.Program. Value and Predicate then
// run that program in a fresh goja.Runtime on every evaluation, so no
// script state carries over from one evaluation to the next.
func compile(src string) (*goja.Program, error) {
	return goja.Compile("pmatch-script", src, true)
}

// run executes prog against bindings, exposing it to the script as a JS
// array named "b".
func run(prog *goja.Program, b pattern.Bindings) (goja.Value, error) {
	vm := goja.New()
	if err := vm.Set("b", []interface{}(b)); err != nil {
		return nil, err
	}
	return vm.RunProgram(prog)
}

// Value builds a pattern.ValueEq pattern whose expression is the given JS
// source, evaluated with the bindings array "b" in scope. It panics if
// src fails to compile -- a malformed script is a programming error
// discovered long before any match is attempted, just like a malformed
// cron expression in pattern.CronWindow.
func Value(src string) pattern.Pattern {
	prog, err := compile(src)
	if err != nil {
		panic(fmt.Sprintf("script: %s", err))
	}
	return pattern.ValueEq(func(b pattern.Bindings) pattern.Value {
		v, err := run(prog, b)
		if err != nil {
			panic(fmt.Sprintf("script: %s", err))
		}
		return v.Export()
	})
}

// Predicate builds a pattern.Predicate pattern whose test is the given JS
// source, evaluated with "b" (the bindings) and "t" (the target) in
// scope; the script's result is coerced to a JS boolean.
func Predicate(src string) pattern.Pattern {
	prog, err := compile(src)
	if err != nil {
		panic(fmt.Sprintf("script: %s", err))
	}
	return pattern.Predicate(func(b pattern.Bindings, target pattern.Value) bool {
		vm := goja.New()
		if err := vm.Set("b", []interface{}(b)); err != nil {
			panic(fmt.Sprintf("script: %s", err))
		}
		if err := vm.Set("t", target); err != nil {
			panic(fmt.Sprintf("script: %s", err))
		}
		v, err := vm.RunProgram(prog)
		if err != nil {
			panic(fmt.Sprintf("script: %s", err))
		}
		return v.ToBoolean()
	})
}
