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

// Package pattern implements the pattern algebra, the value carrier, and
// the binding list that the matching engine operates on.
package pattern

import (
	"fmt"
	"reflect"
)

// Value is a type-erased container for target data and bound values. The
// engine never inspects a Value's internal structure; only matchers and
// user closures do.
//
// A bare Go interface value already gives us round-trip identity (storing
// and recovering a Value never changes its dynamic type or content), so
// Value is just a named alias rather than a wrapper struct.
type Value = interface{}

// As recovers a typed value from a Value. It reports false instead of
// panicking when the dynamic type doesn't match, so callers downcast at
// the edges (a clause body, a user closure) without risking a crash on a
// pattern that was miswired.
func As[T any](v Value) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// MustAs is As, but panics with a descriptive message on mismatch. Use it
// only where the static arity of a pattern former guarantees the dynamic
// type, e.g. inside a Body closure recovering a VarBind that the clause's
// own pattern declared.
func MustAs[T any](v Value) T {
	t, ok := v.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("pattern: value %#v is not a %T", v, zero))
	}
	return t
}

// Equal is the notion of equality ValueEq/Lambda patterns match by for
// atomic (Eq-matched) targets: reflect.DeepEqual, which coincides with ==
// for every comparable leaf type (numbers, strings, bools) those patterns
// are meant to carry. It is not meaningful for comparing two in-progress
// container targets (e.g. two seq.Seq values) directly, since their
// unevaluated tail closures are never equal even when the sequences they
// produce are identical.
func Equal(a, b Value) bool {
	return reflect.DeepEqual(a, b)
}
