// Package pmatch is a non-linear pattern-matching engine over
// user-defined data structures: given a target value, a matcher
// describing how to decompose values of that type, and a pattern built
// from a small combinator algebra, it produces the (possibly infinite,
// possibly empty, possibly multi-valued) stream of bindings that make the
// pattern hold against the target.
//
// The pattern algebra lives in package 'pattern', the matcher protocol and
// its reference instances (Something, Eq, List, Multiset, Set) live in
// package 'matcher', and the matching state machine and search driver
// live in package 'engine'. A command-line driver is in cmd/pmatch.
package pmatch
