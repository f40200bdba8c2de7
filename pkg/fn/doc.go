// Package fn defines the function-shape types shared across typekit:
// predicates, comparators, suppliers, consumers and operators.
//
// Each type is a named function type rather than an interface, so any
// function with the right signature converts directly:
//
//	even := fn.Predicate[int](func(n int) bool { return n%2 == 0 })
//	odd := even.Negate()
//
// The combinators never mutate their receiver; they return a new function
// that closes over the originals.
package fn
