package fn

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// BiPredicate reports whether a pair of values satisfies a condition.
type BiPredicate[A, B any] func(A, B) bool

// And returns a predicate that is satisfied only when both p and other are.
// Evaluation short-circuits: other is not called when p fails.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or returns a predicate that is satisfied when either p or other is.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Negate returns the logical inverse of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// Negate returns the logical inverse of p.
func (p BiPredicate[A, B]) Negate() BiPredicate[A, B] {
	return func(a A, b B) bool {
		return !p(a, b)
	}
}

// True returns a predicate satisfied by every value.
func True[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// False returns a predicate satisfied by no value.
func False[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// EqualTo returns a predicate satisfied by values equal to want.
func EqualTo[T comparable](want T) Predicate[T] {
	return func(v T) bool { return v == want }
}
