package fn

import "github.com/arthur-debert/typekit/pkg/constraints"

// Comparator defines a total ordering over T. It returns a negative value
// when a sorts before b, zero when they are equivalent, and a positive
// value when a sorts after b. The signature matches the cmp parameter of
// slices.SortFunc, so comparators plug into the standard sort helpers.
type Comparator[T any] func(a, b T) int

// Equaler is implemented by types that define their own equality,
// distinct from ==.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Comparer is implemented by types that define their own ordering.
// Compare follows the Comparator convention: negative, zero or positive.
type Comparer[T any] interface {
	Compare(other T) int
}

// Ordered returns a comparator using the natural < ordering of T.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Comparing returns a comparator for types that order themselves.
func Comparing[T Comparer[T]]() Comparator[T] {
	return func(a, b T) int { return a.Compare(b) }
}

// ByKey returns a comparator that orders values by a derived key.
func ByKey[T any, K constraints.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	}
}

// Reversed returns a comparator with the opposite ordering of c.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Then returns a comparator that breaks ties in c using next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// Equal reports whether c considers a and b equivalent.
func (c Comparator[T]) Equal(a, b T) bool {
	return c(a, b) == 0
}

// Less adapts c to a two-way less function.
func (c Comparator[T]) Less() BiPredicate[T, T] {
	return func(a, b T) bool { return c(a, b) < 0 }
}

// Min returns the smaller of a and b under c. Returns a on ties.
func (c Comparator[T]) Min(a, b T) T {
	if c(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the larger of a and b under c. Returns a on ties.
func (c Comparator[T]) Max(a, b T) T {
	if c(b, a) > 0 {
		return b
	}
	return a
}

// Clamp limits v to the range [lo, hi] under c.
func (c Comparator[T]) Clamp(v, lo, hi T) T {
	if c(v, lo) < 0 {
		return lo
	}
	if c(v, hi) > 0 {
		return hi
	}
	return v
}
