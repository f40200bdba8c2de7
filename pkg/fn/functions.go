package fn

// Supplier produces a value on demand.
type Supplier[T any] func() T

// Consumer accepts a value and performs some effect with it.
type Consumer[T any] func(T)

// BiConsumer accepts a pair of values and performs some effect with them.
type BiConsumer[A, B any] func(A, B)

// Runnable is a nullary effect.
type Runnable func()

// Mapper transforms a value of type T into a value of type R.
type Mapper[T, R any] func(T) R

// UnaryOp transforms a value without changing its type.
type UnaryOp[T any] func(T) T

// BinaryOp combines two values of the same type into one.
type BinaryOp[T any] func(T, T) T

// Constant returns a supplier that always yields v.
func Constant[T any](v T) Supplier[T] {
	return func() T { return v }
}

// Identity returns a mapper that yields its argument unchanged.
func Identity[T any]() UnaryOp[T] {
	return func(v T) T { return v }
}

// Compose returns a mapper applying first, then second.
func Compose[T, M, R any](first Mapper[T, M], second Mapper[M, R]) Mapper[T, R] {
	return func(v T) R {
		return second(first(v))
	}
}

// AndThen returns a consumer that runs c, then next, on the same value.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(v T) {
		c(v)
		next(v)
	}
}

// Map transforms the supplied value with m each time the supplier is called.
func Map[T, R any](s Supplier[T], m Mapper[T, R]) Supplier[R] {
	return func() R {
		return m(s())
	}
}
