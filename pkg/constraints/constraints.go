// Package constraints holds the type-set interfaces used by typekit's
// generic packages. These mirror golang.org/x/exp/constraints; we keep a
// local copy so the module has no dependency on an experimental package.
package constraints

// Signed is any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Numeric is any integer or floating-point type.
type Numeric interface {
	Integer | Float
}

// Ordered is any type that supports the < <= >= > operators.
type Ordered interface {
	Integer | Float | ~string
}
