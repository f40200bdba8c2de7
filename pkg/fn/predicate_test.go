package fn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/typekit/pkg/fn"
)

func TestPredicateCombinators(t *testing.T) {
	even := fn.Predicate[int](func(n int) bool { return n%2 == 0 })
	positive := fn.Predicate[int](func(n int) bool { return n > 0 })

	tests := []struct {
		name     string
		pred     fn.Predicate[int]
		input    int
		expected bool
	}{
		{name: "and both hold", pred: even.And(positive), input: 4, expected: true},
		{name: "and left fails", pred: even.And(positive), input: 3, expected: false},
		{name: "and right fails", pred: even.And(positive), input: -2, expected: false},
		{name: "or left holds", pred: even.Or(positive), input: -2, expected: true},
		{name: "or right holds", pred: even.Or(positive), input: 3, expected: true},
		{name: "or neither holds", pred: even.Or(positive), input: -3, expected: false},
		{name: "negate", pred: even.Negate(), input: 3, expected: true},
		{name: "true", pred: fn.True[int](), input: -99, expected: true},
		{name: "false", pred: fn.False[int](), input: 0, expected: false},
		{name: "equal to match", pred: fn.EqualTo(7), input: 7, expected: true},
		{name: "equal to mismatch", pred: fn.EqualTo(7), input: 8, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pred(tt.input))
		})
	}
}

func TestPredicateAndShortCircuits(t *testing.T) {
	called := false
	never := fn.Predicate[int](func(int) bool {
		called = true
		return true
	})

	fn.False[int]().And(never)(1)
	assert.False(t, called, "And should not evaluate the second predicate when the first fails")
}

func TestBiPredicateNegate(t *testing.T) {
	longer := fn.BiPredicate[string, int](func(s string, n int) bool { return len(s) > n })

	assert.True(t, longer("hello", 3))
	assert.False(t, longer.Negate()("hello", 3))
}
