package fn_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/typekit/pkg/fn"
)

func TestConstant(t *testing.T) {
	s := fn.Constant("hello")

	assert.Equal(t, "hello", s())
	assert.Equal(t, "hello", s())
}

func TestIdentity(t *testing.T) {
	id := fn.Identity[int]()
	assert.Equal(t, 42, id(42))
}

func TestCompose(t *testing.T) {
	double := fn.Mapper[int, int](func(n int) int { return n * 2 })
	toString := fn.Mapper[int, string](strconv.Itoa)

	m := fn.Compose(double, toString)
	assert.Equal(t, "10", m(5))
}

func TestConsumerAndThen(t *testing.T) {
	var seen []string
	first := fn.Consumer[string](func(s string) { seen = append(seen, "first:"+s) })
	second := fn.Consumer[string](func(s string) { seen = append(seen, "second:"+s) })

	first.AndThen(second)("x")

	assert.Equal(t, []string{"first:x", "second:x"}, seen)
}

func TestBiConsumer(t *testing.T) {
	got := map[string]int{}
	record := fn.BiConsumer[string, int](func(k string, v int) { got[k] = v })

	record("a", 1)
	record("b", 2)

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
}

func TestRunnable(t *testing.T) {
	runs := 0
	var tick fn.Runnable = func() { runs++ }

	tick()
	tick()

	assert.Equal(t, 2, runs)
}

func TestMapSupplier(t *testing.T) {
	n := 0
	counter := fn.Supplier[int](func() int {
		n++
		return n
	})

	labeled := fn.Map(counter, func(v int) string { return "call-" + strconv.Itoa(v) })

	assert.Equal(t, "call-1", labeled())
	assert.Equal(t, "call-2", labeled())
}
