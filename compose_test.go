package maybe

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiftMaybe(t *testing.T) {
	t.Parallel()

	itoa := LiftMaybe(strconv.Itoa)

	require.True(t, Equal(Just("12"), itoa(Just(12))))
	require.True(t, Equal(Nothing[string](), itoa(Nothing[int]())))
}

func TestLiftMaybeSkipsFuncOnNothing(t *testing.T) {
	t.Parallel()

	calls := 0
	lifted := LiftMaybe(func(x int) int {
		calls = calls + 1
		return x
	})

	_ = lifted(Nothing[int]())
	require.Equal(t, 0, calls)

	_ = lifted(Just(1))
	require.Equal(t, 1, calls)
}

func TestLiftMaybeIdentityLaw(t *testing.T) {
	t.Parallel()

	id := func(x int) int { return x }
	lifted := LiftMaybe(id)

	for _, m := range []Maybe[int]{Just(3), Just(0), Nothing[int]()} {
		t.Run(m.String(), func(t *testing.T) {
			require.True(t, Equal(m, lifted(m)))
		})
	}
}

func TestLiftMaybeCompositionLaw(t *testing.T) {
	t.Parallel()

	double := func(x int) int { return x * 2 }
	str := strconv.Itoa
	composed := func(x int) string { return str(double(x)) }

	liftedComposed := LiftMaybe(composed)
	liftedDouble := LiftMaybe(double)
	liftedStr := LiftMaybe(str)

	for _, m := range []Maybe[int]{Just(21), Nothing[int]()} {
		t.Run(m.String(), func(t *testing.T) {
			require.True(t, Equal(liftedComposed(m), liftedStr(liftedDouble(m))))
		})
	}
}

func TestAndThenMaybeShortCircuit(t *testing.T) {
	t.Parallel()

	gCalls := 0
	f := func(x int) Maybe[int] { return Nothing[int]() }
	g := func(x int) Maybe[int] {
		gCalls = gCalls + 1
		return Just(x)
	}

	result := AndThenMaybe(f, g)(5)
	require.True(t, result.IsNothing())
	require.Equal(t, 0, gCalls)
}

func TestAndThenMaybeChain(t *testing.T) {
	t.Parallel()

	// doubles positive numbers, rejects the rest
	f := func(x int) Maybe[int] {
		if x > 0 {
			return Just(x * 2)
		}
		return Nothing[int]()
	}
	// increments numbers below 100, rejects the rest
	g := func(x int) Maybe[int] {
		if x < 100 {
			return Just(x + 1)
		}
		return Nothing[int]()
	}

	h := AndThenMaybe(f, g)

	require.True(t, Equal(Just(11), h(5)))
	require.True(t, h(-3).IsNothing())
	require.True(t, h(60).IsNothing())
}

func TestAndThenMaybeAssociativity(t *testing.T) {
	t.Parallel()

	f := func(x int) Maybe[int] {
		if x%2 == 0 {
			return Just(x / 2)
		}
		return Nothing[int]()
	}
	g := func(x int) Maybe[int] { return Just(x + 1) }
	h := func(x int) Maybe[string] { return Just(strconv.Itoa(x)) }
	i := func(s string) Maybe[int] { return Just(len(s)) }

	chained3 := AndThenMaybe3(f, g, h)
	nested3 := AndThenMaybe(AndThenMaybe(f, g), h)

	chained4 := AndThenMaybe4(f, g, h, i)
	nested4 := AndThenMaybe(AndThenMaybe(AndThenMaybe(f, g), h), i)

	for x := -4; x <= 4; x = x + 1 {
		t.Run(fmt.Sprintf("x=%d", x), func(t *testing.T) {
			require.True(t, Equal(nested3(x), chained3(x)))
			require.True(t, Equal(nested4(x), chained4(x)))
		})
	}
}

func TestFlattenMaybe(t *testing.T) {
	t.Parallel()

	require.True(t, Equal(Just(4), FlattenMaybe(Just(Just(4)))))
	require.True(t, FlattenMaybe(Just(Nothing[int]())).IsNothing())
	require.True(t, FlattenMaybe(Nothing[Maybe[int]]()).IsNothing())
}

var benchEscapeResult Maybe[int]

func BenchmarkAndThenMaybe(b *testing.B) {
	f := func(x int) Maybe[int] { return Just(x * 2) }
	g := func(x int) Maybe[int] { return Just(x + 1) }
	h := AndThenMaybe(f, g)

	var loopEscapeResult Maybe[int]
	b.ResetTimer()
	for n := 0; n < b.N; n = n + 1 {
		loopEscapeResult = h(n)
	}
	benchEscapeResult = loopEscapeResult
}
