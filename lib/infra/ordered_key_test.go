package infra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedComparator(t *testing.T) {
	c := OrderedComparator[int]()
	require.Negative(t, c(1, 2))
	require.Zero(t, c(2, 2))
	require.Positive(t, c(3, 2))

	s := OrderedComparator[string]()
	require.Negative(t, s("a", "b"))
	require.Positive(t, s("b", "a"))

	r := ReverseComparator(c)
	require.Positive(t, r(1, 2))
	require.Zero(t, r(2, 2))
	require.Negative(t, r(3, 2))
	require.Nil(t, ReverseComparator[int](nil))
}

func TestComparatorEqual(t *testing.T) {
	eq := OrderedComparator[float64]().Equal()
	require.True(t, eq(1.5, 1.5))
	require.False(t, eq(1.5, 2.5))

	ceq := ComparableEqual[string]()
	require.True(t, ceq("x", "x"))
	require.False(t, ceq("x", "y"))
}

func TestIsNil(t *testing.T) {
	type testcase struct {
		name string
		fn   func() bool
		want bool
	}
	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilErr   error
		one      = 1
	)
	testcases := []testcase{
		{name: "int", fn: func() bool { return IsNil(0) }},
		{name: "string", fn: func() bool { return IsNil("") }},
		{name: "nil pointer", fn: func() bool { return IsNil(nilPtr) }, want: true},
		{name: "pointer", fn: func() bool { return IsNil(&one) }},
		{name: "nil map", fn: func() bool { return IsNil(nilMap) }, want: true},
		{name: "nil slice", fn: func() bool { return IsNil(nilSlice) }, want: true},
		{name: "empty slice", fn: func() bool { return IsNil([]int{}) }},
		{name: "nil func", fn: func() bool { return IsNil(nilFunc) }, want: true},
		{name: "nil chan", fn: func() bool { return IsNil(nilChan) }, want: true},
		{name: "nil interface", fn: func() bool { return IsNil(nilErr) }, want: true},
		{name: "nil any", fn: func() bool { return IsNil[any](nil) }, want: true},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.want, tc.fn())
		})
	}
}
