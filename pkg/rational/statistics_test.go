// Released under an MIT license. See LICENSE.

package rational

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func values() []T[int] {
	return []T[int]{
		New(2, 7), New(2, 5), New(10, 11),
		New(4, 12), New(4, 8), New(10, 12),
	}
}

func TestMean(t *testing.T) {
	c := values()

	// Summed componentwise: 1/4, 1/3, 11/14, 12/17, 13/19, 18/25.
	check(t, Sum(c), "18/25")
	check(t, Mean(c), "3/25")

	// The sum starts from 0/1, so even one value is changed: 6/8 is 3/4.
	check(t, Mean([]T[int]{New(6, 7)}), "3/4")
	check(t, Mean([]T[int64]{New[int64](4, 1), New[int64](8, 1)}), "2/1")
}

func TestMedianOdd(t *testing.T) {
	c := values()[:5]
	Sort(c)

	check(t, Median(c), c[2].String())
	check(t, Median(c), "2/5")
}

func TestMedianEven(t *testing.T) {
	c := values()
	Sort(c)

	// (2/5 + 1/2) / 2 is 3/7 / 2/1, componentwise 1/7.
	check(t, Median(c), Quo(Add(c[2], c[3]), Int(2)).String())
	check(t, Median(c), "1/7")
}

func TestStatisticsLeaveInput(t *testing.T) {
	c := values()
	Sort(c)

	saved := append([]T[int](nil), c...)

	Mean(c)
	Median(c)
	Median(c[:5])

	if diff := cmp.Diff(saved, c, cmp.Comparer(T[int].Equal)); diff != "" {
		t.Fatalf("input modified (-before +after):\n%s", diff)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	panics(t, ErrEmpty, func() {
		Mean([]T[int]{})
	})

	panics(t, ErrEmpty, func() {
		Median[int](nil)
	})

	check(t, Sum[int](nil), "0/1")
}
