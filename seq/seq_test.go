package seq

import (
	"reflect"
	"testing"

	"github.com/patterncore/pmatch/pattern"
)

func TestFromSliceRoundTrips(t *testing.T) {
	xs := []pattern.Value{1, 2, 3}
	got := ToSlice(FromSlice(xs), 10)
	if !reflect.DeepEqual(got, xs) {
		t.Errorf("got %v, want %v", got, xs)
	}
}

func TestIntsIsInfiniteAndLazy(t *testing.T) {
	got := ToSlice(Ints(1), 5)
	want := []pattern.Value{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPrimes(t *testing.T) {
	got := ToSlice(Primes(), 10)
	want := []pattern.Value{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConcat(t *testing.T) {
	a := FromSlice([]pattern.Value{1, 2})
	b := FromSlice([]pattern.Value{3, 4})
	got := ToSlice(Concat(a, b), 10)
	want := []pattern.Value{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConcatWithInfiniteTail(t *testing.T) {
	a := FromSlice([]pattern.Value{1, 2})
	got := ToSlice(Concat(a, Ints(3)), 6)
	want := []pattern.Value{1, 2, 3, 4, 5, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
