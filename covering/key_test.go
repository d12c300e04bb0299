package covering

import (
	"reflect"
	"testing"
)

func TestMakeKeyRoundTrip(t *testing.T) {
	cols := []int{1, 4, 9}
	k := makeKey(cols)
	if got := k.columns(len(cols)); !reflect.DeepEqual(got, cols) {
		t.Errorf("columns() = %v, want %v", got, cols)
	}
}

func TestMakeKeyDistinctForDifferentArity(t *testing.T) {
	k2 := makeKey([]int{0, 1})
	k3 := makeKey([]int{0, 1, 2})
	if k2 == k3 {
		t.Error("keys of different arity collided")
	}
}

func TestTupleIndexRoundTrip(t *testing.T) {
	vals := []int{2, 0, 4}
	v := 5
	idx := tupleIndex(vals, v)
	got := unpackTuple(idx, len(vals), v)
	if !reflect.DeepEqual(got, vals) {
		t.Errorf("unpackTuple(tupleIndex(%v)) = %v", vals, got)
	}
}

func TestSortedCombinationsOrder(t *testing.T) {
	got := sortedCombinations(4, 2)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedCombinations(4,2) = %v, want %v", got, want)
	}
}

func TestAllTuplesOrderAndSize(t *testing.T) {
	got := allTuples(2, 2)
	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("allTuples(2,2) = %v, want %v", got, want)
	}
}
