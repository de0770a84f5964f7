package rmq

import (
	"fmt"
	"math"
)

// sentinel fills tree slots with no value of T behind them.
const sentinel = math.MaxInt

// DynamicRMQ is an iterative segment tree stored in a flat array.
//
// The root is st[1], the children of st[i] are st[2i] and st[2i+1], and
// T[i] lives at the leaf st[len(st)/2+i]. Slots past the last value hold
// sentinel. st[0] is unused.
type DynamicRMQ struct {
	st  []int
	num int
}

// NewDynamic builds a DynamicRMQ over vals in O(n).
func NewDynamic(vals []int) *DynamicRMQ {
	num := len(vals)
	size := 2
	for size < 2*num {
		size <<= 1
	}
	st := make([]int, size)
	for i := range st {
		st[i] = sentinel
	}
	half := size / 2
	copy(st[half:], vals)
	for i := half - 1; i > 0; i-- {
		st[i] = min(st[2*i], st[2*i+1])
	}
	return &DynamicRMQ{st: st, num: num}
}

// Num returns the number of values in T
func (drmq *DynamicRMQ) Num() int {
	return drmq.num
}

// Lookup returns T[idx]
func (drmq *DynamicRMQ) Lookup(idx int) (int, error) {
	if err := checkIndex(idx, drmq.num); err != nil {
		return 0, err
	}
	return drmq.st[len(drmq.st)/2+idx], nil
}

// Update sets T[idx] = val and recomputes the ancestors of its leaf,
// root included.
func (drmq *DynamicRMQ) Update(idx, val int) error {
	if err := checkIndex(idx, drmq.num); err != nil {
		return err
	}
	pos := len(drmq.st)/2 + idx
	drmq.st[pos] = val
	for pos /= 2; pos > 0; pos /= 2 {
		drmq.st[pos] = min(drmq.st[2*pos], drmq.st[2*pos+1])
	}
	return nil
}

// Query returns min(T[l..r]) in O(log n)
func (drmq *DynamicRMQ) Query(l, r int) (int, error) {
	if err := checkRange(l, r, drmq.num); err != nil {
		return 0, err
	}
	half := len(drmq.st) / 2
	l += half
	r += half
	res := drmq.st[l]
	for l <= r {
		// a right child is not shared with its left sibling's range
		if l%2 == 1 {
			res = min(res, drmq.st[l])
			l++
		}
		if r%2 == 0 {
			res = min(res, drmq.st[r])
			r--
		}
		l /= 2
		r /= 2
	}
	return res, nil
}

// String renders the flat tree, root at position 1.
func (drmq *DynamicRMQ) String() string {
	return fmt.Sprint(drmq.st)
}
