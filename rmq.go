// Package rmq provides range minimum query structures over integer arrays:
// a sparse table answering queries in O(1) after O(n log n) preprocessing,
// and a segment tree answering queries and point updates in O(log n).
package rmq

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a bound or index lies outside [0, Num()).
	ErrOutOfRange = errors.New("rmq: index out of range")
	// ErrInvalidRange is returned by Query when l > r.
	ErrInvalidRange = errors.New("rmq: invalid range")
)

// RMQ answers minimum queries over T[l..r] (both ends inclusive).
type RMQ interface {
	// Num returns the number of values in T
	Num() int

	// Query returns min(T[l..r])
	Query(l, r int) (int, error)

	String() string
}

var (
	_ RMQ = (*StaticRMQ)(nil)
	_ RMQ = (*DynamicRMQ)(nil)
)

// checkRange validates a query range against an array of num values.
// Bounds are checked before ordering, so (-1, -2) reports ErrOutOfRange.
func checkRange(l, r, num int) error {
	if l < 0 {
		return fmt.Errorf("%w: l = %d", ErrOutOfRange, l)
	}
	if r >= num {
		return fmt.Errorf("%w: r = %d (num = %d)", ErrOutOfRange, r, num)
	}
	if l > r {
		return fmt.Errorf("%w: l = %d > r = %d", ErrInvalidRange, l, r)
	}
	return nil
}

func checkIndex(idx, num int) error {
	if idx < 0 || idx >= num {
		return fmt.Errorf("%w: idx = %d (num = %d)", ErrOutOfRange, idx, num)
	}
	return nil
}
