package rmq

import (
	"fmt"
	"math/bits"
	"strings"
)

// StaticRMQ is a sparse table over an immutable copy of T.
//
// table[k][i] holds the 1-based position of a minimum of T over the
// 2^k values starting at 1-based position i. An entry is only written
// when i+2^k-1 <= num; the rest stay 0 and are never read. Column 0 is unused.
type StaticRMQ struct {
	vals  []int
	table [][]int
	num   int
}

// NewStatic builds a StaticRMQ over a copy of vals in O(n log n).
func NewStatic(vals []int) *StaticRMQ {
	num := len(vals)
	srmq := &StaticRMQ{
		vals: append([]int(nil), vals...),
		num:  num,
	}
	if num == 0 {
		return srmq
	}
	rows := floorLog2(num) + 1
	srmq.table = make([][]int, rows)
	srmq.table[0] = make([]int, num+1)
	for i := range srmq.table[0] {
		srmq.table[0][i] = i
	}
	for k := 1; k < rows; k++ {
		prev := srmq.table[k-1]
		half := 1 << (k - 1)
		row := make([]int, num+1)
		for i := 1; i+(1<<k)-1 <= num; i++ {
			row[i] = srmq.minPos(prev[i], prev[i+half])
		}
		srmq.table[k] = row
	}
	return srmq
}

// Num returns the number of values in T
func (srmq *StaticRMQ) Num() int {
	return srmq.num
}

// Query returns min(T[l..r]) in O(1)
func (srmq *StaticRMQ) Query(l, r int) (int, error) {
	pos, err := srmq.queryPos(l, r)
	if err != nil {
		return 0, err
	}
	return srmq.vals[pos-1], nil
}

// ArgMin returns the (0-based) position of min(T[l..r]).
// On ties the leftmost candidate of the two covering blocks wins.
func (srmq *StaticRMQ) ArgMin(l, r int) (int, error) {
	pos, err := srmq.queryPos(l, r)
	if err != nil {
		return 0, err
	}
	return pos - 1, nil
}

// queryPos covers [l, r] by the two 2^k blocks anchored at its ends
// and returns the 1-based position of the smaller of their minima.
func (srmq *StaticRMQ) queryPos(l, r int) (int, error) {
	if err := checkRange(l, r, srmq.num); err != nil {
		return 0, err
	}
	k := floorLog2(r - l + 1)
	left := srmq.table[k][l+1]
	right := srmq.table[k][r-(1<<k)+2]
	return srmq.minPos(left, right), nil
}

func (srmq *StaticRMQ) minPos(a, b int) int {
	if srmq.vals[a-1] > srmq.vals[b-1] {
		return b
	}
	return a
}

// String renders the table one row per line.
func (srmq *StaticRMQ) String() string {
	var sb strings.Builder
	for _, row := range srmq.table {
		sb.WriteByte('\n')
		fmt.Fprint(&sb, row)
	}
	return sb.String()
}

// floorLog2 returns floor(log2(x)) for x >= 1
func floorLog2(x int) int {
	return bits.Len(uint(x)) - 1
}
