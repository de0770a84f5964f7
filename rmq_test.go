package rmq

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func bruteForce(orig []int, l, r int) int {
	return lo.Min(orig[l : r+1])
}

func randomValues(rnd *rand.Rand, num, dim int) []int {
	return lo.Times(num, func(int) int {
		return rnd.Intn(dim) - dim/2
	})
}

// checkAllRanges compares every [l, r] of orig against rmq.
// Mismatches are collected first so one So covers the whole grid.
func checkAllRanges(rmq RMQ, orig []int) {
	mismatches := make([]string, 0)
	for l := 0; l < len(orig); l++ {
		for r := l; r < len(orig); r++ {
			got, err := rmq.Query(l, r)
			if err != nil {
				mismatches = append(mismatches, fmt.Sprintf("[%d,%d]: %v", l, r, err))
				continue
			}
			if want := bruteForce(orig, l, r); got != want {
				mismatches = append(mismatches, fmt.Sprintf("[%d,%d]: got %d, want %d", l, r, got, want))
			}
		}
	}
	So(mismatches, ShouldBeEmpty)
}

var constructors = []struct {
	name  string
	build func([]int) RMQ
}{
	{"StaticRMQ", func(vals []int) RMQ { return NewStatic(vals) }},
	{"DynamicRMQ", func(vals []int) RMQ { return NewDynamic(vals) }},
}

func TestRMQ(t *testing.T) {
	for _, c := range constructors {
		Convey("Given a "+c.name, t, func() {
			Convey("When the array is [4, 3, 2, 1]", func() {
				rmq := c.build([]int{4, 3, 2, 1})
				So(rmq.Num(), ShouldEqual, 4)
				v, err := rmq.Query(0, 3)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 1)
				v, err = rmq.Query(0, 0)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 4)
			})

			Convey("When a random vector is generated", func() {
				rnd := rand.New(rand.NewSource(7))
				for _, num := range []int{1, 2, 3, 7, 8, 9, 100} {
					orig := randomValues(rnd, num, 10000)
					checkAllRanges(c.build(orig), orig)
				}
			})

			Convey("When the vector has a single element", func() {
				rmq := c.build([]int{-42})
				v, err := rmq.Query(0, 0)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, -42)
			})

			Convey("When values are extreme", func() {
				orig := []int{sentinel, 0, sentinel, -sentinel - 1, sentinel}
				rmq := c.build(orig)
				checkAllRanges(rmq, orig)
			})

			Convey("The input slice is copied", func() {
				orig := []int{5, 1, 4}
				rmq := c.build(orig)
				orig[1] = 100
				v, err := rmq.Query(0, 2)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 1)
			})

			Convey("Repeated queries do not change anything", func() {
				rmq := c.build([]int{5, 1, 4, 2, 3})
				before := rmq.String()
				for i := 0; i < 3; i++ {
					v, err := rmq.Query(2, 4)
					So(err, ShouldBeNil)
					So(v, ShouldEqual, 2)
				}
				So(rmq.String(), ShouldEqual, before)
			})

			Convey("When the range is wrong", func() {
				rmq := c.build([]int{4, 3, 2, 1})
				_, err := rmq.Query(-1, 0)
				So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
				_, err = rmq.Query(0, 4)
				So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
				_, err = rmq.Query(2, 1)
				So(errors.Is(err, ErrInvalidRange), ShouldBeTrue)
				So(errors.Is(err, ErrOutOfRange), ShouldBeFalse)
				// bounds are checked before ordering
				_, err = rmq.Query(-1, -2)
				So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
				_, err = rmq.Query(5, 4)
				So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
			})

			Convey("When a vector is empty", func() {
				rmq := c.build(nil)
				So(rmq.Num(), ShouldEqual, 0)
				_, err := rmq.Query(0, 0)
				So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
				_, err = rmq.Query(0, -1)
				So(errors.Is(err, ErrInvalidRange), ShouldBeTrue)
			})
		})
	}
}

func TestBuilder(t *testing.T) {
	Convey("When values are pushed", t, func() {
		b := NewBuilder()
		So(b.Num(), ShouldEqual, 0)
		for _, v := range []int{8, 9, 3, 11, 3} {
			b.PushBack(v)
		}
		So(b.Num(), ShouldEqual, 5)
		So(b.Values(), ShouldResemble, []int{8, 9, 3, 11, 3})

		Convey("Both structures agree", func() {
			srmq := b.BuildStatic()
			drmq := b.BuildDynamic()
			checkAllRanges(srmq, b.Values())
			checkAllRanges(drmq, b.Values())
		})

		Convey("Later pushes are not seen by built structures", func() {
			drmq := b.BuildDynamic()
			b.PushBack(-1)
			So(drmq.Num(), ShouldEqual, 5)
			v, err := drmq.Query(0, 4)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 3)
		})

		Convey("Values is a copy", func() {
			vals := b.Values()
			vals[0] = -100
			So(b.Values()[0], ShouldEqual, 8)
		})
	})
}

// -----------------------------------------------------------------------------
// Benchmarks
//

var benchSizes = []int{10, 100, 1000, 10000, 100000, 1000000}

var benchSink int

func benchQueries(b *testing.B, rmq RMQ, num int) {
	rnd := rand.New(rand.NewSource(1))
	ls := make([]int, 1024)
	rs := make([]int, 1024)
	for i := range ls {
		ls[i] = rnd.Intn(num)
		rs[i] = ls[i] + rnd.Intn(num-ls[i])
	}
	b.ResetTimer()
	dummy := 0
	for i := 0; i < b.N; i++ {
		j := i & 1023
		v, _ := rmq.Query(ls[j], rs[j])
		dummy += v
	}
	benchSink = dummy
}

func BenchmarkStatic_Build(b *testing.B) {
	for _, num := range benchSizes {
		vals := randomValues(rand.New(rand.NewSource(1)), num, 10000)
		b.Run(fmt.Sprint(num), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewStatic(vals)
			}
		})
	}
}

func BenchmarkDynamic_Build(b *testing.B) {
	for _, num := range benchSizes {
		vals := randomValues(rand.New(rand.NewSource(1)), num, 10000)
		b.Run(fmt.Sprint(num), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewDynamic(vals)
			}
		})
	}
}

func BenchmarkStatic_Query(b *testing.B) {
	for _, num := range benchSizes {
		srmq := NewStatic(randomValues(rand.New(rand.NewSource(1)), num, 10000))
		b.Run(fmt.Sprint(num), func(b *testing.B) {
			benchQueries(b, srmq, num)
		})
	}
}

func BenchmarkDynamic_Query(b *testing.B) {
	for _, num := range benchSizes {
		drmq := NewDynamic(randomValues(rand.New(rand.NewSource(1)), num, 10000))
		b.Run(fmt.Sprint(num), func(b *testing.B) {
			benchQueries(b, drmq, num)
		})
	}
}

func BenchmarkDynamic_Update(b *testing.B) {
	for _, num := range benchSizes {
		drmq := NewDynamic(randomValues(rand.New(rand.NewSource(1)), num, 10000))
		rnd := rand.New(rand.NewSource(2))
		b.Run(fmt.Sprint(num), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				drmq.Update(rnd.Intn(num), rnd.Intn(10000))
			}
		})
	}
}

func BenchmarkRaw_Query(b *testing.B) {
	for _, num := range []int{10, 100, 1000, 10000} {
		vals := randomValues(rand.New(rand.NewSource(1)), num, 10000)
		rnd := rand.New(rand.NewSource(3))
		b.Run(fmt.Sprint(num), func(b *testing.B) {
			dummy := 0
			for i := 0; i < b.N; i++ {
				l := rnd.Intn(num)
				r := l + rnd.Intn(num-l)
				dummy += bruteForce(vals, l, r)
			}
			benchSink = dummy
		})
	}
}
