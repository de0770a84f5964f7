// Package bench times construction and queries of both RMQ structures
// over growing array sizes.
package bench

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	rmq "github.com/AlexWan0/go-rmq"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

// Rand is the source of randomness for arrays and query ranges.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Result holds the measurements for one array size.
// Build times are medians in milliseconds, query times are in nanoseconds.
type Result struct {
	Size         int     `codec:"size"`
	DynamicBuild float64 `codec:"dynamic_build_ms"`
	StaticBuild  float64 `codec:"static_build_ms"`
	DynamicQuery Stat    `codec:"dynamic_query_ns"`
	StaticQuery  Stat    `codec:"static_query_ns"`
}

// Tester runs the benchmark described by a Config.
type Tester struct {
	cfg     Config
	rand    Rand
	results []Result
}

// Keeps built structures and query answers alive so the timed calls are not elided.
var (
	sinkRMQ rmq.RMQ
	sinkMin int
)

// NewTester returns a Tester drawing arrays and ranges from rnd.
func NewTester(cfg Config, rnd Rand) *Tester {
	return &Tester{cfg: cfg, rand: rnd}
}

// Results returns the measurements of the last Run, one per size.
func (t *Tester) Results() []Result {
	return t.results
}

// Run measures every configured size. It stops between sizes
// and between timing batches once ctx is done.
func (t *Tester) Run(ctx context.Context) error {
	if err := t.cfg.Validate(); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	t.results = make([]Result, 0, len(t.cfg.Sizes))
	for _, num := range t.cfg.Sizes {
		start := time.Now()
		res, err := t.runSize(ctx, num)
		if err != nil {
			return err
		}
		t.results = append(t.results, res)
		log.Debugf("size %d took %0.2fs", num, time.Since(start).Seconds())
	}
	return nil
}

func (t *Tester) runSize(ctx context.Context, num int) (Result, error) {
	res := Result{Size: num}
	vals := lo.Times(num, func(int) int {
		return t.rand.Intn(t.cfg.MaxValue)
	})

	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.DynamicBuild = median(t.timeBuilds(func() rmq.RMQ { return rmq.NewDynamic(vals) }))
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.StaticBuild = median(t.timeBuilds(func() rmq.RMQ { return rmq.NewStatic(vals) }))

	ls := make([]int, t.cfg.Queries)
	rs := make([]int, t.cfg.Queries)
	for i := range ls {
		ls[i] = t.rand.Intn(num)
		rs[i] = ls[i] + t.rand.Intn(num-ls[i])
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.DynamicQuery = summarize(timeQueries(rmq.NewDynamic(vals), ls, rs))
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.StaticQuery = summarize(timeQueries(rmq.NewStatic(vals), ls, rs))
	return res, nil
}

func (t *Tester) timeBuilds(build func() rmq.RMQ) []time.Duration {
	times := make([]time.Duration, t.cfg.Builds)
	for i := range times {
		start := time.Now()
		sinkRMQ = build()
		times[i] = time.Since(start)
	}
	return times
}

func timeQueries(r rmq.RMQ, ls, rs []int) []time.Duration {
	times := make([]time.Duration, len(ls))
	for i := range ls {
		start := time.Now()
		v, _ := r.Query(ls[i], rs[i])
		times[i] = time.Since(start)
		sinkMin = v
	}
	return times
}

// String renders the results of the last Run as a plain-text report.
func (t *Tester) String() string {
	var sb strings.Builder
	sb.WriteString("Dynamic preprocessing times:\n")
	t.appendResults(&sb, func(r Result) string { return fmt.Sprintf("%gms", r.DynamicBuild) })
	sb.WriteString("\nStatic preprocessing times:\n")
	t.appendResults(&sb, func(r Result) string { return fmt.Sprintf("%gms", r.StaticBuild) })
	sb.WriteString("\nDynamic lookup times:\n")
	t.appendResults(&sb, func(r Result) string { return formatStat(r.DynamicQuery) })
	sb.WriteString("\nStatic lookup times:\n")
	t.appendResults(&sb, func(r Result) string { return formatStat(r.StaticQuery) })
	return sb.String()
}

func (t *Tester) appendResults(sb *strings.Builder, format func(Result) string) {
	for _, r := range t.results {
		fmt.Fprintf(sb, "%7d: %s\n", r.Size, format(r))
	}
}

func formatStat(s Stat) string {
	return fmt.Sprintf("%gns, std: %gns", s.Mean, s.Std)
}

// Encode writes the results of the last Run to w as "text", "json" or "msgpack".
func (t *Tester) Encode(w io.Writer, format string) error {
	var h codec.Handle
	switch format {
	case "text":
		_, err := io.WriteString(w, t.String())
		return err
	case "json":
		jh := &codec.JsonHandle{}
		jh.Indent = 2
		h = jh
	case "msgpack":
		h = &codec.MsgpackHandle{}
	default:
		return fmt.Errorf("bench: unknown format %q", format)
	}
	return codec.NewEncoder(w, h).Encode(t.results)
}

// DecodeResults reads results written by Encode in "json" or "msgpack" format.
func DecodeResults(r io.Reader, format string) ([]Result, error) {
	var h codec.Handle
	switch format {
	case "json":
		h = &codec.JsonHandle{}
	case "msgpack":
		h = &codec.MsgpackHandle{}
	default:
		return nil, fmt.Errorf("bench: cannot decode format %q", format)
	}
	var results []Result
	if err := codec.NewDecoder(r, h).Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}
