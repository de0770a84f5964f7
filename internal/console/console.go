// Package console is a line-based interactive front end for the RMQ structures.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	rmq "github.com/AlexWan0/go-rmq"
	"github.com/AlexWan0/go-rmq/internal/bench"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// randomMax bounds generated values: each lies in [0, randomMax).
const randomMax = 10000

// UI reads commands line by line from in and writes prompts and answers to out.
type UI struct {
	scan     *bufio.Scanner
	out      io.Writer
	rand     bench.Rand
	benchCfg bench.Config
}

// New returns a UI generating random arrays from rnd.
func New(in io.Reader, out io.Writer, rnd bench.Rand) *UI {
	return &UI{
		scan:     bufio.NewScanner(in),
		out:      out,
		rand:     rnd,
		benchCfg: bench.DefaultConfig(),
	}
}

// WithBenchConfig sets the config used by performance testing (p).
func (ui *UI) WithBenchConfig(cfg bench.Config) *UI {
	ui.benchCfg = cfg
	return ui
}

// Run drives one session. Input running out at a menu before a structure
// is built returns an error wrapping io.EOF.
func (ui *UI) Run(ctx context.Context) error {
	sel, err := ui.choose("Select static (s) or dynamic (d) rmq, or do performance testing (p).", "s", "d", "p")
	if err != nil {
		return err
	}
	if sel == "p" {
		return ui.runPerformanceTests(ctx)
	}
	static := sel == "s"

	sel, err = ui.choose("Enter integers manually (e) or generate randomly (r).", "e", "r")
	if err != nil {
		return err
	}
	var vals []int
	if sel == "r" {
		vals, err = ui.randomValues()
		if err != nil {
			return err
		}
	} else {
		vals = ui.readValues()
	}

	if static {
		ui.queries(rmq.NewStatic(vals), vals)
		return nil
	}
	ui.dynamic(rmq.NewDynamic(vals), vals)
	return nil
}

// choose prompts until one of opts is entered.
func (ui *UI) choose(prompt string, opts ...string) (string, error) {
	for {
		ui.println(prompt)
		sel, err := ui.readLine()
		if err != nil {
			return "", err
		}
		if lo.Contains(opts, sel) {
			return sel, nil
		}
	}
}

// queries answers left/right pairs until an input fails to parse
// or a query is rejected.
func (ui *UI) queries(r rmq.RMQ, vals []int) {
	ui.println("Enter queries. End with invalid input")
	ui.println(fmt.Sprint(vals))
	for {
		ui.println("left: ")
		l, err := ui.readInt()
		if err != nil {
			return
		}
		ui.println("right: ")
		rr, err := ui.readInt()
		if err != nil {
			return
		}
		v, err := r.Query(l, rr)
		if err != nil {
			log.Debugf("query: %v", err)
			return
		}
		ui.println(fmt.Sprintf("arr[%d,%d]: %d", l, rr, v))
	}
}

func (ui *UI) dynamic(drmq *rmq.DynamicRMQ, vals []int) {
	for {
		ui.println("Edit values (e) or make queries (q).\nTerminate with empty input.")
		sel, err := ui.readLine()
		if err != nil || sel == "" {
			return
		}
		switch sel {
		case "e":
			ui.updates(drmq, vals)
		case "q":
			ui.queries(drmq, vals)
		}
	}
}

// updates applies index/value pairs to drmq and vals until an input
// fails to parse or an index is rejected.
func (ui *UI) updates(drmq *rmq.DynamicRMQ, vals []int) {
	ui.println("Update values. End with invalid input.")
	ui.println(fmt.Sprint(vals))
	for {
		ui.println("index:")
		idx, err := ui.readInt()
		if err != nil {
			return
		}
		ui.println("value:")
		val, err := ui.readInt()
		if err != nil {
			return
		}
		if err := drmq.Update(idx, val); err != nil {
			log.Debugf("update: %v", err)
			return
		}
		vals[idx] = val
	}
}

// readValues reads integers until the first line that is not one.
func (ui *UI) readValues() []int {
	ui.println("Enter integers for array. End with non-integer")
	vals := make([]int, 0)
	for {
		v, err := ui.readInt()
		if err != nil {
			return vals
		}
		vals = append(vals, v)
	}
}

func (ui *UI) randomValues() ([]int, error) {
	for {
		ui.println("How many?")
		line, err := ui.readLine()
		if err != nil {
			return nil, err
		}
		num, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || num < 0 {
			continue
		}
		return lo.Times(num, func(int) int {
			return ui.rand.Intn(randomMax)
		}), nil
	}
}

func (ui *UI) runPerformanceTests(ctx context.Context) error {
	tester := bench.NewTester(ui.benchCfg, ui.rand)
	if err := tester.Run(ctx); err != nil {
		return fmt.Errorf("performance testing: %w", err)
	}
	ui.println(tester.String())
	return nil
}

func (ui *UI) readLine() (string, error) {
	if ui.scan.Scan() {
		return ui.scan.Text(), nil
	}
	if err := ui.scan.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("console: input closed: %w", io.EOF)
}

func (ui *UI) readInt() (int, error) {
	line, err := ui.readLine()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

func (ui *UI) println(s string) {
	fmt.Fprintln(ui.out, s)
}
