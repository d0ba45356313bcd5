package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Invicton-Labs/go-lists/arraylist"
	"github.com/Invicton-Labs/go-lists/bounds"
	"github.com/Invicton-Labs/go-lists/circularlist"
	"github.com/Invicton-Labs/go-lists/collections"
	"github.com/Invicton-Labs/go-lists/config"
	"github.com/Invicton-Labs/go-lists/debugging"
	"github.com/Invicton-Labs/go-lists/linkedlist"
	"github.com/Invicton-Labs/go-lists/log"
	"github.com/Invicton-Labs/go-lists/numbers"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// list is the behaviour shared by every list in this module.
type list interface {
	Len() int
	Append(value int)
	Get(index int) (int, stackerr.Error)
	Set(index int, value int) stackerr.Error
	Insert(value int, index int) stackerr.Error
	Remove(index int) stackerr.Error
	Pop(index int) (int, stackerr.Error)
	PopLast() (int, stackerr.Error)
	Values() []int
	String() string
}

type listKind struct {
	name      string
	fromSlice func(values []int) list
}

var listKinds = []listKind{
	{"arraylist", func(values []int) list { return arraylist.FromSlice(values) }},
	{"linkedlist", func(values []int) list { return linkedlist.FromSlice(values) }},
	{"circularlist", func(values []int) list { return circularlist.FromSlice(values) }},
}

type scenario struct {
	name string
	list string
	run  func(ctx context.Context, report *Report) error
}

func buildScenarios(cfg config.Config) []scenario {
	scenarios := []scenario{}
	for _, kind := range listKinds {
		kind := kind
		scenarios = append(scenarios,
			scenario{"primes", kind.name, func(ctx context.Context, r *Report) error {
				return runPrimes(kind, cfg.Demo.Primes, r)
			}},
			scenario{"edits", kind.name, func(ctx context.Context, r *Report) error {
				return runEdits(kind, r)
			}},
		)
	}
	scenarios = append(scenarios,
		scenario{"capacity", "arraylist", func(ctx context.Context, r *Report) error {
			return runCapacity(r)
		}},
		scenario{"reclaim", "arraylist", func(ctx context.Context, r *Report) error {
			return runReclaim(ctx, cfg.Demo.ReclaimSize, cfg.Demo.Memory, r)
		}},
		scenario{"josephus", "circularlist", func(ctx context.Context, r *Report) error {
			return runJosephus(cfg.Josephus.Participants, cfg.Josephus.Step, r)
		}},
	)
	return scenarios
}

// runScenarios runs every scenario concurrently. A failing scenario does not
// stop the others; all failures are combined into the returned error. If ctx
// is cancelled, no reports are returned and the error wraps ctx.Err().
func runScenarios(ctx context.Context, cfg config.Config) ([]Report, stackerr.Error) {
	scenarios := buildScenarios(cfg)
	reports := make([]Report, len(scenarios))
	errs := make([]error, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger := log.FromContext(ctx).With("scenario", s.name, "list", s.list)
			logger.Debugf("Running scenario")

			report := Report{Scenario: s.name, List: s.list}
			if err := s.run(ctx, &report); err != nil {
				report.Error = err.Error()
				errs[i] = fmt.Errorf("%s (%s): %w", s.name, s.list, err)
				logger.WithError(err).Warnf("Scenario failed")
			}
			reports[i] = report
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stackerr.Wrap(err)
	}
	return reports, stackerr.Wrap(multierr.Combine(errs...))
}

func firstPrimes(n int) []int {
	primes := make([]int, 0, n)
	for candidate := 2; len(primes) < n; candidate++ {
		if numbers.IsPrime(candidate) {
			primes = append(primes, candidate)
		}
	}
	return primes
}

func runPrimes(kind listKind, n int, r *Report) (err error) {
	l := kind.fromSlice(nil)
	for _, p := range firstPrimes(n) {
		l.Append(p)
	}
	r.addf("%s", l)
	if l.Len() != n {
		err = multierr.Append(err, fmt.Errorf("expected %d elements, got %d", n, l.Len()))
	}
	if n > 0 {
		last, getErr := l.Get(n - 1)
		if getErr != nil {
			return multierr.Append(err, getErr)
		}
		r.addf("last: %d", last)
	}
	return err
}

func runEdits(kind listKind, r *Report) (err error) {
	l := kind.fromSlice([]int{1, 2, 3, 4, 5, 8, 10, 20})
	r.addf("start: %s", l)

	if e := l.Insert(10, 2); e != nil {
		return e
	}
	r.addf("insert(10, 2): %s", l)

	if e := l.Remove(6); e != nil {
		return e
	}
	r.addf("remove(6): %s", l)

	popped, e := l.Pop(4)
	if e != nil {
		return e
	}
	r.addf("pop(4) = %d: %s", popped, l)

	last, e := l.PopLast()
	if e != nil {
		return e
	}
	r.addf("pop() = %d: %s", last, l)

	if e := l.Set(0, 100); e != nil {
		return e
	}
	r.addf("set(0, 100): %s", l)

	want := []int{100, 2, 10, 3, 5, 10}
	if !collections.SliceEqual(l.Values(), want) {
		err = multierr.Append(err, fmt.Errorf("expected %s, got %s", collections.FormatBracketed(want), l))
	}

	if _, e := l.Get(l.Len()); bounds.IsOutOfRange(e) {
		r.addf("get(%d): %v", l.Len(), bounds.ErrIndexOutOfRange)
	} else {
		err = multierr.Append(err, fmt.Errorf("get(%d) past the end did not fail with out of range", l.Len()))
	}
	if e := l.Insert(0, -1); !bounds.IsOutOfRange(e) {
		err = multierr.Append(err, fmt.Errorf("insert at -1 did not fail with out of range"))
	}
	return err
}

func formatCapacities(capacities []int) string {
	parts := make([]string, len(capacities))
	for i, c := range capacities {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, " -> ")
}

// recordCapacity appends the list's capacity if it differs from the last one seen.
func recordCapacity(capacities []int, l *arraylist.ArrayList) []int {
	if len(capacities) == 0 || capacities[len(capacities)-1] != l.Cap() {
		return append(capacities, l.Cap())
	}
	return capacities
}

func runCapacity(r *Report) (err error) {
	l := arraylist.New()
	capacities := recordCapacity(nil, l)
	for _, v := range collections.Range(1, 17) {
		l.Append(v)
		capacities = recordCapacity(capacities, l)
	}
	r.addf("append 1..16: capacities %s", formatCapacities(capacities))
	for i, c := range capacities {
		if want := numbers.PowInt(2, i); c != want {
			err = multierr.Append(err, fmt.Errorf("growth step %d: expected capacity %d, got %d", i, want, c))
		}
	}

	capacities = recordCapacity(nil, l)
	for l.Len() > 0 {
		if _, e := l.PopLast(); e != nil {
			return e
		}
		capacities = recordCapacity(capacities, l)
	}
	r.addf("pop to empty: capacities %s", formatCapacities(capacities))

	l = arraylist.FromSlice([]int{11, 24, 26, 19})
	l.Append(7)
	for _, index := range []int{4, 2} {
		if e := l.Remove(index); e != nil {
			return e
		}
	}
	before := l.Cap()
	l.ShrinkToFit()
	r.addf("shrink_to_fit: %s cap %d -> %d", l, before, l.Cap())
	if l.Cap() < l.Len() || l.Cap() > 2*numbers.Max(l.Len(), 1) {
		err = multierr.Append(err, fmt.Errorf("capacity %d not fitted to size %d", l.Cap(), l.Len()))
	}
	return err
}

// reclaimCheckInterval is how many appends the reclaim scenario makes between
// cancellation checks.
const reclaimCheckInterval = 1 << 12

func runReclaim(ctx context.Context, size int, withMemory bool, r *Report) (err error) {
	if withMemory {
		r.addf("memory before: %s", debugging.ReadMemUsage(true))
	}

	l := arraylist.New()
	for i := 0; i < size; i++ {
		if i%reclaimCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		l.Append(i)
	}
	r.addf("appended %d: cap %d", l.Len(), l.Cap())

	if withMemory {
		r.addf("memory full: %s", debugging.ReadMemUsage(true))
	}

	for l.Len() > 0 {
		if _, e := l.PopLast(); e != nil {
			return e
		}
	}
	r.addf("drained: cap %d", l.Cap())
	if l.Cap() != 1 {
		err = multierr.Append(err, fmt.Errorf("expected a drained list to keep capacity 1, got %d", l.Cap()))
	}

	if withMemory {
		r.addf("memory drained: %s", debugging.ReadMemUsage(true))
	}
	return err
}

func runJosephus(participants int, step int, r *Report) (err error) {
	sequence, e := circularlist.Sequence(6).JosephusSequence(3)
	if e != nil {
		return e
	}
	r.addf("sequence(6, 3): %s", collections.FormatBracketed(sequence))

	survivor, e := circularlist.LastManStanding(participants, step)
	if e != nil {
		return e
	}
	r.addf("survivor of %d with step %d: %d", participants, step, survivor)
	return nil
}
