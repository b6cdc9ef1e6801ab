package internal

import (
	errs "errors"
	"fmt"
	"reflect"

	"github.com/go-stdlog/stdlog"
	"golang.org/x/sync/errgroup"

	"github.com/heyvito/rounding/errors"
	"github.com/heyvito/rounding/internal/metrics"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// LeafFunc converts a single scalar into a value of the broadcaster's
// LeafType.
type LeafFunc func(v reflect.Value) (reflect.Value, error)

// Broadcaster applies a LeafFunc to every scalar of a value, and assembles the
// results into a newly allocated value of the same shape. Slices and arrays
// are rebuilt with their scalar element type replaced by LeafType; interface
// containers such as []any are rebuilt as []any.
type Broadcaster struct {
	Leaf     LeafFunc
	LeafType reflect.Type

	// Concurrency is the maximum amount of goroutines used to process a
	// single collection. Values lower than two process elements on the
	// calling goroutine.
	Concurrency int

	// Threshold is the minimum amount of scalars a collection must hold
	// before it is processed concurrently.
	Threshold int

	Log stdlog.Logger
}

type job struct {
	in  reflect.Value
	out reflect.Value
}

type plan struct {
	jobs []job

	// fixups store collections built for interface slots. They run after
	// every job completes, innermost first.
	fixups []func()
}

// Apply rounds value. Scalars yield a bare scalar; collections yield a
// collection of identical shape. No partial result is ever returned.
func (b *Broadcaster) Apply(value any) (any, error) {
	v := reflect.ValueOf(value)
	if !IsCollection(v) {
		out, err := b.Leaf(v)
		if err != nil {
			return nil, err
		}
		return out.Interface(), nil
	}

	shape, err := ShapeOf(v)
	if err != nil {
		b.log().Debug("Rejecting ragged collection", "error", err.Error())
		return nil, err
	}

	p := &plan{jobs: make([]job, 0, shape.Size())}
	result := reflect.New(b.resultType(v.Type())).Elem()
	b.build(v, result, p)

	metrics.Simple(metrics.BroadcastElements, float64(len(p.jobs)))
	if pos, err := b.run(p.jobs); err != nil {
		index := shape.Unravel(pos)
		b.log().Debug("Element rounding failed", "index", errors.Path(index), "error", err.Error())
		return nil, withIndex(err, index)
	}

	for _, fix := range p.fixups {
		fix()
	}
	return result.Interface(), nil
}

func (b *Broadcaster) log() stdlog.Logger {
	if b.Log == nil {
		return stdlog.Discard
	}
	return b.Log
}

func (b *Broadcaster) resultType(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Slice:
		return reflect.SliceOf(b.resultType(t.Elem()))
	case reflect.Array:
		return reflect.ArrayOf(t.Len(), b.resultType(t.Elem()))
	case reflect.Interface:
		return anyType
	default:
		return b.LeafType
	}
}

// build allocates out to mirror in, and records one job per scalar in
// row-major order.
func (b *Broadcaster) build(in, out reflect.Value, p *plan) {
	switch in.Kind() {
	case reflect.Interface:
		if in.IsNil() || !IsCollection(in.Elem()) {
			p.jobs = append(p.jobs, job{in: in, out: out})
			return
		}
		elem := in.Elem()
		child := reflect.New(b.resultType(elem.Type())).Elem()
		b.build(elem, child, p)
		p.fixups = append(p.fixups, func() { out.Set(child) })

	case reflect.Slice:
		if in.IsNil() {
			return
		}
		out.Set(reflect.MakeSlice(out.Type(), in.Len(), in.Len()))
		for i := 0; i < in.Len(); i++ {
			b.build(in.Index(i), out.Index(i), p)
		}

	case reflect.Array:
		for i := 0; i < in.Len(); i++ {
			b.build(in.Index(i), out.Index(i), p)
		}

	default:
		p.jobs = append(p.jobs, job{in: in, out: out})
	}
}

func (b *Broadcaster) workers(n int) int {
	if b.Concurrency < 2 || n < max(b.Threshold, 2) {
		return 1
	}
	return min(b.Concurrency, n)
}

// run executes jobs, returning the position of the first failing job in
// row-major order along with its error.
func (b *Broadcaster) run(jobs []job) (int, error) {
	workers := b.workers(len(jobs))
	if workers == 1 {
		for i, j := range jobs {
			if err := b.apply(j); err != nil {
				return i, err
			}
		}
		return -1, nil
	}

	metrics.Simple(metrics.BroadcastParallelRuns, 1)
	b.log().Debug("Rounding collection concurrently", "elements", len(jobs), "workers", workers)

	type failure struct {
		pos int
		err error
	}
	chunk := (len(jobs) + workers - 1) / workers
	failures := make([]failure, workers)

	g := errgroup.Group{}
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, len(jobs))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := b.apply(jobs[i]); err != nil {
					failures[w] = failure{pos: i, err: err}
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err == nil {
		return -1, nil
	}

	// Chunks are ordered, so the first recorded failure is also the first
	// failing element overall.
	for _, f := range failures {
		if f.err != nil {
			return f.pos, f.err
		}
	}
	return -1, nil
}

func (b *Broadcaster) apply(j job) error {
	v, err := b.Leaf(j.in)
	if err != nil {
		return err
	}
	j.out.Set(v)
	return nil
}

func withIndex(err error, index []int) error {
	var lit errors.InvalidNumericLiteral
	if errs.As(err, &lit) {
		lit.Index = index
		return lit
	}
	return fmt.Errorf("element %s: %w", errors.Path(index), err)
}
