// Package driver runs the generation loop: step, render, wait, and stop at
// the first generation that equals its predecessor.
package driver

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/model"
	"github.com/sheikhrachel/go-gol-term/utils"
)

// State of the generation loop.
type State int

const (
	Seeded State = iota
	Stepping
	Rendered
	Waiting
	Terminated
)

func (s State) String() string {
	switch s {
	case Seeded:
		return "seeded"
	case Stepping:
		return "stepping"
	case Rendered:
		return "rendered"
	case Waiting:
		return "waiting"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// StopReason explains why Run returned.
type StopReason string

const (
	FixedPoint      StopReason = "fixed point"
	GenerationLimit StopReason = "generation limit"
	InputClosed     StopReason = "input closed"
	Interrupted     StopReason = "interrupted"
	Failed          StopReason = "failed"
)

// Renderer puts a generation on screen.
type Renderer interface {
	Clear() error
	Display(g *model.Grid) error
}

// Options tune a Driver. The zero value steps sequentially without pooling
// and runs until a fixed point.
type Options struct {
	Strategy       utils.Strategy
	Pool           *model.GridPool
	MaxGenerations int
	Stats          *utils.Stats
}

// Driver owns the grid for the whole run. It keeps exactly two generations:
// the one being displayed and the one it was computed from.
type Driver struct {
	current  *model.Grid
	previous *model.Grid

	strategy       utils.Strategy
	pool           *model.GridPool
	maxGenerations int

	renderer Renderer
	waiter   Waiter
	stats    *utils.Stats

	state      State
	reason     StopReason
	generation int
	lastFrame  time.Time
}

// New takes ownership of seed; callers must not use it afterwards.
func New(seed *model.Grid, renderer Renderer, waiter Waiter, opts Options) *Driver {
	if opts.Strategy == "" {
		opts.Strategy = utils.StrategySequential
	}
	if opts.Stats == nil {
		opts.Stats = utils.NewStats()
	}
	return &Driver{
		current:        seed,
		strategy:       opts.Strategy,
		pool:           opts.Pool,
		maxGenerations: opts.MaxGenerations,
		renderer:       renderer,
		waiter:         waiter,
		stats:          opts.Stats,
		state:          Seeded,
	}
}

// StopReason explains why Run returned; it is empty while running.
func (d *Driver) StopReason() StopReason {
	return d.reason
}

// Generation is the number of steps taken so far.
func (d *Driver) Generation() int {
	return d.generation
}

// Stats exposes the run statistics.
func (d *Driver) Stats() *utils.Stats {
	return d.stats
}

// Advance computes one generation and reports whether it equals the one
// before it. The generation from two steps ago goes back to the pool.
func (d *Driver) Advance() bool {
	d.state = Stepping

	prev := d.current
	next := prev.NextGeneration(d.strategy, d.pool)
	fixed := prev.Equal(next)

	d.pool.Put(d.previous)
	d.previous, d.current = prev, next
	d.generation++
	return fixed
}

// Run loops until the grid reaches a fixed point, the generation limit is
// hit, input ends, or the run is interrupted. The fixed-point generation is
// still displayed and waited on before Run returns; if input ends during
// that wait the stop is still reported as FixedPoint. Interrupts and
// cancellation are returned as errors; the other stops return nil.
func (d *Driver) Run(ctx context.Context) error {
	d.lastFrame = time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return d.stop(Interrupted, errors.Wrap(err, "[Driver.Run] cancelled"))
		}

		fixed := d.Advance()

		if err := d.render(); err != nil {
			return d.stop(Failed, err)
		}
		d.state = Rendered
		d.recordStats()

		d.state = Waiting
		if err := d.waiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrInputClosed) {
				if fixed {
					return d.stop(FixedPoint, nil)
				}
				return d.stop(InputClosed, nil)
			}
			return d.stop(Interrupted, err)
		}

		if fixed {
			return d.stop(FixedPoint, nil)
		}
		if d.maxGenerations > 0 && d.generation >= d.maxGenerations {
			return d.stop(GenerationLimit, nil)
		}
	}
}

func (d *Driver) render() error {
	if err := d.renderer.Clear(); err != nil {
		return errors.Wrapf(err, "[Driver.render] generation %d", d.generation)
	}
	if err := d.renderer.Display(d.current); err != nil {
		return errors.Wrapf(err, "[Driver.render] generation %d", d.generation)
	}
	return nil
}

func (d *Driver) recordStats() {
	now := time.Now()
	d.stats.Update(d.generation, d.current.CountLivingCells(), d.current.GetBoundingBoxSize(), now.Sub(d.lastFrame))
	d.lastFrame = now
}

func (d *Driver) stop(reason StopReason, err error) error {
	d.state = Terminated
	d.reason = reason
	return err
}
