package driver

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// interruptKey is Ctrl+C. Raw terminals deliver it as a byte instead of
// raising SIGINT, so it is the one input that ends the run.
const interruptKey byte = 0x03

var (
	// ErrInterrupt is returned when the user presses Ctrl+C.
	ErrInterrupt = errors.New("interrupted")
	// ErrInputClosed is returned when keypress input reaches its end.
	ErrInputClosed = errors.New("input closed")
)

// Waiter blocks between generations.
type Waiter interface {
	Wait(ctx context.Context) error
}

// NewWaiter returns a TimedWaiter for a positive delay, otherwise a KeyWaiter.
func NewWaiter(delay time.Duration, keys <-chan byte) Waiter {
	if delay > 0 {
		return TimedWaiter{Delay: delay, Keys: keys}
	}
	return KeyWaiter{Keys: keys}
}

// KeyWaiter advances exactly one generation per key.
type KeyWaiter struct {
	Keys <-chan byte
}

func (w KeyWaiter) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "[KeyWaiter.Wait] cancelled")
	case key, ok := <-w.Keys:
		if !ok {
			return ErrInputClosed
		}
		if key == interruptKey {
			return ErrInterrupt
		}
		return nil
	}
}

// TimedWaiter sleeps Delay. Keys, if set, is only watched for Ctrl+C; other
// input neither advances nor delays the run.
type TimedWaiter struct {
	Delay time.Duration
	Keys  <-chan byte
}

func (w TimedWaiter) Wait(ctx context.Context) error {
	timer := time.NewTimer(w.Delay)
	defer timer.Stop()

	keys := w.Keys
	for {
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "[TimedWaiter.Wait] cancelled")
		case <-timer.C:
			return nil
		case key, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			if key == interruptKey {
				return ErrInterrupt
			}
		}
	}
}
