// Package screen owns the terminal for the duration of a run: raw keypress
// input, cursor visibility, and restoring the original state on release.
package screen

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"

	ctrlC = 0x03
)

// Screen is an acquired terminal. Close must be called on every exit path.
type Screen struct {
	in  io.Reader
	out io.Writer

	fd    int
	state *term.State // nil unless the input is a terminal in raw mode

	keys chan byte
	done chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Open acquires the terminal. When in is a TTY it is switched to raw mode so
// single keypresses arrive without waiting for Enter. Any other reader, such
// as a pipe, is consumed byte by byte.
func Open(in io.Reader, out io.Writer) (*Screen, error) {
	s := &Screen{
		in:   in,
		out:  out,
		fd:   -1,
		keys: make(chan byte),
		done: make(chan struct{}),
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, errors.Wrapf(err, "[screen.Open] failed to enter raw mode on %s", f.Name())
		}
		if _, err = io.WriteString(out, hideCursor); err != nil {
			_ = term.Restore(fd, state)
			return nil, errors.Wrap(err, "[screen.Open] failed to hide cursor")
		}
		s.fd, s.state = fd, state
	}

	go s.readKeys()
	return s, nil
}

// Raw reports whether the terminal is in raw mode.
func (s *Screen) Raw() bool {
	return s.state != nil
}

// Keys delivers input. In raw mode one read is one keypress, so multi-byte
// sequences such as arrow keys arrive as their first byte, or as 0x03 if the
// read contained Ctrl+C. The channel closes at end of input.
func (s *Screen) Keys() <-chan byte {
	return s.keys
}

func (s *Screen) readKeys() {
	defer close(s.keys)

	buf := make([]byte, 64)
	for {
		n, err := s.in.Read(buf)
		if n > 0 && !s.deliver(buf[:n]) {
			return
		}
		if err != nil {
			return
		}
	}
}

func (s *Screen) deliver(chunk []byte) bool {
	for _, b := range keypresses(chunk, s.Raw()) {
		select {
		case s.keys <- b:
		case <-s.done:
			return false
		}
	}
	return true
}

// keypresses splits one read into keys. A raw read is a single keypress:
// its first byte, or Ctrl+C if the read contains one. Other input yields a
// key per byte.
func keypresses(chunk []byte, raw bool) []byte {
	if !raw || len(chunk) == 0 {
		return chunk
	}
	key := chunk[0]
	for _, b := range chunk {
		if b == ctrlC {
			key = b
		}
	}
	return []byte{key}
}

// Close restores the terminal. It is safe to call more than once. A reader
// blocked on the input is abandoned; it ends with the process.
func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.state == nil {
			return
		}
		_, writeErr := io.WriteString(s.out, showCursor)
		if err := term.Restore(s.fd, s.state); err != nil {
			s.closeErr = errors.Wrap(err, "[Screen.Close] failed to restore terminal")
			return
		}
		if writeErr != nil {
			s.closeErr = errors.Wrap(writeErr, "[Screen.Close] failed to show cursor")
		}
	})
	return s.closeErr
}
