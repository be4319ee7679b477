package model

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	GlyphAlive = '#'
	GlyphDead  = '.'

	// ANSI cursor home followed by erase display
	clearScreen = "\x1b[H\x1b[2J"
)

// Format renders g in seed notation, one line per row, each ending in '\n'.
// The result parses back to the same grid.
func Format(g *Grid) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				sb.WriteByte(GlyphAlive)
			} else {
				sb.WriteByte(GlyphDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TerminalRenderer draws generations onto a character terminal
type TerminalRenderer struct {
	Out io.Writer
	// Raw terminals do no output processing, so lines need an explicit \r
	Raw bool
}

// Display writes the grid at the cursor position
func (r *TerminalRenderer) Display(g *Grid) error {
	text := Format(g)
	if r.Raw {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	if _, err := io.WriteString(r.Out, text); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen and homes the cursor
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, clearScreen); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to clear screen")
	}
	return nil
}
