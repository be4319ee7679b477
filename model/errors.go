package model

import "fmt"

// ShapeError reports a seed that is not a non-empty rectangle of the
// expected size.
type ShapeError struct {
	Row    int // 0-based row index the mismatch was found on
	Want   int
	Got    int
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error at row %d: %s (want %d, got %d)", e.Row, e.Detail, e.Want, e.Got)
}

// AlphabetError reports a seed character outside {'.', '#'}.
type AlphabetError struct {
	Line   int // 1-based
	Column int // 1-based
	Char   rune
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("line %d column %d: invalid cell %q, want %q or %q",
		e.Line, e.Column, e.Char, GlyphDead, GlyphAlive)
}
