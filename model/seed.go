package model

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/utils"
)

// ParseRow decodes one seed line of exactly width cells. Surrounding
// whitespace, including a trailing \r, is ignored. lineNo is 1-based and
// only used for error reporting.
func ParseRow(line string, lineNo, width int) ([]bool, error) {
	line = strings.TrimSpace(line)

	row := make([]bool, 0, width)
	col := 0
	for _, c := range line {
		col++
		switch c {
		case GlyphDead:
			row = append(row, false)
		case GlyphAlive:
			row = append(row, true)
		default:
			return nil, &AlphabetError{Line: lineNo, Column: col, Char: c}
		}
	}
	if len(row) != width {
		return nil, &ShapeError{Row: lineNo - 1, Want: width, Got: len(row), Detail: "seed line has the wrong length"}
	}
	return row, nil
}

// ParseSeed reads exactly height lines of width cells from r. When r is a
// *bufio.Reader it is used directly, so whatever follows the last row stays
// readable from it.
func ParseSeed(r io.Reader, width, height int) (*Grid, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	rows := make([][]bool, 0, height)
	for len(rows) < height {
		lineNo := len(rows) + 1
		line, err := br.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				return nil, &ShapeError{Row: len(rows), Want: height, Got: len(rows), Detail: "seed ended before the last row"}
			}
			return nil, errors.Wrapf(err, "[ParseSeed] failed to read seed line %d", lineNo)
		}

		row, err := ParseRow(line, lineNo, width)
		if err != nil {
			return nil, errors.Wrapf(err, "[ParseSeed] invalid seed line %d", lineNo)
		}
		rows = append(rows, row)
	}

	grid, err := FromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "[ParseSeed] invalid seed")
	}
	return grid, nil
}

// ParseSeedLines builds a grid from literal seed lines; the first line fixes the width.
func ParseSeedLines(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, &ShapeError{Row: 0, Want: 1, Got: 0, Detail: "grid has no rows"}
	}
	width := utf8.RuneCountInString(strings.TrimSpace(lines[0]))
	return ParseSeed(strings.NewReader(strings.Join(lines, "\n")), width, len(lines))
}

// RandomSeedLine returns n cells in seed notation, one coin flip per cell.
func RandomSeedLine(rng utils.Coin, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		if rng.Bool() {
			sb.WriteRune(GlyphAlive)
		} else {
			sb.WriteRune(GlyphDead)
		}
	}
	return sb.String()
}

// RandomGrid seeds a width x height grid from rng.
func RandomGrid(rng utils.Coin, width, height int) (*Grid, error) {
	rows := make([][]bool, height)
	for y := range rows {
		row, err := ParseRow(RandomSeedLine(rng, width), y+1, width)
		if err != nil {
			return nil, errors.Wrapf(err, "[RandomGrid] failed to build row %d", y)
		}
		rows[y] = row
	}

	grid, err := FromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "[RandomGrid] invalid shape")
	}
	return grid, nil
}
