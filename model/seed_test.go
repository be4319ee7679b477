package model

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/utils"
)

func TestParseSeed(t *testing.T) {
	g, err := ParseSeed(strings.NewReader(".#.\r\n#.#\n...\nignored\n"), 3, 3)
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if got := Format(g); got != ".#.\n#.#\n...\n" {
		t.Fatalf("Format = %q", got)
	}
}

func TestParseSeedLeavesTrailingInput(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("#.\n.#\nabc"))
	g, err := ParseSeed(br, 2, 2)
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if got := Format(g); got != "#.\n.#\n" {
		t.Fatalf("Format = %q", got)
	}
	rest, err := io.ReadAll(br)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != "abc" {
		t.Fatalf("input after the seed = %q, want %q", rest, "abc")
	}
}

func TestParseSeedLastLineWithoutNewline(t *testing.T) {
	g, err := ParseSeed(strings.NewReader("..\n##"), 2, 2)
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if g.CountLivingCells() != 2 {
		t.Fatalf("population = %d, want 2", g.CountLivingCells())
	}
}

func TestParseSeedErrors(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		width, height int
		alphabet      bool
		line          int
	}{
		{name: "bad glyph", input: "..\n.x\n", width: 2, height: 2, alphabet: true, line: 2},
		{name: "zero glyph", input: "0.\n", width: 2, height: 1, alphabet: true, line: 1},
		{name: "short line", input: "..\n.\n", width: 2, height: 2},
		{name: "long line", input: "...\n", width: 2, height: 1},
		{name: "too few lines", input: "..\n", width: 2, height: 3},
		{name: "empty input", input: "", width: 1, height: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSeed(strings.NewReader(tc.input), tc.width, tc.height)
			if err == nil {
				t.Fatal("expected error")
			}
			var alphaErr *AlphabetError
			var shapeErr *ShapeError
			switch {
			case tc.alphabet:
				if !errors.As(err, &alphaErr) {
					t.Fatalf("expected AlphabetError, got %v", err)
				}
				if alphaErr.Line != tc.line {
					t.Fatalf("line = %d, want %d", alphaErr.Line, tc.line)
				}
			default:
				if !errors.As(err, &shapeErr) {
					t.Fatalf("expected ShapeError, got %v", err)
				}
			}
		})
	}
}

func TestParseRowReportsColumn(t *testing.T) {
	_, err := ParseRow("..#?#", 4, 5)
	var alphaErr *AlphabetError
	if !errors.As(err, &alphaErr) {
		t.Fatalf("expected AlphabetError, got %v", err)
	}
	if alphaErr.Column != 4 || alphaErr.Char != '?' {
		t.Fatalf("got %+v", alphaErr)
	}
}

func TestRandomSeedLine(t *testing.T) {
	rng := utils.NewRNG(3)
	for _, n := range []int{0, 1, 2, 17, 100} {
		line := RandomSeedLine(rng, n)
		if len(line) != n {
			t.Fatalf("len = %d, want %d", len(line), n)
		}
		if strings.Trim(line, ".#") != "" {
			t.Fatalf("line %q has glyphs outside the seed alphabet", line)
		}
	}
}

type fixedCoin bool

func (c fixedCoin) Bool() bool { return bool(c) }

func TestRandomGridUsesCoin(t *testing.T) {
	alive, err := RandomGrid(fixedCoin(true), 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if alive.CountLivingCells() != 12 {
		t.Fatalf("all-heads coin produced %d live cells", alive.CountLivingCells())
	}
	dead, err := RandomGrid(fixedCoin(false), 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if dead.CountLivingCells() != 0 {
		t.Fatalf("all-tails coin produced %d live cells", dead.CountLivingCells())
	}
}

func TestRandomGridDeterministic(t *testing.T) {
	a, _ := RandomGrid(utils.NewRNG(5), 10, 10)
	b, _ := RandomGrid(utils.NewRNG(5), 10, 10)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
}
