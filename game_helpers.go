package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/driver"
	"github.com/sheikhrachel/go-gol-term/model"
	"github.com/sheikhrachel/go-gol-term/screen"
	"github.com/sheikhrachel/go-gol-term/utils"
)

// controllingTTY is where keys are read from when stdin carried the seed
var controllingTTY = "/dev/tty"

// initializeGame seeds the grid, acquires the terminal and wires the driver.
// Nothing is left acquired when it fails.
func initializeGame(config utils.Config, stdin *os.File, stdout io.Writer) (*game, error) {
	seedIn := bufio.NewReader(stdin)
	grid, err := seedGrid(config, seedIn)
	if err != nil {
		return nil, err
	}

	keys, keysCloser := keyInput(config, stdin, seedIn)
	scr, err := screen.Open(keys, stdout)
	if err != nil {
		if keysCloser != nil {
			_ = keysCloser.Close()
		}
		return nil, errors.Wrap(err, "[initializeGame] failed to acquire terminal")
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	renderer := &model.TerminalRenderer{Out: stdout, Raw: scr.Raw()}
	d := driver.New(grid, renderer, driver.NewWaiter(config.Delay(), scr.Keys()), driver.Options{
		Strategy:       config.Strategy,
		Pool:           pool,
		MaxGenerations: config.MaxGenerations,
		Stats:          utils.NewStats(),
	})

	return &game{driver: d, screen: scr, keysIn: keysCloser}, nil
}

// seedGrid builds the initial generation from a coin flip per cell or from stdin
func seedGrid(config utils.Config, stdin io.Reader) (*model.Grid, error) {
	if config.Random {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		grid, err := model.RandomGrid(utils.NewRNG(seed), config.Width, config.Height)
		if err != nil {
			return nil, errors.Wrap(err, "[seedGrid] failed to generate random seed")
		}
		return grid, nil
	}

	grid, err := model.ParseSeed(stdin, config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[seedGrid] failed to read seed from stdin")
	}
	return grid, nil
}

// keyInput picks where keypresses come from. A seed read from stdin has
// consumed it, so keys come from the controlling terminal when there is one.
// Otherwise keys continue on stdin, starting with whatever the seed reader
// buffered past the last row.
func keyInput(config utils.Config, stdin *os.File, seedIn *bufio.Reader) (io.Reader, io.Closer) {
	if config.Random {
		return stdin, nil
	}
	tty, err := os.Open(controllingTTY)
	if err == nil {
		return tty, tty
	}
	if seedIn.Buffered() > 0 {
		return seedIn, nil
	}
	return stdin, nil
}

// displayGameSummary reports how the run ended
func displayGameSummary(w io.Writer, d *driver.Driver) {
	fmt.Fprintf(w, "Stopped: %s after generation %d\n", d.StopReason(), d.Generation())
	fmt.Fprintln(w, d.Stats().Summary())
}
