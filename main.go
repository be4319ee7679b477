package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/driver"
	"github.com/sheikhrachel/go-gol-term/screen"
	"github.com/sheikhrachel/go-gol-term/utils"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitInterrupt = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	config, err := utils.ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "gol: %v\n", err)
		var cfgErr *utils.ConfigError
		if errors.As(err, &cfgErr) {
			return exitFailure
		}
		return exitUsage
	}

	// Handle Ctrl+C and SIGTERM gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, err := initializeGame(config, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "gol: %v\n", err)
		return exitFailure
	}
	defer game.release()

	runErr := game.driver.Run(ctx)

	// Restore the terminal before anything else is printed to it
	if err := game.release(); err != nil {
		fmt.Fprintf(stderr, "gol: %v\n", err)
	}
	displayGameSummary(stderr, game.driver)

	switch {
	case runErr == nil:
		return exitOK
	case errors.Is(runErr, driver.ErrInterrupt), errors.Is(runErr, context.Canceled):
		return exitInterrupt
	default:
		fmt.Fprintf(stderr, "gol: %v\n", runErr)
		return exitFailure
	}
}

// game bundles what a run acquires so it can be released together
type game struct {
	driver *driver.Driver
	screen *screen.Screen
	keysIn io.Closer
}

func (g *game) release() error {
	err := g.screen.Close()
	if g.keysIn != nil {
		_ = g.keysIn.Close()
		g.keysIn = nil
	}
	return err
}
