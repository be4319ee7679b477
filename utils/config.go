package utils

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Strategy selects how the next generation is computed. Every strategy
// produces the same grid.
type Strategy string

const (
	StrategySequential Strategy = "sequential"
	StrategyParallel   Strategy = "parallel"
	StrategyBounded    Strategy = "bounded"
)

// Strategies lists the accepted strategy names.
var Strategies = []Strategy{StrategySequential, StrategyParallel, StrategyBounded}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	for _, known := range Strategies {
		if s == known {
			return true
		}
	}
	return false
}

// Config holds the configuration for the game
type Config struct {
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	Random         bool     `json:"random"`
	AutoTime       float64  `json:"auto_time"`
	Seed           int64    `json:"seed"`
	Strategy       Strategy `json:"strategy"`
	UseMemoryPool  bool     `json:"use_memory_pool"`
	MaxGenerations int      `json:"max_generations"`
	ConfigFile     string   `json:"-"`
}

// ConfigError reports an unusable configuration value. It is always fatal.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        10,
		Strategy:      StrategySequential,
		UseMemoryPool: true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Delay is the pause between generations; zero means wait for a keypress.
func (c Config) Delay() time.Duration {
	return time.Duration(c.AutoTime * float64(time.Second))
}

// Validate checks the structural preconditions of a run.
func (c Config) Validate() error {
	if c.Height < 1 {
		return &ConfigError{Field: "height", Value: strconv.Itoa(c.Height), Reason: "must be a positive integer"}
	}
	if c.Width < 1 {
		return &ConfigError{Field: "width", Value: strconv.Itoa(c.Width), Reason: "must be a positive integer"}
	}
	if c.AutoTime < 0 || math.IsNaN(c.AutoTime) || math.IsInf(c.AutoTime, 0) {
		return &ConfigError{Field: "auto_time", Value: formatSeconds(c.AutoTime), Reason: "must be a non-negative number of seconds"}
	}
	if !c.Strategy.Valid() {
		return &ConfigError{Field: "strategy", Value: string(c.Strategy), Reason: fmt.Sprintf("must be one of %v", Strategies)}
	}
	if c.MaxGenerations < 0 {
		return &ConfigError{Field: "max_gen", Value: strconv.Itoa(c.MaxGenerations), Reason: "must not be negative"}
	}
	return nil
}

// ParseFlags builds a Config from command-line arguments. When -config names
// a JSON file it is loaded first and explicitly set flags override it.
// flag.ErrHelp is returned untouched so callers can exit cleanly on -h.
func ParseFlags(args []string, output io.Writer) (Config, error) {
	var (
		defaults = DefaultConfig()
		fs       = flag.NewFlagSet("gol", flag.ContinueOnError)

		height     = strconv.Itoa(defaults.Height)
		width      = strconv.Itoa(defaults.Width)
		autoTime   = formatSeconds(defaults.AutoTime)
		strategy   = string(defaults.Strategy)
		random     = defaults.Random
		seed       = defaults.Seed
		pool       = defaults.UseMemoryPool
		maxGen     = defaults.MaxGenerations
		configFile string
	)
	fs.SetOutput(output)
	fs.StringVar(&height, "height", height, "grid height in rows")
	fs.StringVar(&width, "width", width, "grid width in columns")
	fs.BoolVar(&random, "random", random, "seed every cell with a coin flip instead of reading stdin")
	fs.StringVar(&autoTime, "auto_time", autoTime, "seconds between generations; 0 waits for a keypress")
	fs.StringVar(&autoTime, "n", autoTime, "shorthand for -auto_time")
	fs.Int64Var(&seed, "seed", seed, "random seed for -random; 0 picks one from the clock")
	fs.StringVar(&strategy, "strategy", strategy, fmt.Sprintf("step strategy, one of %v", Strategies))
	fs.BoolVar(&pool, "pool", pool, "recycle generation buffers")
	fs.IntVar(&maxGen, "max_gen", maxGen, "stop after this many generations; 0 runs until a fixed point")
	fs.StringVar(&configFile, "config", "", "JSON configuration file; explicit flags take precedence")

	if err := fs.Parse(args); err != nil {
		return defaults, err
	}
	if fs.NArg() > 0 {
		return defaults, &ConfigError{Field: "argument", Value: fs.Arg(0), Reason: "positional arguments are not accepted"}
	}

	config := defaults
	if configFile != "" {
		loaded, err := LoadConfig(configFile)
		if err != nil {
			return defaults, err
		}
		config = loaded
		config.ConfigFile = configFile
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "height":
			config.Height, err = parseDimension("height", height)
		case "width":
			config.Width, err = parseDimension("width", width)
		case "auto_time", "n":
			config.AutoTime, err = parseSeconds(autoTime)
		case "random":
			config.Random = random
		case "seed":
			config.Seed = seed
		case "strategy":
			config.Strategy = Strategy(strategy)
		case "pool":
			config.UseMemoryPool = pool
		case "max_gen":
			config.MaxGenerations = maxGen
		}
	})
	if err != nil {
		return defaults, err
	}

	if err = config.Validate(); err != nil {
		return defaults, err
	}
	return config, nil
}

func parseDimension(field, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConfigError{Field: field, Value: raw, Reason: "must be a positive integer"}
	}
	if n < 1 {
		return 0, &ConfigError{Field: field, Value: raw, Reason: "must be a positive integer"}
	}
	return n, nil
}

func parseSeconds(raw string) (float64, error) {
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil || secs < 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, &ConfigError{Field: "auto_time", Value: raw, Reason: "must be a non-negative number of seconds"}
	}
	return secs, nil
}

func formatSeconds(secs float64) string {
	return strconv.FormatFloat(secs, 'g', -1, 64)
}
