// Package config gathers the solver settings from the environment, an
// optional .env file and the command line, later sources winning.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds everything the CLI needs.
type Config struct {
	File    string // "-" reads stdin
	Unfold  bool
	NoPrune bool
	Verbose bool

	// EnvLoaded is true when a .env file was found and read.
	EnvLoaded bool
}

const (
	EnvInput   = "AMPHIPOD_INPUT"
	EnvUnfold  = "AMPHIPOD_UNFOLD"
	EnvNoPrune = "AMPHIPOD_NO_PRUNE"
	EnvVerbose = "AMPHIPOD_VERBOSE"
)

// Load reads envFile when it exists (variables already set are kept),
// then parses args. A missing envFile is not an error.
func Load(envFile string, args []string) (Config, error) {

	var cfg Config

	if envFile != "" {
		err := godotenv.Load(envFile)
		switch {
		case err == nil:
			cfg.EnvLoaded = true
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg.File = "input.txt"
	if v := os.Getenv(EnvInput); v != "" {
		cfg.File = v
	}
	var err error
	if cfg.Unfold, err = envBool(EnvUnfold); err != nil {
		return cfg, err
	}
	if cfg.NoPrune, err = envBool(EnvNoPrune); err != nil {
		return cfg, err
	}
	if cfg.Verbose, err = envBool(EnvVerbose); err != nil {
		return cfg, err
	}

	flags := pflag.NewFlagSet("day23", pflag.ContinueOnError)
	flags.StringVarP(&cfg.File, "file", "f", cfg.File, "Input file, - for stdin")
	flags.BoolVarP(&cfg.Unfold, "unfold", "u", cfg.Unfold, "Insert the two hidden rows before solving")
	flags.BoolVar(&cfg.NoPrune, "no-prune", cfg.NoPrune, "Keep moves out of already settled rooms")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log timing and search statistics")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if flags.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	return cfg, nil

}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s not a truthy value: %q", key, v)
	}
	return b, nil
}
