package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/geofduf/amphipod/internal/burrow"
	"github.com/geofduf/amphipod/internal/config"
	"github.com/geofduf/amphipod/internal/search"
)

const (
	exitMalformed  = 1
	exitNoSolution = 2
)

// Read + parse the diagram, optionally unfold it, and print the least energy
// needed to organize the amphipods.
func main() {

	log.SetFlags(0)
	log.SetPrefix("day23: ")

	cfg, err := config.Load(".env", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Print(err)
		os.Exit(exitMalformed)
	}

	cost, err := run(cfg, os.Stdin)
	if err != nil {
		log.Print(err)
		if errors.Is(err, search.ErrNoSolution) {
			os.Exit(exitNoSolution)
		}
		os.Exit(exitMalformed)
	}

	fmt.Println(cost)

}

func run(cfg config.Config, stdin io.Reader) (uint32, error) {

	start := time.Now()

	if cfg.Verbose && cfg.EnvLoaded {
		log.Print("loaded settings from .env")
	}

	in := stdin
	if cfg.File != "-" {
		f, err := os.Open(cfg.File)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		in = f
	}

	s, err := burrow.Parse(in)
	if err != nil {
		return 0, err
	}
	if cfg.Unfold {
		if s, err = burrow.Unfold(s); err != nil {
			return 0, err
		}
	}

	res, err := search.Run[burrow.State](burrow.Graph{NoPrune: cfg.NoPrune}, s)
	if cfg.Verbose {
		log.Printf("depth %d, %s", s.Depth(), res.Stats)
		log.Printf("execution time (incl. parsing): %s", time.Since(start))
	}
	if err != nil {
		return 0, err
	}

	return res.Cost, nil

}
