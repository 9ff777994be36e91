// Command generator prints a tour-variance test instance.
//
//	generator [seed]
//
// The seed defaults to 1. The same seed always prints the same instance.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/tourvar/instance"
	"github.com/katalvlaran/tourvar/rng"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates the instance named by args onto stdout and returns the
// process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [seed]\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "generator"})

	seed := instance.DefaultSeed
	switch fs.NArg() {
	case 0:
	case 1:
		s, err := rng.ParseSeed(fs.Arg(0))
		if err != nil {
			logger.Error("invalid seed", "err", err)
			fs.Usage()
			return exitUsage
		}
		seed = s
	default:
		fs.Usage()
		return exitUsage
	}

	if _, err := instance.Generate(seed).WriteTo(stdout); err != nil {
		logger.Error("failed to write instance", "err", err)
		return exitFailure
	}
	return exitOK
}
