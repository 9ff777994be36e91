// Command judge scores a contestant answer for a tour-variance instance.
//
//	judge <instance_file> <answer_file>
//
// On success it prints "score:<n>". Any rejection is reported on stderr
// with exit status 1; missing arguments exit with status 2.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/tourvar/judge"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <instance_file> <answer_file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	verbose := flag.Bool("v", false, "log edge statistics on success")
	flag.Usage = usage
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "judge"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flag.NArg() < 2 {
		usage()
		os.Exit(exitUsage)
	}

	res, err := run(flag.Arg(0), flag.Arg(1))
	if err != nil {
		logger.Error("rejected", "kind", judge.KindOf(err), "err", err)
		os.Exit(exitFailure)
	}

	logger.Debug("judged", "mean", res.Mean, "variance", res.Variance, "edges", len(res.Edges))
	fmt.Println(res)
}

func run(instancePath, answerPath string) (judge.Result, error) {
	inFile, err := os.Open(instancePath)
	if err != nil {
		return judge.Result{}, &judge.Error{Kind: judge.KindUsage, Msg: "cannot open instance file", Err: err}
	}
	defer inFile.Close()

	ansFile, err := os.Open(answerPath)
	if err != nil {
		return judge.Result{}, &judge.Error{Kind: judge.KindUsage, Msg: "cannot open answer file", Err: err}
	}
	defer ansFile.Close()

	return judge.Run(inFile, ansFile)
}
