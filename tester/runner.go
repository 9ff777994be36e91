package tester

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/tourvar/instance"
	"github.com/katalvlaran/tourvar/judge"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Case is the outcome of one seed.
type Case struct {
	Seed     uint64
	Score    int64
	Variance float64
	Elapsed  time.Duration
	// Err is nil for accepted cases.
	Err error
}

// Accepted reports whether the solver output passed judging.
func (c Case) Accepted() bool { return c.Err == nil }

// Kind names the failure class: a judge.Kind name, "timeout", "solver",
// or "" for accepted cases.
func (c Case) Kind() string {
	switch {
	case c.Err == nil:
		return ""
	case errors.Is(c.Err, ErrTimeout):
		return "timeout"
	case errors.Is(c.Err, ErrSolverFailed):
		return "solver"
	default:
		return judge.KindOf(c.Err).String()
	}
}

// Runner sweeps a solver over a seed range.
type Runner struct {
	cfg    Config
	logger *log.Logger
}

// NewRunner validates cfg and returns a Runner logging to logger.
func NewRunner(cfg Config, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Run judges every seed in the configured range and returns the report,
// cases ordered by seed. It fails only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	seeds := lo.RangeFrom(r.cfg.Seeds.From, r.cfg.Seeds.Len())
	cases := make([]Case, len(seeds))
	started := time.Now()

	r.logger.Info("starting sweep",
		"command", strings.Join(r.cfg.Command, " "),
		"seeds", fmt.Sprintf("%d..%d", r.cfg.Seeds.From, r.cfg.Seeds.To),
		"workers", r.cfg.Workers,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cases[i] = r.runCase(gctx, seed)
			r.logCase(cases[i])
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Command:   strings.Join(r.cfg.Command, " "),
		Seeds:     r.cfg.Seeds,
		StartedAt: started,
		Elapsed:   time.Since(started),
		Cases:     cases,
	}
	s := report.Summary()
	r.logger.Info("sweep finished",
		"cases", s.Count,
		"accepted", s.Accepted,
		"total", s.Total,
		"mean", fmt.Sprintf("%.1f", s.Mean),
		"elapsed", report.Elapsed.Round(time.Millisecond),
	)
	return report, nil
}

// runCase generates, solves and judges a single seed.
func (r *Runner) runCase(ctx context.Context, seed uint64) Case {
	in := instance.Generate(seed)
	c := Case{Seed: seed}
	start := time.Now()

	out, err := r.solve(ctx, seed, in)
	c.Elapsed = time.Since(start)
	if err != nil {
		c.Err = err
		return c
	}

	perm, err := judge.ReadPermutation(bytes.NewReader(out), in.N())
	if err != nil {
		c.Err = err
		return c
	}
	res, err := judge.Evaluate(in, perm)
	if err != nil {
		c.Err = err
		return c
	}
	c.Score = res.Score
	c.Variance = res.Variance
	return c
}

// solve runs the solver with the instance on stdin and returns its stdout.
// Solver stderr is forwarded to the debug log line by line.
// waitDelay bounds how long a cancelled solver's pipes may stay open after
// the kill.
const waitDelay = 500 * time.Millisecond

func (r *Runner) solve(ctx context.Context, seed uint64, in *instance.Instance) ([]byte, error) {
	cctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(cctx, r.cfg.Command[0], r.cfg.Command[1:]...)
	cmd.Env = append(os.Environ(), r.cfg.Env...)
	cmd.Stdin = strings.NewReader(in.String())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	killGroupOnCancel(cmd)

	err := cmd.Run()
	r.forwardStderr(seed, &stderr)

	if errors.Is(cctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, fmt.Errorf("%w after %s", ErrTimeout, r.cfg.Timeout)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolverFailed, err)
	}
	return stdout.Bytes(), nil
}

func (r *Runner) forwardStderr(seed uint64, stderr *bytes.Buffer) {
	if stderr.Len() == 0 {
		return
	}
	sl := r.logger.With("seed", seed)
	sc := bufio.NewScanner(stderr)
	for sc.Scan() {
		sl.Debug(sc.Text(), "stream", "stderr")
	}
}

func (r *Runner) logCase(c Case) {
	if c.Accepted() {
		r.logger.Debug("case judged", "seed", c.Seed, "score", c.Score, "elapsed", c.Elapsed.Round(time.Millisecond))
		return
	}
	r.logger.Warn("case rejected", "seed", c.Seed, "kind", c.Kind(), "err", c.Err)
}
