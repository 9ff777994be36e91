package tester

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/tourvar/store"
	"github.com/samber/lo"
)

// Report collects the cases of one sweep.
type Report struct {
	Command   string
	Seeds     SeedRange
	StartedAt time.Time
	Elapsed   time.Duration
	Cases     []Case
}

// Summary aggregates a report. Rejected cases count as score 0.
type Summary struct {
	Count    int
	Accepted int
	Total    int64
	Mean     float64
	Min      int64
	Max      int64
}

// Summary computes aggregate scores over all cases.
func (r *Report) Summary() Summary {
	s := Summary{Count: len(r.Cases)}
	if s.Count == 0 {
		return s
	}

	s.Accepted = lo.CountBy(r.Cases, Case.Accepted)
	s.Total = lo.SumBy(r.Cases, func(c Case) int64 { return c.Score })
	s.Mean = float64(s.Total) / float64(s.Count)
	s.Min = lo.MinBy(r.Cases, func(a, b Case) bool { return a.Score < b.Score }).Score
	s.Max = lo.MaxBy(r.Cases, func(a, b Case) bool { return a.Score > b.Score }).Score
	return s
}

// WriteTo prints one line per case followed by the summary line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range r.Cases {
		var (
			n   int
			err error
		)
		if c.Accepted() {
			n, err = fmt.Fprintf(w, "seed=%d score:%d\n", c.Seed, c.Score)
		} else {
			n, err = fmt.Fprintf(w, "seed=%d score:0 error=%s: %v\n", c.Seed, c.Kind(), c.Err)
		}
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	s := r.Summary()
	n, err := fmt.Fprintf(w, "cases=%d accepted=%d total=%d mean=%.2f min=%d max=%d\n",
		s.Count, s.Accepted, s.Total, s.Mean, s.Min, s.Max)
	return total + int64(n), err
}

// Save persists the report and returns the stored run id.
func (r *Report) Save(ctx context.Context, st *store.SQLite) (string, error) {
	s := r.Summary()
	run := store.Run{
		Command:   r.Command,
		SeedFrom:  r.Seeds.From,
		SeedTo:    r.Seeds.To,
		StartedAt: r.StartedAt,
		Elapsed:   r.Elapsed,
		Cases:     s.Count,
		Accepted:  s.Accepted,
		Total:     s.Total,
	}
	cases := lo.Map(r.Cases, func(c Case, _ int) store.Case {
		sc := store.Case{
			Seed:     c.Seed,
			Score:    c.Score,
			Variance: c.Variance,
			ErrKind:  c.Kind(),
			Elapsed:  c.Elapsed,
		}
		if c.Err != nil {
			sc.ErrMsg = c.Err.Error()
		}
		return sc
	})
	return st.SaveRun(ctx, run, cases)
}
