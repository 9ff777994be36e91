package store

import "time"

// Run is the header row of a tester sweep.
type Run struct {
	ID        string
	Command   string
	SeedFrom  uint64
	SeedTo    uint64
	StartedAt time.Time
	Elapsed   time.Duration
	Cases     int
	Accepted  int
	Total     int64
}

// Case is the outcome for one seed. ErrKind is empty for accepted cases.
type Case struct {
	RunID    string
	Seed     uint64
	Score    int64
	Variance float64
	ErrKind  string
	ErrMsg   string
	Elapsed  time.Duration
}
