package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Timer collects wall clock statistics for named stages, such as the update
// and draw phases of a frame or the rounds of a benchmark scenario.
type Timer struct {
	stats map[string]*timing
	order []string
}

type timing struct {
	name  string
	last  float64
	total float64
	count int64
	min   float64
	max   float64
}

func (s *timing) record(ms float64) {
	s.last = ms
	s.total += ms
	s.count++
	if ms < s.min {
		s.min = ms
	}
	if ms > s.max {
		s.max = ms
	}
}

func (s *timing) String() string {
	average := s.total / float64(s.count)
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms (min: %.2fms, max: %.2fms, runs: %d)", s.name, s.last, average, s.min, s.max, s.count)
}

func NewTimer() *Timer {
	return &Timer{stats: make(map[string]*timing)}
}

// Start begins timing one run of the named stage. The returned func stops the
// clock, folds the run into the stage's statistics and returns the elapsed
// milliseconds.
func (t *Timer) Start(name string) func() float64 {
	stats, ok := t.stats[name]
	if !ok {
		stats = &timing{name: name, min: math.MaxFloat64, max: -math.MaxFloat64}
		t.stats[name] = stats
		t.order = append(t.order, name)
	}
	started := time.Now()
	return func() float64 {
		ms := float64(time.Since(started).Microseconds()) / 1000.0
		stats.record(ms)
		return ms
	}
}

// String lists the statistics of every stage in order of first use.
func (t *Timer) String() string {
	var sb strings.Builder
	for _, name := range t.order {
		sb.WriteString(t.stats[name].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
