package utils

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// Span accumulates the durations recorded for one named scope
type Span struct {
	Name  string
	Count int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Mean returns the average duration of the scope
func (s Span) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Timer records named timing scopes. It is not safe for concurrent use.
type Timer struct {
	spans map[string]*Span
	now   func() time.Time
}

func NewTimer() *Timer {
	return &Timer{spans: map[string]*Span{}, now: time.Now}
}

// Time opens the named scope and returns the function that closes it:
//
//	defer timer.Time("Universe::tick")()
func (t *Timer) Time(name string) func() {
	start := t.now()
	return func() {
		t.record(name, t.now().Sub(start))
	}
}

func (t *Timer) record(name string, d time.Duration) {
	s, ok := t.spans[name]
	if !ok {
		s = &Span{Name: name, Min: d, Max: d}
		t.spans[name] = s
	}
	s.Count++
	s.Total += d
	s.Min = min(s.Min, d)
	s.Max = max(s.Max, d)
}

// Spans returns a copy of every recorded scope sorted by name
func (t *Timer) Spans() []Span {
	spans := make([]Span, 0, len(t.spans))
	for _, s := range t.spans {
		spans = append(spans, *s)
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Name < spans[j].Name })
	return spans
}

// Report writes one line per scope
func (t *Timer) Report(w io.Writer) error {
	for _, s := range t.Spans() {
		_, err := fmt.Fprintf(w, "  %s: %d calls, mean %v, min %v, max %v, total %v\n",
			s.Name, s.Count, s.Mean(), s.Min, s.Max, s.Total)
		if err != nil {
			return err
		}
	}
	return nil
}
