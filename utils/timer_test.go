package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// stepClock advances by step on every reading
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerScopes(t *testing.T) {
	timer := NewTimer()
	timer.now = stepClock(time.Millisecond)

	for range 3 {
		timer.Time("Universe::tick")()
	}
	func() {
		defer timer.Time("Universe::render")()
		timer.now() // one extra reading inside the scope
	}()

	spans := timer.Spans()
	if len(spans) != 2 {
		t.Fatalf("got %d spans", len(spans))
	}
	render, tick := spans[0], spans[1]
	if render.Name != "Universe::render" || render.Count != 1 || render.Total != 2*time.Millisecond {
		t.Fatalf("render span = %+v", render)
	}
	if tick.Count != 3 || tick.Total != 3*time.Millisecond || tick.Mean() != time.Millisecond {
		t.Fatalf("tick span = %+v", tick)
	}
	if tick.Min != time.Millisecond || tick.Max != time.Millisecond {
		t.Fatalf("tick min/max = %v/%v", tick.Min, tick.Max)
	}

	var buf bytes.Buffer
	if err := timer.Report(&buf); err != nil {
		t.Fatalf("Report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "Universe::tick: 3 calls") {
		t.Fatalf("report = %q", buf.String())
	}
}

func TestSpanMeanEmpty(t *testing.T) {
	if (Span{}).Mean() != 0 {
		t.Fatal("empty span has a non-zero mean")
	}
}
