package profiling

import (
	"testing"
	"time"
)

func setTotals(t *testing.T, totals map[string]time.Duration) {
	t.Helper()
	mu.Lock()
	for k := range frameTotals {
		delete(frameTotals, k)
	}
	for k, v := range totals {
		frameTotals[k] = v
	}
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()

	stop := Track("test.op")
	time.Sleep(time.Millisecond)
	stop()

	first := Snapshot()["test.op"]
	if first <= 0 {
		t.Fatalf("tracked duration = %v, want > 0", first)
	}

	stop = Track("test.op")
	time.Sleep(time.Millisecond)
	stop()

	second := Snapshot()["test.op"]
	if second <= first {
		t.Fatalf("second snapshot = %v, want > first %v", second, first)
	}
}

func TestResetFrameClears(t *testing.T) {
	setTotals(t, map[string]time.Duration{"test.op": time.Millisecond})

	ResetFrame()

	if got := Snapshot(); len(got) != 0 {
		t.Fatalf("totals after reset = %v, want empty", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	setTotals(t, map[string]time.Duration{"test.op": time.Millisecond})

	snap := Snapshot()
	snap["test.op"] = time.Hour

	if got := Snapshot()["test.op"]; got != time.Millisecond {
		t.Fatalf("totals mutated through snapshot: got %v", got)
	}
}

func TestTopNOrdersByDuration(t *testing.T) {
	setTotals(t, map[string]time.Duration{
		"fast":   1 * time.Millisecond,
		"slow":   5 * time.Millisecond,
		"medium": 2500 * time.Microsecond,
	})

	if got, want := TopN(3), "slow:5ms, medium:2.5ms, fast:1ms"; got != want {
		t.Errorf("TopN(3) = %q, want %q", got, want)
	}
	if got, want := TopN(1), "slow:5ms"; got != want {
		t.Errorf("TopN(1) = %q, want %q", got, want)
	}
	if got, want := TopN(10), "slow:5ms, medium:2.5ms, fast:1ms"; got != want {
		t.Errorf("TopN(10) = %q, want %q", got, want)
	}
}

func TestTopNEmptyFrame(t *testing.T) {
	ResetFrame()

	if got := TopN(3); got != "" {
		t.Errorf("TopN on empty frame = %q, want empty", got)
	}
}
