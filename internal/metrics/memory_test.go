package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

var sink []byte

func TestMemorySnapshot_Since(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()
	sink = make([]byte, 1<<20)
	after := mc.Snapshot()

	delta := after.Since(before)
	if delta.TotalAlloc < 1<<20 {
		t.Errorf("TotalAlloc delta = %d, want at least 1 MiB", delta.TotalAlloc)
	}
	if delta.Sys != after.Sys {
		t.Error("Sys should be carried from the later snapshot")
	}
}
