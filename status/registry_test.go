package status

import (
	"strings"
	"sync"
	"testing"
)

func TestTable_GetReturnsSamePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Floats.Get(KeyWind)
	b := r.Floats.Get(KeyWind)
	if a != b {
		t.Fatal("Get returned distinct pointers for the same key")
	}
	if r.Floats.Get(KeySpread) == a {
		t.Fatal("distinct keys share a metric")
	}
}

func TestTable_ConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(KeyHits).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(KeyHits).Load(); got != 800 {
		t.Errorf("hits = %d, want 800", got)
	}
}

func TestFloat_SetGet(t *testing.T) {
	var f Float
	if f.Get() != 0 {
		t.Error("zero value should read 0")
	}
	f.Set(-0.75)
	if got := f.Get(); got != -0.75 {
		t.Errorf("Get() = %v, want -0.75", got)
	}
}

func TestLabel_Truncates(t *testing.T) {
	var l Label
	if l.Load() != "" {
		t.Errorf("zero value should load empty string")
	}
	l.Store(strings.Repeat("a", LabelMaxLen+8))
	if got := l.Load(); len(got) != LabelMaxLen {
		t.Errorf("len = %d, want %d", len(got), LabelMaxLen)
	}
}

func TestRegistry_SnapshotSortedByKey(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(42)
	r.Ints.Get(KeyEnemies).Store(3)
	r.Floats.Get(KeySpread).Set(0.25)
	r.Bools.Get(KeyPaused).Store(true)
	r.Strings.Get(KeyTrackerSession).Store("abc")

	lines := r.Snapshot()
	want := []Line{
		{KeySpread, "0.25"},
		{KeyEnemies, "3"},
		{KeyPaused, "true"},
		{KeyTicks, "42"},
		{KeyTrackerSession, "abc"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %v, want %v", i, lines[i], want[i])
		}
	}
}
