package searcher

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestVisitedSet_Basic(t *testing.T) {
	v := NewVisitedSet(8)

	ids := []uint32{0, 1, 63, 64, 100, 1000}

	for _, id := range ids {
		if v.Contains(id) {
			t.Errorf("ID %d should not be present yet", id)
		}
	}

	for _, id := range ids {
		if !v.InsertIfAbsent(id) {
			t.Errorf("ID %d should insert as new", id)
		}
	}

	for _, id := range ids {
		if !v.Contains(id) {
			t.Errorf("ID %d should be present", id)
		}
		if v.InsertIfAbsent(id) {
			t.Errorf("ID %d double insert should report present", id)
		}
	}

	if v.Contains(2) {
		t.Error("ID 2 should not be present")
	}
}

func TestVisitedSet_Reset(t *testing.T) {
	v := NewVisitedSet(6)

	v.InsertIfAbsent(5)
	v.InsertIfAbsent(17)

	v.Reset()

	if v.Contains(5) || v.Contains(17) {
		t.Error("Reset should clear all entries")
	}

	if !v.InsertIfAbsent(5) {
		t.Error("insert after Reset should succeed")
	}
}

func TestVisitedSet_Full(t *testing.T) {
	v := NewVisitedSet(3) // 8 slots

	inserted := 0
	for id := uint32(0); id < 8; id++ {
		if v.InsertIfAbsent(id) {
			inserted++
		}
	}

	if inserted != 8 {
		t.Fatalf("expected 8 inserts into 8 slots, got %d", inserted)
	}

	// Table full: further ids are reported as already seen, not as failures.
	if v.InsertIfAbsent(100) {
		t.Error("insert into full table should report present")
	}

	for id := uint32(0); id < 8; id++ {
		if !v.Contains(id) {
			t.Errorf("ID %d lost after table filled", id)
		}
	}
}

func TestVisitedSet_ConcurrentIdempotent(t *testing.T) {
	v := NewVisitedSet(12)

	const goroutines = 8
	const ids = 1024

	var wins atomic.Int64
	var wg sync.WaitGroup

	// All goroutines race to insert the same id range; each id must be won
	// exactly once.
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for id := uint32(0); id < ids; id++ {
				if v.InsertIfAbsent(id) {
					wins.Add(1)
				}
			}
		}()
	}

	wg.Wait()

	if wins.Load() != ids {
		t.Fatalf("expected %d unique wins, got %d", ids, wins.Load())
	}
}
