package searcher

import "testing"

func TestBufferCapacity(t *testing.T) {
	tests := []struct {
		itopk, width, degree int
		capacity             int
		ok                   bool
	}{
		{2, 1, 2, 64, true},     // tiny config rounds up to the smallest tier
		{32, 1, 32, 64, true},   // exactly 64
		{64, 1, 32, 128, true},  // 96 -> 128
		{64, 2, 32, 128, true},  // 128 exact
		{64, 4, 32, 256, true},  // 192 -> 256
		{128, 4, 32, 256, true}, // 256 exact
		{128, 8, 32, 0, false},  // 384 exceeds the largest tier
		{256, 1, 32, 0, false},
	}

	for _, tt := range tests {
		capacity, ok := BufferCapacity(tt.itopk, tt.width, tt.degree)
		if ok != tt.ok {
			t.Errorf("BufferCapacity(%d,%d,%d): ok=%v, want %v", tt.itopk, tt.width, tt.degree, ok, tt.ok)
			continue
		}

		if ok && capacity != tt.capacity {
			t.Errorf("BufferCapacity(%d,%d,%d)=%d, want %d", tt.itopk, tt.width, tt.degree, capacity, tt.capacity)
		}
	}
}

func TestSortTopK_CollapsesScratch(t *testing.T) {
	s := Get()
	defer Put(s)

	s.buf = s.buf[:64]
	s.itopk = 4
	s.resetBuffer()

	// Scratch entries closer than current best must be pulled into the
	// best-known region; everything beyond itopk is re-sentineled.
	s.buf[0] = Candidate{Distance: 9, ID: 9}
	s.buf[10] = Candidate{Distance: 1, ID: 1}
	s.buf[20] = Candidate{Distance: 5, ID: 5}
	s.buf[33] = Candidate{Distance: 3, ID: 3}

	s.sortTopK()

	wantIDs := []uint32{1, 3, 5, 9}
	for i, want := range wantIDs {
		if s.buf[i].ID != want {
			t.Errorf("buf[%d].ID = %d, want %d", i, s.buf[i].ID, want)
		}
	}

	for i := s.itopk; i < len(s.buf); i++ {
		if s.buf[i].ID != InvalidID {
			t.Errorf("buf[%d] not re-sentineled: %+v", i, s.buf[i])
		}
	}
}
