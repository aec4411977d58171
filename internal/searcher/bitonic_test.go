package searcher

import (
	"math/rand"
	"sort"
	"testing"
)

func TestBitonicSort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec

	for _, n := range []int{64, 128, 256} {
		buf := make([]Candidate, n)
		for i := range buf {
			buf[i] = Candidate{Distance: rng.Float32(), ID: uint32(rng.Intn(1000))}
		}

		want := make([]Candidate, n)
		copy(want, buf)
		sort.SliceStable(want, func(i, j int) bool { return less(want[i], want[j]) })

		bitonicSort(buf)

		for i := range buf {
			if buf[i].Distance != want[i].Distance {
				t.Fatalf("n=%d position %d: got dist %f, want %f", n, i, buf[i].Distance, want[i].Distance)
			}
		}
	}
}

func TestBitonicSort_SentinelsLast(t *testing.T) {
	buf := make([]Candidate, 64)
	for i := range buf {
		buf[i] = sentinel
	}

	buf[17] = Candidate{Distance: 3, ID: 3}
	buf[42] = Candidate{Distance: 1, ID: 1}
	buf[63] = Candidate{Distance: 2, ID: 2}

	bitonicSort(buf)

	if buf[0].ID != 1 || buf[1].ID != 2 || buf[2].ID != 3 {
		t.Fatalf("unexpected head after sort: %+v", buf[:3])
	}

	for i := 3; i < len(buf); i++ {
		if buf[i].ID != InvalidID {
			t.Fatalf("position %d: expected sentinel, got %+v", i, buf[i])
		}
	}
}

func TestBitonicSort_TieBreakByID(t *testing.T) {
	buf := make([]Candidate, 64)
	for i := range buf {
		buf[i] = sentinel
	}

	// Equal distances must order by id ascending.
	buf[0] = Candidate{Distance: 5, ID: 9}
	buf[1] = Candidate{Distance: 5, ID: 2}
	buf[2] = Candidate{Distance: 5, ID: 7}

	bitonicSort(buf)

	if buf[0].ID != 2 || buf[1].ID != 7 || buf[2].ID != 9 {
		t.Fatalf("tie-break violated: %+v", buf[:3])
	}
}

func TestBitonicSort_CarriesVisited(t *testing.T) {
	buf := make([]Candidate, 64)
	for i := range buf {
		buf[i] = sentinel
	}

	buf[30] = Candidate{Distance: 1, ID: 10, Visited: true}
	buf[31] = Candidate{Distance: 2, ID: 11}

	bitonicSort(buf)

	if !buf[0].Visited {
		t.Fatal("visited tag lost during sort")
	}
	if buf[1].Visited {
		t.Fatal("visited tag leaked to another entry")
	}
}
