package searcher

// laneWidth is the granularity the buffer capacity is rounded up to,
// inherited from the 32-wide squads the algorithm was designed around.
const laneWidth = 32

// bufferTiers are the supported fixed buffer capacities. Each tier is a power
// of two so the sorting network can run over the full buffer.
var bufferTiers = [...]int{64, 128, 256}

// MaxBufferCapacity is the largest supported candidate buffer.
const MaxBufferCapacity = 256

// BufferCapacity computes the buffer tier for the given parameters: the
// required capacity itopk + searchWidth*degree, rounded up to a multiple of
// laneWidth, mapped to the smallest tier that holds it. ok is false when the
// requirement exceeds MaxBufferCapacity; that is a static configuration
// error, checked before any traversal begins.
func BufferCapacity(itopk, searchWidth, degree int) (capacity int, ok bool) {
	required := itopk + searchWidth*degree
	required = (required + laneWidth - 1) &^ (laneWidth - 1)

	for _, tier := range bufferTiers {
		if required <= tier {
			return tier, true
		}
	}

	return required, false
}

// resetBuffer fills the whole buffer with the sentinel entry.
func (s *Searcher) resetBuffer() {
	for i := range s.buf {
		s.buf[i] = sentinel
	}
}

// sortTopK restores ascending (distance, id) order over the buffer and
// collapses the scratch region into the best-known region: after the call,
// buf[0:itopk) holds the itopk smallest entries seen so far and everything
// beyond is re-sentineled for the next expansion.
func (s *Searcher) sortTopK() {
	bitonicSort(s.buf)

	for i := s.itopk; i < len(s.buf); i++ {
		s.buf[i] = sentinel
	}
}
