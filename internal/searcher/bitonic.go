package searcher

// bitonicSort sorts buf ascending by (distance, id) using a bitonic sorting
// network. len(buf) must be a power of two (guaranteed by the buffer tiers).
//
// The network runs a fixed, data-independent sequence of compare-exchange
// steps, the serial rendition of the 32-lane cooperative sort the algorithm
// was designed for. Visited tags travel with their entries.
func bitonicSort(buf []Candidate) {
	n := len(buf)

	for k := 2; k <= n; k <<= 1 {
		for j := k >> 1; j > 0; j >>= 1 {
			for i := 0; i < n; i++ {
				l := i ^ j
				if l <= i {
					continue
				}

				ascending := i&k == 0

				if less(buf[l], buf[i]) == ascending {
					buf[i], buf[l] = buf[l], buf[i]
				}
			}
		}
	}
}
