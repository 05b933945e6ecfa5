package sample

import (
	"container/heap"
	"sort"
)

// Pool is a deduplicating collection of samples with order-statistic
// queries. It pairs a binary min-heap under Compare (most favorable sample
// at the root) with a side table from assignment key to the pooled sample,
// so Add is O(log n) and merging never duplicates an assignment.
//
// A Pool exclusively owns its samples: a merged-in sample is discarded
// after its occurrences are absorbed. It grows only through Add and never
// shrinks. Not safe for concurrent use.
type Pool struct {
	heap  sampleHeap
	index map[string]*Sample
	total int
}

// NewPool returns a pool seeded with the given samples.
func NewPool(samples ...*Sample) *Pool {
	p := &Pool{index: make(map[string]*Sample)}
	for _, s := range samples {
		p.Add(s)
	}
	return p
}

// Add inserts s, or — when an equal-assignment sample is already pooled —
// adds its occurrences to the existing one and discards s. Occurrence
// count is not part of the heap order, so a merge needs no re-heapification.
func (p *Pool) Add(s *Sample) {
	if present, ok := p.index[s.Key()]; ok {
		present.occurrences += s.occurrences
		p.total += s.occurrences
		return
	}
	heap.Push(&p.heap, s)
	p.index[s.Key()] = s
	p.total += s.occurrences
}

// Size returns the sum of occurrence counts across all pooled samples.
func (p *Pool) Size() int {
	return p.total
}

// Distinct returns the number of distinct assignments in the pool.
func (p *Pool) Distinct() int {
	return len(p.heap)
}

// Contains reports whether an equal-assignment sample is pooled, and
// returns it if so.
func (p *Pool) Contains(s *Sample) (*Sample, bool) {
	present, ok := p.index[s.Key()]
	return present, ok
}

// Best returns the n most favorable samples in ascending Compare order
// (lowest energy first, ties broken by assignment). Fewer are returned
// when the pool holds fewer distinct samples.
func (p *Pool) Best(n int) []*Sample {
	sorted := p.All()
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// All returns every distinct pooled sample in ascending Compare order.
func (p *Pool) All() []*Sample {
	out := make([]*Sample, len(p.heap))
	copy(out, p.heap)
	sort.Slice(out, func(a, b int) bool {
		return Compare(out[a], out[b]) < 0
	})
	return out
}

// sampleHeap is a min-heap of samples under Compare.
type sampleHeap []*Sample

func (h sampleHeap) Len() int           { return len(h) }
func (h sampleHeap) Less(i, j int) bool { return Compare(h[i], h[j]) < 0 }
func (h sampleHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *sampleHeap) Push(x any) {
	*h = append(*h, x.(*Sample))
}

func (h *sampleHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return s
}
