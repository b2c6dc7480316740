// Package bloom provides a seen-URL filter for attachment deduplication.
// The target platform repeats a shared resources block on every lesson's
// detail panel, so the same file link can surface hundreds of times across
// a large course; the filter keeps dedup memory constant at the cost of a
// configurable false-positive rate.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by URL.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL was probably seen before.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
