// Package dictionary provides the sorted string table gbwt metadata uses
// to name samples, contigs and path tags (grounded on
// gbwt::Dictionary, original_source/include/gbwt/support.h).
package dictionary

import "sort"

// Dictionary stores a set of strings in insertion order while keeping a
// sorted index for binary-searched lookup. It is the string-interning
// table behind GBWT path/sample/contig names; the index itself never
// interprets the strings it holds.
type Dictionary struct {
	keys   []string // insertion order, parallels caller-visible ids
	sorted []int    // indexes into keys, sorted by key value
}

// New builds a Dictionary from source, deduplicating repeated strings:
// each unique string keeps the id of its first occurrence.
func New(source []string) *Dictionary {
	d := &Dictionary{}
	seen := make(map[string]bool, len(source))
	for _, s := range source {
		if seen[s] {
			continue
		}
		seen[s] = true
		d.keys = append(d.keys, s)
	}
	d.sortKeys()
	return d
}

func (d *Dictionary) sortKeys() {
	d.sorted = make([]int, len(d.keys))
	for i := range d.sorted {
		d.sorted[i] = i
	}
	sort.Slice(d.sorted, func(a, b int) bool {
		return d.keys[d.sorted[a]] < d.keys[d.sorted[b]]
	})
}

// Size returns the number of distinct strings held.
func (d *Dictionary) Size() int { return len(d.keys) }

// Empty reports whether the dictionary holds no strings.
func (d *Dictionary) Empty() bool { return d.Size() == 0 }

// At returns key i, or "" if i is out of range.
func (d *Dictionary) At(i int) string {
	if i < 0 || i >= len(d.keys) {
		return ""
	}
	return d.keys[i]
}

// Find returns the id of s, or Size() if s is not present.
func (d *Dictionary) Find(s string) int {
	n := len(d.sorted)
	pos := sort.Search(n, func(i int) bool {
		return d.keys[d.sorted[i]] >= s
	})
	if pos < n && d.keys[d.sorted[pos]] == s {
		return d.sorted[pos]
	}
	return d.Size()
}

// Contains reports whether s is present.
func (d *Dictionary) Contains(s string) bool { return d.Find(s) < d.Size() }

// Merge returns the union of two dictionaries, deduplicating shared
// keys. First's ids come first, second's new keys are appended after.
func Merge(first, second *Dictionary) *Dictionary {
	merged := make([]string, 0, first.Size()+second.Size())
	merged = append(merged, first.keys...)
	for _, s := range second.keys {
		if !first.Contains(s) {
			merged = append(merged, s)
		}
	}
	return New(merged)
}

// HasDuplicates reports whether the Dictionary was built from a source
// slice containing repeats (the distinct key count is smaller than n).
func (d *Dictionary) HasDuplicates(n int) bool { return d.Size() < n }
