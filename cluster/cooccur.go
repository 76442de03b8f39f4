// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import "sort"

// A Pair is a canonically ordered pair of identifiers.
type Pair struct {
	A, B string
}

// PairOf returns the canonical Pair for two identifiers.
func PairOf(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// CoOccurrence counts how often identifier pairs appear together in a
// cluster across a set of cluster member lists.
type CoOccurrence struct {
	counts map[Pair]int
}

// NewCoOccurrence returns an empty counter.
func NewCoOccurrence() *CoOccurrence {
	return &CoOccurrence{counts: make(map[Pair]int)}
}

// AddCluster counts every unordered pair of distinct members once.
// Duplicate identifiers in members are collapsed first so a cluster
// containing an identifier twice does not inflate its pairs.
func (c *CoOccurrence) AddCluster(members []string) {
	uniq := members[:0:0]
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if !seen[m] {
			seen[m] = true
			uniq = append(uniq, m)
		}
	}
	for i, a := range uniq {
		for _, b := range uniq[i+1:] {
			c.counts[PairOf(a, b)]++
		}
	}
}

// Count returns the co-occurrence count for a pair.
func (c *CoOccurrence) Count(a, b string) int {
	return c.counts[PairOf(a, b)]
}

// Pairs returns all pairs with count >= min, ordered by descending
// count and then by pair identifiers.
func (c *CoOccurrence) Pairs(min int) []PairCount {
	var out []PairCount
	for p, n := range c.counts {
		if n >= min {
			out = append(out, PairCount{Pair: p, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// A PairCount is a pair with its co-occurrence count.
type PairCount struct {
	Pair
	Count int
}
