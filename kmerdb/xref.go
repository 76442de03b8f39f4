// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmerdb

// An Xref is a pairwise cross-reference of the groups in an index. For
// each unordered pair of groups it records how many stored k-mers the
// two share; together with each group's stored total this yields the
// unique counts and the completeness and contamination estimates.
type Xref struct {
	totals map[string]int
	shared map[groupPair]int
	groups []string
}

// groupPair is a canonically ordered pair of group IDs.
type groupPair struct {
	a, b string
}

func pairOf(a, b string) groupPair {
	if b < a {
		a, b = b, a
	}
	return groupPair{a: a, b: b}
}

// Xref builds the cross-reference matrix with a single pass over the
// stored k-mer entries.
func (db *DB) Xref() *Xref {
	x := &Xref{
		totals: make(map[string]int),
		shared: make(map[groupPair]int),
		groups: db.Groups(),
	}
	db.EachEntry(func(kmer string, owners []string) {
		for i, a := range owners {
			x.totals[a]++
			for _, b := range owners[i+1:] {
				x.shared[pairOf(a, b)]++
			}
		}
	})
	return x
}

// Groups returns the group IDs covered by the matrix, sorted.
func (x *Xref) Groups() []string { return x.groups }

// Total returns the number of stored k-mers owned by a group.
func (x *Xref) Total(group string) int { return x.totals[group] }

// Shared returns the number of stored k-mers owned by both groups.
func (x *Xref) Shared(a, b string) int {
	if a == b {
		return x.totals[a]
	}
	return x.shared[pairOf(a, b)]
}

// Only returns the number of k-mers owned by a but not by b.
func (x *Xref) Only(a, b string) int {
	return x.totals[a] - x.Shared(a, b)
}

// Completeness estimates, as a percentage, how much of b's k-mer
// content is present in a. An empty b yields 0.
func (x *Xref) Completeness(a, b string) float64 {
	tb := x.totals[b]
	if tb == 0 {
		return 0
	}
	return float64(x.Shared(a, b)) * 100 / float64(tb)
}

// Contamination estimates, as a percentage, how much of a's k-mer
// content is absent from b. An empty a yields 0.
func (x *Xref) Contamination(a, b string) float64 {
	ta := x.totals[a]
	if ta == 0 {
		return 0
	}
	return float64(x.Only(a, b)) * 100 / float64(ta)
}
