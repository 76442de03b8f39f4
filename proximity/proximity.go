// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proximity groups genomic features on a single sequence into
// spatial clusters. Features carry an external grouping key, for
// example a functional-cluster ID looked up from a definition table; a
// cluster is a run of same-key features whose adjacent gaps do not
// exceed a bound.
package proximity

import "sort"

// A Tuple is one feature occurrence on a sequence.
type Tuple struct {
	ID    string
	Start int
	End   int
	Key   string
}

// A Cluster is an emitted run of same-key tuples. Its span runs from
// the first member's start to the last member's end.
type Cluster struct {
	Key     string
	Start   int
	End     int
	Members []Tuple
}

// Size returns the number of member tuples.
func (c Cluster) Size() int { return len(c.Members) }

// Find groups tuples from one sequence into clusters. Tuples are sorted
// by start position; the first unclaimed tuple seeds a candidate
// cluster which then absorbs each following tuple that starts within
// maxGap of the last absorbed member's end and carries the seed's key.
// Tuples inside the gap window with a different key are set aside and
// returned to the pool for the next seed, so a tuple may be examined by
// several candidate scans before it is placed. This requeueing is load
// bearing: collapsing the scan into a single pass changes which key
// wins when clusters of different keys interleave spatially. Candidates
// with fewer than minItems members are discarded.
func Find(tuples []Tuple, maxGap, minItems int) []Cluster {
	pool := append([]Tuple(nil), tuples...)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Start < pool[j].Start
	})

	var out []Cluster
	for len(pool) > 0 {
		seed := pool[0]
		cand := Cluster{Key: seed.Key, Start: seed.Start, End: seed.End, Members: []Tuple{seed}}
		last := seed
		var skipped, rest []Tuple
		for i, t := range pool[1:] {
			if t.Start-last.End > maxGap {
				rest = pool[1+i:]
				break
			}
			if t.Key != cand.Key {
				skipped = append(skipped, t)
				continue
			}
			cand.Members = append(cand.Members, t)
			cand.End = t.End
			last = t
		}
		if len(cand.Members) >= minItems {
			out = append(out, cand)
		}
		// Skipped tuples precede rest in start order, so simple
		// concatenation keeps the pool sorted.
		pool = append(skipped, rest...)
	}
	return out
}
