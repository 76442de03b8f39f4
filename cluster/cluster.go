// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cluster computes maximal connected components over a stream
// of pairwise relationships, such as co-occurring protein families. The
// builder is an online union without path compression that keeps full
// membership lists, which the output format requires; group counts are
// small relative to pair counts in the intended workloads so the linear
// merge cost is acceptable.
package cluster

import "sort"

// A Cluster is one connected component. ID is assigned 1-based after
// the final size sort; Members preserves insertion order.
type Cluster struct {
	ID      int
	Members []string
}

// Size returns the number of members.
func (c Cluster) Size() int { return len(c.Members) }

// A Builder accumulates pairs into connected components.
type Builder struct {
	groupOf map[string]int
	members [][]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{groupOf: make(map[string]int)}
}

// Add records that a and b are related. Depending on the current
// membership of the two objects this starts a new component, extends an
// existing one, or merges two. A pair relating an object to itself
// starts a singleton component.
func (b *Builder) Add(x, y string) {
	gx, okx := b.groupOf[x]
	gy, oky := b.groupOf[y]
	switch {
	case !okx && !oky:
		g := len(b.members)
		if x == y {
			b.members = append(b.members, []string{x})
			b.groupOf[x] = g
			return
		}
		b.members = append(b.members, []string{x, y})
		b.groupOf[x] = g
		b.groupOf[y] = g
	case okx && !oky:
		b.members[gx] = append(b.members[gx], y)
		b.groupOf[y] = gx
	case !okx && oky:
		b.members[gy] = append(b.members[gy], x)
		b.groupOf[x] = gy
	case gx == gy:
		// Already related.
	default:
		// Merge y's component into x's. The emptied slot is never
		// reused; it is dropped at output time.
		for _, m := range b.members[gy] {
			b.groupOf[m] = gx
		}
		b.members[gx] = append(b.members[gx], b.members[gy]...)
		b.members[gy] = nil
	}
}

// Clusters returns the non-empty components sorted by descending size,
// ties broken by first member, with 1-based IDs assigned in that order.
func (b *Builder) Clusters() []Cluster {
	var out []Cluster
	for _, m := range b.members {
		if len(m) == 0 {
			continue
		}
		out = append(out, Cluster{Members: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Members) != len(out[j].Members) {
			return len(out[i].Members) > len(out[j].Members)
		}
		return out[i].Members[0] < out[j].Members[0]
	})
	for i := range out {
		out[i].ID = i + 1
	}
	return out
}
