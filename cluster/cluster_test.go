// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitiveMerge(t *testing.T) {
	b := NewBuilder()
	b.Add("A", "B")
	b.Add("C", "D")
	b.Add("B", "C")

	got := b.Clusters()
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 4, got[0].Size())
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, got[0].Members)
}

func TestTransitivity(t *testing.T) {
	b := NewBuilder()
	b.Add("a", "b")
	b.Add("b", "c")

	got := b.Clusters()
	require.Len(t, got, 1)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got[0].Members)
}

func TestSelfPairIsSingleton(t *testing.T) {
	b := NewBuilder()
	b.Add("x", "x")

	got := b.Clusters()
	require.Len(t, got, 1)
	assert.Equal(t, []string{"x"}, got[0].Members)
}

func TestRepeatedPairIsNoOp(t *testing.T) {
	b := NewBuilder()
	b.Add("a", "b")
	b.Add("a", "b")
	b.Add("b", "a")

	got := b.Clusters()
	require.Len(t, got, 1)
	assert.Len(t, got[0].Members, 2)
}

func TestExtendExistingCluster(t *testing.T) {
	b := NewBuilder()
	b.Add("a", "b")
	b.Add("a", "c")
	b.Add("d", "b")

	got := b.Clusters()
	require.Len(t, got, 1)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, got[0].Members)
}

func TestIDsAssignedByDescendingSize(t *testing.T) {
	b := NewBuilder()
	b.Add("solo1", "solo2")
	b.Add("m1", "m2")
	b.Add("m2", "m3")

	got := b.Clusters()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[0].Size())
	assert.Equal(t, 2, got[1].ID)
	assert.Equal(t, 2, got[1].Size())
}

// Any permutation of a pair stream that expresses the same relation
// yields the same partition, cluster IDs aside.
func TestPartitionInvariantUnderReordering(t *testing.T) {
	streams := [][][2]string{
		{{"A", "B"}, {"C", "D"}, {"B", "C"}, {"E", "F"}},
		{{"B", "C"}, {"E", "F"}, {"A", "B"}, {"C", "D"}},
		{{"E", "F"}, {"C", "D"}, {"A", "B"}, {"B", "C"}},
	}
	var partitions [][][]string
	for _, stream := range streams {
		b := NewBuilder()
		for _, p := range stream {
			b.Add(p[0], p[1])
		}
		var part [][]string
		for _, c := range b.Clusters() {
			members := append([]string(nil), c.Members...)
			sort.Strings(members)
			part = append(part, members)
		}
		partitions = append(partitions, part)
	}
	assert.Equal(t, partitions[0], partitions[1])
	assert.Equal(t, partitions[0], partitions[2])
}

func TestEmptyBuilder(t *testing.T) {
	assert.Empty(t, NewBuilder().Clusters())
}
