// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoOccurrenceCounts(t *testing.T) {
	co := NewCoOccurrence()
	co.AddCluster([]string{"r1", "r2", "r3"})
	co.AddCluster([]string{"r1", "r2"})

	assert.Equal(t, 2, co.Count("r1", "r2"))
	assert.Equal(t, 2, co.Count("r2", "r1"), "counts are symmetric")
	assert.Equal(t, 1, co.Count("r1", "r3"))
	assert.Equal(t, 0, co.Count("r1", "r9"))
}

func TestCoOccurrenceDuplicateMembers(t *testing.T) {
	co := NewCoOccurrence()
	co.AddCluster([]string{"r1", "r2", "r1"})

	assert.Equal(t, 1, co.Count("r1", "r2"))
	assert.Equal(t, 0, co.Count("r1", "r1"))
}

func TestPairsOrderingAndFloor(t *testing.T) {
	co := NewCoOccurrence()
	co.AddCluster([]string{"a", "b"})
	co.AddCluster([]string{"a", "b"})
	co.AddCluster([]string{"a", "c"})

	pairs := co.Pairs(1)
	require.Len(t, pairs, 2)
	assert.Equal(t, PairCount{Pair: Pair{A: "a", B: "b"}, Count: 2}, pairs[0])
	assert.Equal(t, PairCount{Pair: Pair{A: "a", B: "c"}, Count: 1}, pairs[1])

	assert.Len(t, co.Pairs(2), 1)
	assert.Empty(t, co.Pairs(3))
}
