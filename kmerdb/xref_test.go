// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmerdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXrefCounts(t *testing.T) {
	db := twoGroupDB(t)
	x := db.Xref()

	assert.Equal(t, []string{"G1", "G2"}, x.Groups())
	assert.Equal(t, 4, x.Total("G1"))
	assert.Equal(t, 4, x.Total("G2"))
	assert.Equal(t, 1, x.Shared("G1", "G2"))
	assert.Equal(t, 1, x.Shared("G2", "G1"), "shared is symmetric")
	assert.Equal(t, 3, x.Only("G1", "G2"))
	assert.Equal(t, 3, x.Only("G2", "G1"))
	assert.Equal(t, 4, x.Shared("G1", "G1"), "self comparison is the total")
}

func TestXrefRatios(t *testing.T) {
	db := twoGroupDB(t)
	x := db.Xref()

	// One of G2's four k-mers is present in G1.
	assert.InDelta(t, 25.0, x.Completeness("G1", "G2"), 1e-9)
	// Three of G1's four k-mers are absent from G2.
	assert.InDelta(t, 75.0, x.Contamination("G1", "G2"), 1e-9)
}

func TestXrefEmptyGroupSentinel(t *testing.T) {
	db, err := New(3, false, 0)
	require.NoError(t, err)
	db.AddSequence("G1", "ACGT", "")
	db.AddSequence("empty", "AC", "") // too short to yield k-mers
	x := db.Xref()

	assert.Equal(t, 0, x.Total("empty"))
	assert.Equal(t, 0.0, x.Completeness("G1", "empty"))
	assert.Equal(t, 0.0, x.Contamination("empty", "G1"))
}
