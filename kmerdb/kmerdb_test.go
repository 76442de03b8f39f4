// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmerdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoGroupDB builds the reference index: k=3, no mirroring, G1 owns
// "ACGTAC" and G2 owns "ACGAAA". G1's k-mers are {ACG, CGT, GTA, TAC},
// G2's are {ACG, CGA, GAA, AAA}; only ACG is shared.
func twoGroupDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(3, false, 0)
	require.NoError(t, err)
	db.AddSequence("G1", "ACGTAC", "first genome")
	db.AddSequence("G2", "ACGAAA", "second genome")
	return db
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(0, false, 0)
	require.Error(t, err)
	_, err = New(8, false, -1)
	require.Error(t, err)
}

func TestAddSequence(t *testing.T) {
	db := twoGroupDB(t)

	assert.Equal(t, 7, db.KCount())
	assert.Equal(t, []string{"G1", "G2"}, db.Groups())
	assert.Equal(t, "first genome", db.Name("G1"))
	assert.Equal(t, []string{"G1", "G2"}, db.GroupsOf("ACG"))
	assert.Equal(t, []string{"G1"}, db.GroupsOf("TAC"))
	assert.Nil(t, db.GroupsOf("TTT"))
}

func TestAddSequenceAccumulatesGroups(t *testing.T) {
	db, err := New(3, false, 0)
	require.NoError(t, err)
	db.AddSequence("G1", "ACGT", "")
	db.AddSequence("G1", "TTTT", "late name")

	st, ok := db.Stats("G1")
	require.True(t, ok)
	assert.Equal(t, 2, st.Seqs)
	assert.Equal(t, "late name", db.Name("G1"))
	assert.Equal(t, []string{"G1"}, db.GroupsOf("TTT"))
	// Re-adding the same k-mer for the same group is idempotent.
	assert.Equal(t, 3, st.Stored)
}

func TestComputeDiscriminators(t *testing.T) {
	db := twoGroupDB(t)
	db.ComputeDiscriminators()

	assert.Nil(t, db.GroupsOf("ACG"), "shared k-mer must be dropped")
	assert.Equal(t, 6, db.KCount())
	db.EachEntry(func(kmer string, owners []string) {
		assert.Len(t, owners, 1, "k-mer %s", kmer)
	})
	for _, kmer := range []string{"CGT", "GTA", "TAC"} {
		assert.Equal(t, []string{"G1"}, db.GroupsOf(kmer))
	}
	for _, kmer := range []string{"CGA", "GAA", "AAA"} {
		assert.Equal(t, []string{"G2"}, db.GroupsOf(kmer))
	}

	// Idempotent.
	db.ComputeDiscriminators()
	assert.Equal(t, 6, db.KCount())
}

func TestFinalize(t *testing.T) {
	db, err := New(3, false, 2)
	require.NoError(t, err)
	db.AddSequence("G1", "ACGT", "")
	db.AddSequence("G2", "ACGA", "")
	db.AddSequence("G3", "ACGC", "")
	require.Len(t, db.GroupsOf("ACG"), 3)

	db.Finalize()
	assert.Nil(t, db.GroupsOf("ACG"), "common k-mer must be dropped")
	db.EachEntry(func(kmer string, owners []string) {
		assert.LessOrEqual(t, len(owners), 2, "k-mer %s", kmer)
	})

	// Idempotent.
	before := db.KCount()
	db.Finalize()
	assert.Equal(t, before, db.KCount())
}

func TestFinalizeUnlimitedIsNoOp(t *testing.T) {
	db := twoGroupDB(t)
	before := db.KCount()
	db.Finalize()
	assert.Equal(t, before, db.KCount())
}

func TestCountHits(t *testing.T) {
	db := twoGroupDB(t)

	counts := make(map[string]int)
	err := db.CountHits("ACGAAA", counts, 0)
	require.NoError(t, err)
	// ACG hits both groups; CGA, GAA, AAA hit G2 only.
	assert.Equal(t, map[string]int{"G1": 1, "G2": 4}, counts)
}

func TestCountHitsDegenerate(t *testing.T) {
	db := twoGroupDB(t)

	counts := make(map[string]int)
	require.NoError(t, db.CountHits("", counts, 0))
	require.NoError(t, db.CountHits("TTTTTT", counts, 0))
	assert.Empty(t, counts)
}

func TestCountHitsTranslated(t *testing.T) {
	db, err := New(3, false, 0)
	require.NoError(t, err)
	db.AddSequence("fam1", "MKRI", "")

	counts := make(map[string]int)
	err = db.CountHits("ATGAAACGCATT", counts, 11)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"fam1": 2}, counts)

	counts = make(map[string]int)
	err = db.CountHits("ATG", counts, 99)
	assert.Error(t, err)
}

func TestBestGroup(t *testing.T) {
	db := twoGroupDB(t)

	best, ok, err := db.BestGroup("ACGAAA", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "G2", best.GroupID)
	assert.Equal(t, 4, best.Count)
	assert.Equal(t, "second genome", best.Name)
	assert.Greater(t, best.Score, 0.0)
}

func TestBestGroupNoMatch(t *testing.T) {
	db := twoGroupDB(t)

	_, ok, err := db.BestGroup("TTTTTT", 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Equal hit counts resolve to the lexicographically smallest group ID.
func TestBestGroupTieBreak(t *testing.T) {
	db, err := New(3, false, 0)
	require.NoError(t, err)
	db.AddSequence("G2", "AAAT", "")
	db.AddSequence("G1", "AAAC", "")

	best, ok, err := db.BestGroup("AAAG", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "G1", best.GroupID)
	assert.Equal(t, 1, best.Count)
}

func TestHitsOrdering(t *testing.T) {
	db := twoGroupDB(t)

	hits, err := db.Hits("ACGAAA", 0)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "G2", hits[0].GroupID)
	assert.Equal(t, "G1", hits[1].GroupID)
}

func TestMirroredIndexMatchesOppositeStrand(t *testing.T) {
	db, err := New(4, true, 0)
	require.NoError(t, err)
	db.AddSequence("G1", "ACGTTGCAGG", "")

	counts := make(map[string]int)
	err = db.CountHits("CCTGCAACGT", counts, 0) // reverse complement
	require.NoError(t, err)
	assert.Greater(t, counts["G1"], 0)
}
