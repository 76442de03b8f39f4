// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadLength(t *testing.T) {
	_, err := New(0, false)
	require.Error(t, err)
	_, err = New(-3, true)
	require.Error(t, err)
}

func TestListSlidingWindow(t *testing.T) {
	tok, err := New(3, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"ACG", "CGT", "GTA", "TAC"}, tok.List("ACGTAC"))
}

func TestListShortSequenceIsEmpty(t *testing.T) {
	tok, err := New(8, false)
	require.NoError(t, err)

	assert.Empty(t, tok.List("ACGT"))
	assert.Empty(t, tok.List(""))
}

func TestListUppercases(t *testing.T) {
	tok, err := New(3, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"ACG", "CGT"}, tok.List("acgt"))
}

func TestMirrorEmitsReverseComplements(t *testing.T) {
	tok, err := New(3, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"ACG", "CGT", "CGT", "ACG"}, tok.List("ACGT"))
}

// The k-mer set of a mirrored scan must cover the k-mer set of the
// reverse complement of the sequence.
func TestMirrorSymmetry(t *testing.T) {
	const seq = "ACGTTGCAGGTAC"
	tok, err := New(4, true)
	require.NoError(t, err)

	got := make(map[string]bool)
	tok.Each(seq, func(kmer string) { got[kmer] = true })

	fwd := Tokenizer{K: 4}
	for _, kmer := range fwd.List(ReverseComplement(seq)) {
		assert.True(t, got[kmer], "missing %s from mirrored scan", kmer)
	}
}

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, "ACGT", ReverseComplement("ACGT"))
	assert.Equal(t, "TTTT", ReverseComplement("AAAA"))
	assert.Equal(t, "acgt", ReverseComplement("acgt"))
	// Letters without a complement are carried through in place.
	assert.Equal(t, "ANT", ReverseComplement("ANT"))
}

func TestTranslateStandard(t *testing.T) {
	got, err := Translate("ATGGCTTAA", 1)
	require.NoError(t, err)
	assert.Equal(t, "MA*", got)
}

func TestTranslateCode4(t *testing.T) {
	// TGA is a stop in table 1 but tryptophan in table 4.
	got, err := Translate("TGA", 1)
	require.NoError(t, err)
	assert.Equal(t, "*", got)

	got, err = Translate("TGA", 4)
	require.NoError(t, err)
	assert.Equal(t, "W", got)
}

func TestTranslateCode11MatchesStandard(t *testing.T) {
	const dna = "ATGAAACGCATTAGCACCACC"
	want, err := Translate(dna, 1)
	require.NoError(t, err)
	got, err := Translate(dna, 11)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTranslateEdgeCases(t *testing.T) {
	got, err := Translate("atggct", 11)
	require.NoError(t, err)
	assert.Equal(t, "MA", got, "lowercase input")

	got, err = Translate("ATGGC", 1)
	require.NoError(t, err)
	assert.Equal(t, "M", got, "trailing partial codon dropped")

	got, err = Translate("ATGNNN", 1)
	require.NoError(t, err)
	assert.Equal(t, "MX", got, "ambiguous codon")

	_, err = Translate("ATG", 99)
	require.Error(t, err)
}
