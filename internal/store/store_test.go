// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitKeyRoundTrip(t *testing.T) {
	k := HitKey{GenomeID: "83333.1", SeqID: "contig.7", GroupID: "fam.2001"}
	assert.Equal(t, k, UnmarshalHitKey(MarshalHitKey(k)))

	empty := HitKey{}
	assert.Equal(t, empty, UnmarshalHitKey(MarshalHitKey(empty)))
}

func TestByGenomeSequenceOrdering(t *testing.T) {
	ordered := []HitKey{
		{GenomeID: "100.1", SeqID: "c1", GroupID: "f1"},
		{GenomeID: "100.1", SeqID: "c1", GroupID: "f2"},
		{GenomeID: "100.1", SeqID: "c2", GroupID: "f1"},
		{GenomeID: "200.2", SeqID: "c1", GroupID: "f1"},
	}
	for i, a := range ordered {
		for j, b := range ordered {
			got := ByGenomeSequence(MarshalHitKey(a), MarshalHitKey(b))
			switch {
			case i < j:
				assert.Equal(t, -1, got, "%v < %v", a, b)
			case i > j:
				assert.Equal(t, 1, got, "%v > %v", a, b)
			default:
				assert.Equal(t, 0, got, "%v == %v", a, b)
			}
		}
	}
}

func TestCountRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 42, 1 << 40} {
		assert.Equal(t, n, UnmarshalCount(MarshalCount(n)))
	}
}
