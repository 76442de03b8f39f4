// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kmers provides fixed-length k-mer extraction from protein and
// nucleotide sequence strings.
package kmers

import (
	"fmt"
	"strings"
)

// A Tokenizer extracts the k-mers of a sequence by sliding a window of
// length K across it one position at a time. When Mirror is set the
// reverse complement of each k-mer is emitted as well, so that DNA
// sequences match regardless of which strand was indexed.
type Tokenizer struct {
	K      int
	Mirror bool
}

// New returns a Tokenizer for k-mers of length k. A non-positive k is a
// configuration error.
func New(k int, mirror bool) (Tokenizer, error) {
	if k <= 0 {
		return Tokenizer{}, fmt.Errorf("kmers: invalid k-mer length %d", k)
	}
	return Tokenizer{K: k, Mirror: mirror}, nil
}

// Each calls fn for every k-mer of seq in left-to-right order. In mirror
// mode the reverse complement of each k-mer is passed to fn immediately
// after its forward form. A sequence shorter than K yields no calls.
// Sequences are uppercased before extraction; letters outside the
// expected alphabet are kept verbatim in the k-mer.
func (t Tokenizer) Each(seq string, fn func(kmer string)) {
	if len(seq) < t.K {
		return
	}
	seq = strings.ToUpper(seq)
	for i := 0; i+t.K <= len(seq); i++ {
		w := seq[i : i+t.K]
		fn(w)
		if t.Mirror {
			fn(ReverseComplement(w))
		}
	}
}

// List returns the k-mers of seq in the order Each would produce them.
func (t Tokenizer) List(seq string) []string {
	var all []string
	t.Each(seq, func(kmer string) {
		all = append(all, kmer)
	})
	return all
}

// ReverseComplement returns the reverse complement of a nucleotide
// sequence. Letters without a defined complement are carried through
// unchanged, so ambiguity codes survive the round trip in place.
func ReverseComplement(nts string) string {
	ret := make([]byte, len(nts))
	for i := 0; i < len(nts); i++ {
		nt := nts[i]
		switch nt {
		case 'A':
			nt = 'T'
		case 'T':
			nt = 'A'
		case 'C':
			nt = 'G'
		case 'G':
			nt = 'C'
		case 'a':
			nt = 't'
		case 't':
			nt = 'a'
		case 'c':
			nt = 'g'
		case 'g':
			nt = 'c'
		}
		ret[len(nts)-i-1] = nt
	}
	return string(ret)
}
