// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabio

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// A SeqRecord is one sequence read from a FASTA source.
type SeqRecord struct {
	ID   string
	Desc string
	Seq  string
}

// EachFasta reads FASTA records from src and calls fn for each. DNA
// redundant and protein sequences both pass through unaltered; the
// scanner only needs the raw letters.
func EachFasta(src io.Reader, fn func(SeqRecord) error) error {
	sc := seqio.NewScanner(fasta.NewReader(src, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		err := fn(SeqRecord{ID: s.ID, Desc: s.Desc, Seq: string(alphabet.LettersToBytes(s.Seq))})
		if err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("tabio: error during sequence read: %w", err)
	}
	return nil
}
