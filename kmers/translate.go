// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmers

import (
	"fmt"
	"strings"
)

// standardCode is NCBI translation table 1.
var standardCode = map[string]byte{
	"TTT": 'F', "TTC": 'F',
	"TTA": 'L', "TTG": 'L', "CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I',
	"ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S', "AGT": 'S', "AGC": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y',
	"TAA": '*', "TAG": '*', "TGA": '*',
	"CAT": 'H', "CAC": 'H',
	"CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N',
	"AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D',
	"GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C',
	"TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// codeOverrides holds the codon reassignments that distinguish the
// supported NCBI translation tables from table 1. Table 11 (bacterial)
// differs from 1 only in start codon usage, which does not affect
// whole-sequence translation.
var codeOverrides = map[int]map[string]byte{
	1:  {},
	4:  {"TGA": 'W'}, // mold/protozoan/mycoplasma
	11: {},
}

// Translate translates a nucleotide sequence to protein in frame 1 using
// the given NCBI genetic code. Codons containing unrecognized letters
// translate to 'X'; stops are rendered as '*'. A trailing partial codon
// is dropped.
func Translate(dna string, geneticCode int) (string, error) {
	over, ok := codeOverrides[geneticCode]
	if !ok {
		return "", fmt.Errorf("kmers: unsupported genetic code %d", geneticCode)
	}
	dna = strings.ToUpper(dna)
	prot := make([]byte, 0, len(dna)/3)
	for i := 0; i+3 <= len(dna); i += 3 {
		codon := dna[i : i+3]
		aa, ok := over[codon]
		if !ok {
			aa, ok = standardCode[codon]
		}
		if !ok {
			aa = 'X'
		}
		prot = append(prot, aa)
	}
	return string(prot), nil
}
