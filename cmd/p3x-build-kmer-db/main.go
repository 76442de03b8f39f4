// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-build-kmer-db builds a k-mer database from sequence input and
// writes it to a file for use by the query tools.
//
// Input is either a tab-delimited table with group ID, sequence and
// optional group name columns, or FASTA with the record ID as the group
// ID. A group may span several input sequences, for example the contigs
// of one genome. With -max the database is finalized by dropping k-mers
// found in more than that many groups; with -discriminators it is
// reduced to k-mers unique to a single group. The two finalization
// strategies are mutually exclusive.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/p3tools/kmerdb/internal/tabio"
	"github.com/p3tools/kmerdb/kmerdb"
)

var (
	kmerSize       int
	dna            bool
	maxFound       int
	discriminators bool
	fastaIn        bool
	noHead         bool
	groupCol       string
	seqCol         string
	nameCol        string
	input          string
	output         string
)

var rootCmd = &cobra.Command{
	Use:   "p3x-build-kmer-db",
	Short: "Build a k-mer database from tab-delimited or FASTA sequence input",
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVarP(&kmerSize, "kmer", "k", 8, "k-mer length")
	rootCmd.Flags().BoolVar(&dna, "dna", false, "DNA mode: unify each k-mer with its reverse complement")
	rootCmd.Flags().IntVar(&maxFound, "max", 0, "drop k-mers found in more than this many groups (0 keeps all)")
	rootCmd.Flags().BoolVar(&discriminators, "discriminators", false, "keep only k-mers unique to a single group")
	rootCmd.Flags().BoolVar(&fastaIn, "fasta", false, "input is FASTA rather than tab-delimited")
	rootCmd.Flags().BoolVar(&noHead, "nohead", false, "tab-delimited input has no header row")
	rootCmd.Flags().StringVar(&groupCol, "col", "1", "group ID column (1-based index or header name)")
	rootCmd.Flags().StringVar(&seqCol, "seq", "", "sequence column (default last)")
	rootCmd.Flags().StringVar(&nameCol, "name", "", "group name column (default none)")
	rootCmd.Flags().StringVarP(&input, "input", "i", "", "input file (default stdin)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "database file to write (required)")
	cobra.CheckErr(rootCmd.MarkFlagRequired("output"))
}

func run(cmd *cobra.Command, args []string) error {
	if maxFound > 0 && discriminators {
		return fmt.Errorf("-max and -discriminators are mutually exclusive")
	}

	db, err := kmerdb.New(kmerSize, dna, maxFound)
	if err != nil {
		return err
	}

	in := os.Stdin
	if input != "" {
		in, err = os.Open(input)
		if err != nil {
			return err
		}
		defer in.Close()
	}

	if fastaIn {
		err = tabio.EachFasta(in, func(rec tabio.SeqRecord) error {
			db.AddSequence(rec.ID, rec.Seq, rec.Desc)
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		r := tabio.NewReader(in, !noHead)
		gc, err := r.FindColumn(groupCol)
		if err != nil {
			return err
		}
		sc, err := r.FindColumn(seqCol)
		if err != nil {
			return err
		}
		nc := -2
		if nameCol != "" {
			nc, err = r.FindColumn(nameCol)
			if err != nil {
				return err
			}
		}
		err = r.Each(func(row []string) error {
			group, err := tabio.Field(row, gc)
			if err != nil {
				return fmt.Errorf("line %d: %w", r.Line(), err)
			}
			seq, err := tabio.Field(row, sc)
			if err != nil {
				return fmt.Errorf("line %d: %w", r.Line(), err)
			}
			var name string
			if nc != -2 {
				name, err = tabio.Field(row, nc)
				if err != nil {
					return fmt.Errorf("line %d: %w", r.Line(), err)
				}
			}
			db.AddSequence(group, seq, name)
			return nil
		})
		if err != nil {
			return err
		}
	}

	switch {
	case discriminators:
		db.ComputeDiscriminators()
	case maxFound > 0:
		db.Finalize()
	}

	log.Printf("storing %d k-mers for %d groups", db.KCount(), len(db.Groups()))
	return db.Save(output)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
