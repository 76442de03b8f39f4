// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-kmer-compare cross-references the groups of a k-mer database.
//
// For every pair of groups it reports the k-mers unique to each, the
// k-mers shared, and the derived completeness (how much of the second
// group's k-mer content is present in the first) and contamination (how
// much of the first's is absent from the second) percentages. The
// database can be given with -db or built on the fly from genome FASTA
// files named as positional arguments, one group per file.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/p3tools/kmerdb/internal/tabio"
	"github.com/p3tools/kmerdb/kmerdb"
)

var (
	dbPath   string
	kmerSize int
	dna      bool
)

var rootCmd = &cobra.Command{
	Use:   "p3x-kmer-compare [flags] [genome.fa ...]",
	Short: "Pairwise shared and unique k-mer counts for the groups of a database",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "", "k-mer database file")
	rootCmd.Flags().IntVarP(&kmerSize, "kmer", "k", 15, "k-mer length when building from FASTA")
	rootCmd.Flags().BoolVar(&dna, "dna", true, "DNA mode when building from FASTA")
}

func run(cmd *cobra.Command, args []string) error {
	var (
		db  *kmerdb.DB
		err error
	)
	switch {
	case dbPath != "":
		db, err = kmerdb.Load(dbPath)
		if err != nil {
			return err
		}
	case len(args) > 1:
		db, err = kmerdb.New(kmerSize, dna, 0)
		if err != nil {
			return err
		}
		for _, path := range args {
			group := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			err = tabio.EachFasta(f, func(rec tabio.SeqRecord) error {
				db.AddSequence(group, rec.Seq, "")
				return nil
			})
			f.Close()
			if err != nil {
				return err
			}
			log.Printf("added %s", group)
		}
	default:
		return fmt.Errorf("need -db or at least two genome files")
	}

	x := db.Xref()
	groups := x.Groups()
	w := tabio.NewWriter(os.Stdout)
	err = w.Write("group_a", "group_b", "only_a", "shared", "only_b", "completeness", "contamination")
	if err != nil {
		return err
	}
	for i, a := range groups {
		for _, b := range groups[i+1:] {
			err = w.Write(a, b,
				strconv.Itoa(x.Only(a, b)),
				strconv.Itoa(x.Shared(a, b)),
				strconv.Itoa(x.Only(b, a)),
				strconv.FormatFloat(x.Completeness(a, b), 'f', 2, 64),
				strconv.FormatFloat(x.Contamination(a, b), 'f', 2, 64))
			if err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
