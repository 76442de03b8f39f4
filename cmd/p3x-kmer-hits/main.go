// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-kmer-hits scores query sequences against a k-mer database.
//
// Input is a tab-delimited table with an ID column and a sequence
// column. Each query is scanned for k-mers stored in the database and
// hit counts are tallied per owning group. By default one output row is
// emitted per (query, group) with a hit count and a normalized score;
// with -best only the highest scoring group per query is reported. DNA
// queries can be matched against a protein database by giving a genetic
// code with -gc.
package main

import (
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/p3tools/kmerdb/internal/tabio"
	"github.com/p3tools/kmerdb/kmerdb"
)

var (
	dbPath      string
	best        bool
	geneticCode int
	minHits     int
	noHead      bool
	idCol       string
	seqCol      string
	input       string
)

var rootCmd = &cobra.Command{
	Use:   "p3x-kmer-hits",
	Short: "Tally per-group k-mer hits for query sequences",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "", "k-mer database file (required)")
	rootCmd.Flags().BoolVar(&best, "best", false, "report only the best scoring group per query")
	rootCmd.Flags().IntVar(&geneticCode, "gc", 0, "translate DNA queries with this genetic code before matching")
	rootCmd.Flags().IntVar(&minHits, "min", 1, "minimum hit count to report")
	rootCmd.Flags().BoolVar(&noHead, "nohead", false, "input has no header row")
	rootCmd.Flags().StringVar(&idCol, "col", "1", "query ID column (1-based index or header name)")
	rootCmd.Flags().StringVar(&seqCol, "seq", "", "sequence column (default last)")
	rootCmd.Flags().StringVarP(&input, "input", "i", "", "input file (default stdin)")
	cobra.CheckErr(rootCmd.MarkFlagRequired("db"))
}

func run(cmd *cobra.Command, args []string) error {
	db, err := kmerdb.Load(dbPath)
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

	r := tabio.NewReader(in, !noHead)
	ic, err := r.FindColumn(idCol)
	if err != nil {
		return err
	}
	sc, err := r.FindColumn(seqCol)
	if err != nil {
		return err
	}

	w := tabio.NewWriter(os.Stdout)
	err = w.Write("id", "group_id", "group_name", "hits", "score")
	if err != nil {
		return err
	}
	err = r.Each(func(row []string) error {
		id, err := tabio.Field(row, ic)
		if err != nil {
			return err
		}
		seq, err := tabio.Field(row, sc)
		if err != nil {
			return err
		}
		hits, err := db.Hits(seq, geneticCode)
		if err != nil {
			return err
		}
		for _, h := range hits {
			if h.Count < minHits {
				break
			}
			err = w.Write(id, h.GroupID, h.Name,
				strconv.Itoa(h.Count), strconv.FormatFloat(h.Score, 'f', 2, 64))
			if err != nil {
				return err
			}
			if best {
				break
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return w.Flush()
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
