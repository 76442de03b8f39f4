// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-genome-kmer-hits scores whole genomes against a k-mer database.
//
// Each positional argument is a genome FASTA file; every contig is
// scanned against the database and hit counts are accumulated per
// (genome, contig, group). Counts are kept in a sorted on-disk kv store
// so that arbitrarily many contig/group combinations can be handled and
// output is emitted grouped by genome and contig, with groups ordered
// by descending hits within a contig. The genome ID is the FASTA file
// base name with its extension removed, unless -genome is given for a
// single input file.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"modernc.org/kv"

	"github.com/p3tools/kmerdb/internal/store"
	"github.com/p3tools/kmerdb/internal/tabio"
	"github.com/p3tools/kmerdb/kmerdb"
)

var (
	dbPath      string
	genomeID    string
	geneticCode int
	minHits     int
	work        bool
)

var rootCmd = &cobra.Command{
	Use:   "p3x-genome-kmer-hits [flags] genome.fa ...",
	Short: "Tally per-contig k-mer group hits for whole genomes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "", "k-mer database file (required)")
	rootCmd.Flags().StringVar(&genomeID, "genome", "", "genome ID override (single input file only)")
	rootCmd.Flags().IntVar(&geneticCode, "gc", 0, "translate contigs with this genetic code before matching")
	rootCmd.Flags().IntVar(&minHits, "min", 1, "minimum hit count to report")
	rootCmd.Flags().BoolVar(&work, "work", false, "keep the temporary hit store")
	cobra.CheckErr(rootCmd.MarkFlagRequired("db"))
}

func run(cmd *cobra.Command, args []string) error {
	if genomeID != "" && len(args) != 1 {
		return fmt.Errorf("-genome requires exactly one input file")
	}

	db, err := kmerdb.Load(dbPath)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "kmer-hits-*")
	if err != nil {
		return err
	}
	if work {
		log.Printf("keeping work in %s", tmpDir)
	} else {
		defer os.RemoveAll(tmpDir)
	}

	hits, err := kv.CreateTemp(tmpDir, "hits-", ".db", &kv.Options{Compare: store.ByGenomeSequence})
	if err != nil {
		return err
	}
	defer hits.Close()

	for _, path := range args {
		genome := genomeID
		if genome == "" {
			genome = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		log.Printf("scanning %s", path)
		err = tabio.EachFasta(f, func(rec tabio.SeqRecord) error {
			counts := make(map[string]int)
			err := db.CountHits(rec.Seq, counts, geneticCode)
			if err != nil {
				return err
			}
			for group, n := range counts {
				k := store.MarshalHitKey(store.HitKey{GenomeID: genome, SeqID: rec.ID, GroupID: group})
				_, err = hits.Inc(k, int64(n))
				if err != nil {
					return err
				}
			}
			return nil
		})
		f.Close()
		if err != nil {
			return err
		}
	}

	w := tabio.NewWriter(os.Stdout)
	err = w.Write("genome_id", "contig_id", "group_id", "group_name", "hits")
	if err != nil {
		return err
	}
	err = emit(hits, db, w)
	if err != nil {
		return err
	}
	return w.Flush()
}

// contigHit is one accumulated (group, count) for the contig being
// drained from the store.
type contigHit struct {
	group string
	count int64
}

// emit walks the sorted store and writes one block of rows per contig,
// ordered by descending hits.
func emit(hits *kv.DB, db *kmerdb.DB, w *tabio.Writer) error {
	it, err := hits.SeekFirst()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	var (
		cur     store.HitKey
		pending []contigHit
	)
	flush := func() error {
		sort.Slice(pending, func(i, j int) bool {
			if pending[i].count != pending[j].count {
				return pending[i].count > pending[j].count
			}
			return pending[i].group < pending[j].group
		})
		for _, h := range pending {
			if h.count < int64(minHits) {
				break
			}
			err := w.Write(cur.GenomeID, cur.SeqID, h.group, db.Name(h.group), strconv.FormatInt(h.count, 10))
			if err != nil {
				return err
			}
		}
		pending = pending[:0]
		return nil
	}

	for {
		k, v, err := it.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		key := store.UnmarshalHitKey(k)
		if key.GenomeID != cur.GenomeID || key.SeqID != cur.SeqID {
			err = flush()
			if err != nil {
				return err
			}
			cur = key
		}
		pending = append(pending, contigHit{group: key.GroupID, count: store.UnmarshalCount(v)})
	}
	return flush()
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
