// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-identify-clusters locates physical occurrences of functional
// clusters in genomes.
//
// A cluster-definition table (such as the output of
// p3x-generate-clusters, first column cluster key, last column a
// delimited member list) assigns each member identifier, typically a
// role or protein family, to a cluster. The feature table on standard
// input has columns for feature ID, genome, contig, start, end and
// member identifier, with 1-based inclusive coordinates. Features whose
// identifier belongs to a defined cluster are grouped per contig into
// runs of the same cluster key with adjacent gaps of at most -gap
// bases; runs of at least -min-items features are reported.
//
// The feature list reported for each run is found with an interval
// query over all features of the contig, so interleaved features that
// belong to no cluster still show up in the output. With -fasta the
// genome's DNA for each run is appended as a final column, extracted
// through a faidx lookup.
package main

import (
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/biogo/hts/fai"
	"github.com/biogo/store/interval"
	"github.com/spf13/cobra"

	"github.com/p3tools/kmerdb/internal/tabio"
	"github.com/p3tools/kmerdb/proximity"
)

var (
	defFile  string
	delim    string
	maxGap   int
	minItems int
	noHead   bool
	fastaIn  string
	featCol  string
	genCol   string
	seqCol   string
	startCol string
	endCol   string
	keyCol   string
)

var rootCmd = &cobra.Command{
	Use:   "p3x-identify-clusters",
	Short: "Locate proximity clusters of related features in genomes",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&defFile, "definitions", "", "cluster-definition table (required)")
	rootCmd.Flags().StringVar(&delim, "delim", "::", "member and feature list delimiter")
	rootCmd.Flags().IntVar(&maxGap, "gap", 2000, "maximum base gap between adjacent cluster members")
	rootCmd.Flags().IntVar(&minItems, "min-items", 3, "minimum features per reported cluster")
	rootCmd.Flags().BoolVar(&noHead, "nohead", false, "feature input has no header row")
	rootCmd.Flags().StringVar(&fastaIn, "fasta", "", "genome FASTA file for region sequence output")
	rootCmd.Flags().StringVar(&featCol, "feat-col", "1", "feature ID column")
	rootCmd.Flags().StringVar(&genCol, "genome-col", "2", "genome ID column")
	rootCmd.Flags().StringVar(&seqCol, "seq-col", "3", "contig ID column")
	rootCmd.Flags().StringVar(&startCol, "start-col", "4", "start coordinate column")
	rootCmd.Flags().StringVar(&endCol, "end-col", "5", "end coordinate column")
	rootCmd.Flags().StringVar(&keyCol, "key-col", "6", "member identifier column")
	cobra.CheckErr(rootCmd.MarkFlagRequired("definitions"))
}

// A feature is one row of the feature table.
type feature struct {
	id         string
	start, end int
	role       string
}

// contigKey addresses one sequence of one genome.
type contigKey struct {
	genome, contig string
}

func run(cmd *cobra.Command, args []string) error {
	df, err := os.Open(defFile)
	if err != nil {
		return err
	}
	defs, err := proximity.ReadDefinitions(df, delim, true)
	df.Close()
	if err != nil {
		return err
	}
	log.Printf("%d member identifiers defined", defs.Len())

	r := tabio.NewReader(os.Stdin, !noHead)
	cols := make([]int, 6)
	for i, spec := range []string{featCol, genCol, seqCol, startCol, endCol, keyCol} {
		cols[i], err = r.FindColumn(spec)
		if err != nil {
			return err
		}
	}

	features := make(map[contigKey][]feature)
	err = r.Each(func(row []string) error {
		fields := make([]string, 6)
		for i, c := range cols {
			fields[i], err = tabio.Field(row, c)
			if err != nil {
				return err
			}
		}
		start, err := strconv.Atoi(fields[3])
		if err != nil {
			return err
		}
		end, err := strconv.Atoi(fields[4])
		if err != nil {
			return err
		}
		ck := contigKey{genome: fields[1], contig: fields[2]}
		features[ck] = append(features[ck], feature{id: fields[0], start: start, end: end, role: fields[5]})
		return nil
	})
	if err != nil {
		return err
	}

	var sfa *fai.File
	if fastaIn != "" {
		f, err := os.Open(fastaIn)
		if err != nil {
			return err
		}
		defer f.Close()
		idx, err := fai.NewIndex(f)
		if err != nil {
			return err
		}
		_, err = f.Seek(0, io.SeekStart)
		if err != nil {
			return err
		}
		sfa = fai.NewFile(f, idx)
	}

	contigs := make([]contigKey, 0, len(features))
	for ck := range features {
		contigs = append(contigs, ck)
	}
	sort.Slice(contigs, func(i, j int) bool {
		if contigs[i].genome != contigs[j].genome {
			return contigs[i].genome < contigs[j].genome
		}
		return contigs[i].contig < contigs[j].contig
	})

	w := tabio.NewWriter(os.Stdout)
	head := []string{"cluster_id", "genome_id", "sequence_id", "start", "end", "size", "features", "roles"}
	if sfa != nil {
		head = append(head, "sequence")
	}
	err = w.Write(head...)
	if err != nil {
		return err
	}

	id := 0
	for _, ck := range contigs {
		feats := features[ck]
		var tuples []proximity.Tuple
		roleOf := make(map[string]string, len(feats))
		for _, f := range feats {
			roleOf[f.id] = f.role
			key, ok := defs.KeyOf(f.role)
			if !ok {
				continue
			}
			tuples = append(tuples, proximity.Tuple{ID: f.id, Start: f.start, End: f.end, Key: key})
		}
		if len(tuples) == 0 {
			continue
		}
		tree := featureTree(feats)

		for _, c := range proximity.Find(tuples, maxGap, minItems) {
			id++
			occupants := spanFeatures(tree, c.Start, c.End)
			roles := make([]string, 0, len(c.Members))
			for _, m := range c.Members {
				roles = append(roles, roleOf[m.ID])
			}
			row := []string{
				strconv.Itoa(id), ck.genome, ck.contig,
				strconv.Itoa(c.Start), strconv.Itoa(c.End), strconv.Itoa(c.Size()),
				strings.Join(occupants, delim), strings.Join(roles, delim),
			}
			if sfa != nil {
				seq, err := regionSeq(sfa, ck.contig, c.Start, c.End)
				if err != nil {
					return err
				}
				row = append(row, seq)
			}
			err = w.Write(row...)
			if err != nil {
				return err
			}
		}
	}
	log.Printf("%d clusters located", id)
	return w.Flush()
}

// featureTree indexes the features of one contig by their spans.
func featureTree(feats []feature) *interval.IntTree {
	var tree interval.IntTree
	for i, f := range feats {
		err := tree.Insert(featInterval{uid: uintptr(i), feature: f}, true)
		if err != nil {
			log.Fatal(err)
		}
	}
	tree.AdjustRanges()
	return &tree
}

// spanFeatures returns the IDs of all features overlapping the span,
// ordered by start position.
func spanFeatures(tree *interval.IntTree, start, end int) []string {
	var got []feature
	for _, iv := range tree.Get(featInterval{feature: feature{start: start, end: end}}) {
		got = append(got, iv.(featInterval).feature)
	}
	sort.Slice(got, func(i, j int) bool {
		if got[i].start != got[j].start {
			return got[i].start < got[j].start
		}
		return got[i].id < got[j].id
	})
	ids := make([]string, len(got))
	for i, f := range got {
		ids[i] = f.id
	}
	return ids
}

// regionSeq extracts the 1-based inclusive region from the indexed
// FASTA.
func regionSeq(sfa *fai.File, contig string, start, end int) (string, error) {
	seq, err := sfa.SeqRange(contig, start-1, end)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(seq)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type featInterval struct {
	uid uintptr
	feature
}

// Overlap reports whether the intervals share any bases.
func (i featInterval) Overlap(b interval.IntRange) bool {
	return b.Start <= i.end && i.start <= b.End
}
func (i featInterval) ID() uintptr { return i.uid }
func (i featInterval) Range() interval.IntRange {
	return interval.IntRange{Start: i.start, End: i.end}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
