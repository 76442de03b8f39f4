// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-discriminating-kmers reduces a k-mer database to its
// discriminating k-mers and exports them grouped by owner.
//
// A discriminating k-mer occurs in exactly one group, so a query
// sequence containing it can be attributed to that group with no
// ambiguity from shared sequence. Shared k-mers are dropped outright
// rather than down-weighted; the recall cost is the point of the
// representation. Output rows are (kmer, group_id, group_name), sorted
// by group then k-mer. With -out the pruned database is also saved.
package main

import (
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/p3tools/kmerdb/internal/tabio"
	"github.com/p3tools/kmerdb/kmerdb"
)

var (
	dbPath string
	output string
)

var rootCmd = &cobra.Command{
	Use:   "p3x-discriminating-kmers",
	Short: "Export the discriminating k-mers of a database grouped by owner",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "", "k-mer database file (required)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "save the pruned database to this file")
	cobra.CheckErr(rootCmd.MarkFlagRequired("db"))
}

func run(cmd *cobra.Command, args []string) error {
	db, err := kmerdb.Load(dbPath)
	if err != nil {
		return err
	}
	before := db.KCount()
	db.ComputeDiscriminators()
	log.Printf("%d of %d k-mers are discriminators", db.KCount(), before)

	byGroup := make(map[string][]string)
	db.EachEntry(func(kmer string, owners []string) {
		byGroup[owners[0]] = append(byGroup[owners[0]], kmer)
	})

	w := tabio.NewWriter(os.Stdout)
	err = w.Write("kmer", "group_id", "group_name")
	if err != nil {
		return err
	}
	for _, group := range db.Groups() {
		kmers := byGroup[group]
		sort.Strings(kmers)
		for _, kmer := range kmers {
			err = w.Write(kmer, group, db.Name(group))
			if err != nil {
				return err
			}
		}
	}
	err = w.Flush()
	if err != nil {
		return err
	}

	if output != "" {
		return db.Save(output)
	}
	return nil
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
