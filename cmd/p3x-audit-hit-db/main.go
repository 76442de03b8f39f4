// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-audit-hit-db dumps the hit store left behind by a run of
// p3x-genome-kmer-hits with the -work flag. Keys are decoded and the
// accumulated counts emitted as a JSON stream on stdout in store
// order, for inspecting intermediate results without re-scanning the
// genomes.
package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"modernc.org/kv"

	"github.com/p3tools/kmerdb/internal/store"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "p3x-audit-hit-db",
	Short: "Dump a retained genome-kmer-hits store as JSON",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "", "hit store file to audit (required)")
	cobra.CheckErr(rootCmd.MarkFlagRequired("db"))
}

// record is the decoded form of one store entry.
type record struct {
	GenomeID string `json:"genome_id"`
	SeqID    string `json:"sequence_id"`
	GroupID  string `json:"group_id"`
	Hits     int64  `json:"hits"`
}

func run(cmd *cobra.Command, args []string) error {
	db, err := kv.Open(dbPath, &kv.Options{Compare: store.ByGenomeSequence})
	if err != nil {
		return err
	}
	defer db.Close()

	it, err := db.SeekFirst()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	for {
		k, v, err := it.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		key := store.UnmarshalHitKey(k)
		err = enc.Encode(record{
			GenomeID: key.GenomeID,
			SeqID:    key.SeqID,
			GroupID:  key.GroupID,
			Hits:     store.UnmarshalCount(v),
		})
		if err != nil {
			return err
		}
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
