// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-generate-clusters merges pairwise relationships into clusters.
//
// Input is a tab-delimited table with two identifier columns; each row
// relates two objects. Objects related directly or transitively end up
// in the same cluster. Output rows are (cluster_id, size, members) with
// members joined by the -delim string, clusters ordered by descending
// size and IDs assigned 1-based in that order.
package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/p3tools/kmerdb/cluster"
	"github.com/p3tools/kmerdb/internal/tabio"
)

var (
	col1   string
	col2   string
	delim  string
	noHead bool
	input  string
)

var rootCmd = &cobra.Command{
	Use:   "p3x-generate-clusters",
	Short: "Compute transitive-closure clusters from a pair table",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&col1, "col1", "1", "first object column (1-based index or header name)")
	rootCmd.Flags().StringVar(&col2, "col2", "2", "second object column (1-based index or header name)")
	rootCmd.Flags().StringVar(&delim, "delim", "::", "member list delimiter")
	rootCmd.Flags().BoolVar(&noHead, "nohead", false, "input has no header row")
	rootCmd.Flags().StringVarP(&input, "input", "i", "", "input file (default stdin)")
}

func run(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	var err error
	if input != "" {
		in, err = os.Open(input)
		if err != nil {
			return err
		}
		defer in.Close()
	}

	r := tabio.NewReader(in, !noHead)
	c1, err := r.FindColumn(col1)
	if err != nil {
		return err
	}
	c2, err := r.FindColumn(col2)
	if err != nil {
		return err
	}

	b := cluster.NewBuilder()
	err = r.Each(func(row []string) error {
		a, err := tabio.Field(row, c1)
		if err != nil {
			return err
		}
		z, err := tabio.Field(row, c2)
		if err != nil {
			return err
		}
		b.Add(a, z)
		return nil
	})
	if err != nil {
		return err
	}

	clusters := b.Clusters()
	log.Printf("%d clusters", len(clusters))
	w := tabio.NewWriter(os.Stdout)
	err = w.Write("cluster_id", "size", "members")
	if err != nil {
		return err
	}
	for _, c := range clusters {
		err = w.Write(strconv.Itoa(c.ID), strconv.Itoa(c.Size()), strings.Join(c.Members, delim))
		if err != nil {
			return err
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
