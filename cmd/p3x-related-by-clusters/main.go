// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p3x-related-by-clusters counts how often identifier pairs co-occur
// in clusters.
//
// Each positional argument is a cluster table (such as the output of
// p3x-generate-clusters) whose last column, or the column named with
// -col, is a delimited member list. Every unordered pair of members
// sharing a cluster is counted once per cluster; pairs seen at least
// -min times are reported as (id_a, id_b, count) in descending count
// order. With -dot the co-occurrence relation is additionally written
// as a weighted graph in DOT format.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/p3tools/kmerdb/cluster"
	"github.com/p3tools/kmerdb/internal/tabio"
)

var (
	col      string
	delim    string
	minCount int
	noHead   bool
	dotFile  string
)

var rootCmd = &cobra.Command{
	Use:   "p3x-related-by-clusters [flags] clusters.tbl ...",
	Short: "Count identifier co-occurrence across cluster tables",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&col, "col", "", "member list column (default last)")
	rootCmd.Flags().StringVar(&delim, "delim", "::", "member list delimiter")
	rootCmd.Flags().IntVar(&minCount, "min", 1, "minimum co-occurrence count to report")
	rootCmd.Flags().BoolVar(&noHead, "nohead", false, "input has no header row")
	rootCmd.Flags().StringVar(&dotFile, "dot", "", "write the co-occurrence graph in DOT format to this file")
}

func run(cmd *cobra.Command, args []string) error {
	co := cluster.NewCoOccurrence()
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		r := tabio.NewReader(f, !noHead)
		mc, err := r.FindColumn(col)
		if err != nil {
			f.Close()
			return err
		}
		err = r.Each(func(row []string) error {
			members, err := tabio.Field(row, mc)
			if err != nil {
				return err
			}
			co.AddCluster(strings.Split(members, delim))
			return nil
		})
		f.Close()
		if err != nil {
			return err
		}
	}

	pairs := co.Pairs(minCount)
	w := tabio.NewWriter(os.Stdout)
	err := w.Write("id_a", "id_b", "count")
	if err != nil {
		return err
	}
	for _, p := range pairs {
		err = w.Write(p.A, p.B, strconv.Itoa(p.Count))
		if err != nil {
			return err
		}
	}
	err = w.Flush()
	if err != nil {
		return err
	}

	if dotFile != "" {
		return dotOut(dotFile, pairs)
	}
	return nil
}

// dotOut writes the co-occurrence relation as a weighted undirected
// graph, edge weights carrying the counts.
func dotOut(path string, pairs []cluster.PairCount) error {
	g := newNameGraph()
	for _, p := range pairs {
		g.SetWeightedEdge(edge{
			f: g.nodeFor(p.A),
			t: g.nodeFor(p.B),
			w: float64(p.Count),
		})
	}
	b, err := dot.Marshal(g, "cooccur", "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o664)
}

type nameGraph struct {
	*simple.WeightedUndirectedGraph
	idFor map[string]int64
}

func newNameGraph() nameGraph {
	return nameGraph{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0),
		idFor:                   make(map[string]int64),
	}
}

func (g nameGraph) nodeFor(s string) graph.Node {
	id, ok := g.idFor[s]
	if ok {
		return g.Node(id)
	}
	id = g.WeightedUndirectedGraph.NewNode().ID()
	g.idFor[s] = id
	n := node{id: id, name: s}
	g.AddNode(n)
	return n
}

type node struct {
	id   int64
	name string
}

func (n node) ID() int64     { return n.id }
func (n node) DOTID() string { return n.name }

type edge struct {
	f, t graph.Node
	w    float64
}

func (e edge) From() graph.Node         { return e.f }
func (e edge) To() graph.Node           { return e.t }
func (e edge) ReversedEdge() graph.Edge { return edge{f: e.t, t: e.f, w: e.w} }
func (e edge) Weight() float64          { return e.w }
func (e edge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: fmt.Sprint(e.w)}}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
