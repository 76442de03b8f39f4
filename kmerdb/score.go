// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmerdb

import (
	"sort"

	"github.com/p3tools/kmerdb/kmers"
)

// A Hit is the result of scoring one query sequence against one group.
// Count is the number of k-mer occurrences in the query owned by the
// group. Score normalizes Count by the group's stored k-mer complement
// (hits per thousand stored k-mers) so that groups of different sizes
// can be ranked against each other.
type Hit struct {
	GroupID string
	Name    string
	Count   int
	Score   float64
}

// CountHits tokenizes a query sequence and accumulates per-group k-mer
// hit counts into counts. If geneticCode is non-zero the query is
// treated as DNA and translated with that code before matching, for
// querying nucleotide sequence against a protein index. The query is
// scanned on the forward strand only; a mirrored index already carries
// both strands of every indexed k-mer. The index is not modified.
func (db *DB) CountHits(seq string, counts map[string]int, geneticCode int) error {
	if geneticCode != 0 {
		var err error
		seq, err = kmers.Translate(seq, geneticCode)
		if err != nil {
			return err
		}
	}
	qt := kmers.Tokenizer{K: db.k}
	qt.Each(seq, func(kmer string) {
		for _, id := range db.entries[kmer] {
			counts[id]++
		}
	})
	return nil
}

// BestGroup scores a query sequence and returns the group with the most
// k-mer hits. Ties are broken deterministically in favor of the
// lexicographically smallest group ID. The second return value is false
// when no stored k-mer matches the query.
func (db *DB) BestGroup(seq string, geneticCode int) (Hit, bool, error) {
	counts := make(map[string]int)
	err := db.CountHits(seq, counts, geneticCode)
	if err != nil {
		return Hit{}, false, err
	}
	var (
		best  Hit
		found bool
	)
	for id, n := range counts {
		if !found || n > best.Count || (n == best.Count && id < best.GroupID) {
			best = Hit{GroupID: id, Count: n}
			found = true
		}
	}
	if !found {
		return Hit{}, false, nil
	}
	best.Name = db.Name(best.GroupID)
	best.Score = db.score(best.GroupID, best.Count)
	return best, true, nil
}

// Hits returns the per-group hits for a query in descending count
// order, ties broken by group ID.
func (db *DB) Hits(seq string, geneticCode int) ([]Hit, error) {
	counts := make(map[string]int)
	err := db.CountHits(seq, counts, geneticCode)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(counts))
	for id, n := range counts {
		hits = append(hits, Hit{
			GroupID: id,
			Name:    db.Name(id),
			Count:   n,
			Score:   db.score(id, n),
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Count != hits[j].Count {
			return hits[i].Count > hits[j].Count
		}
		return hits[i].GroupID < hits[j].GroupID
	})
	return hits, nil
}

func (db *DB) score(groupID string, count int) float64 {
	g, ok := db.groups[groupID]
	if !ok || g.Stored == 0 {
		return 0
	}
	return float64(count) * 1000 / float64(g.Stored)
}

