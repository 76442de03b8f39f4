// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kmerdb implements an inverted k-mer index over groups of
// sequences. A group is a logical unit such as a genome, a protein
// family or a sample; each k-mer maps to the set of groups it was seen
// in. The index supports two finalization strategies: Finalize drops
// k-mers shared by too many groups, and ComputeDiscriminators keeps only
// k-mers unique to a single group so that a query can be assigned to a
// group with no ambiguity from shared sequence.
package kmerdb

import (
	"fmt"
	"sort"

	"github.com/p3tools/kmerdb/kmers"
)

// GroupStats holds the accumulated bookkeeping for one group.
type GroupStats struct {
	Name   string `json:"name"`
	Seqs   int    `json:"seqs"`
	Kmers  int    `json:"kmers"`
	Stored int    `json:"stored"`
}

// DB is an inverted k-mer index.
type DB struct {
	k        int
	mirror   bool
	maxFound int

	tok     kmers.Tokenizer
	entries map[string][]string
	groups  map[string]*GroupStats
}

// New returns an empty index for k-mers of length k. If mirror is set
// the index operates in DNA mode and each inserted k-mer is unified with
// its reverse complement. maxFound bounds how many distinct groups a
// k-mer may occur in before Finalize discards it as common; zero means
// unlimited.
func New(k int, mirror bool, maxFound int) (*DB, error) {
	tok, err := kmers.New(k, mirror)
	if err != nil {
		return nil, err
	}
	if maxFound < 0 {
		return nil, fmt.Errorf("kmerdb: invalid max-found %d", maxFound)
	}
	return &DB{
		k:        k,
		mirror:   mirror,
		maxFound: maxFound,
		tok:      tok,
		entries:  make(map[string][]string),
		groups:   make(map[string]*GroupStats),
	}, nil
}

// K returns the index's k-mer length.
func (db *DB) K() int { return db.k }

// Mirror reports whether the index unifies reverse complements.
func (db *DB) Mirror() bool { return db.mirror }

// MaxFound returns the common-kmer threshold applied by Finalize.
func (db *DB) MaxFound() int { return db.maxFound }

// AddSequence tokenizes seq and records groupID as an owner of each of
// its k-mers. The same group may be added repeatedly, for example once
// per contig of a genome; all calls accumulate into one logical group.
// A name seen later for the same group replaces an earlier empty one.
func (db *DB) AddSequence(groupID, seq, name string) {
	g, ok := db.groups[groupID]
	if !ok {
		g = &GroupStats{}
		db.groups[groupID] = g
	}
	if name != "" {
		g.Name = name
	}
	g.Seqs++
	db.tok.Each(seq, func(kmer string) {
		g.Kmers++
		owners := db.entries[kmer]
		for _, id := range owners {
			if id == groupID {
				return
			}
		}
		db.entries[kmer] = append(owners, groupID)
		g.Stored++
	})
}

// Finalize removes every k-mer owned by more than MaxFound groups. It
// is idempotent and a no-op when MaxFound is zero.
func (db *DB) Finalize() {
	if db.maxFound == 0 {
		return
	}
	for kmer, owners := range db.entries {
		if len(owners) > db.maxFound {
			db.remove(kmer, owners)
		}
	}
}

// ComputeDiscriminators removes every k-mer owned by more than one
// group, leaving only discriminators. The discarded entries are not
// recoverable; the operation is idempotent. MaxFound plays no part in
// this finalization path.
func (db *DB) ComputeDiscriminators() {
	for kmer, owners := range db.entries {
		if len(owners) != 1 {
			db.remove(kmer, owners)
		}
	}
}

func (db *DB) remove(kmer string, owners []string) {
	for _, id := range owners {
		if g, ok := db.groups[id]; ok {
			g.Stored--
		}
	}
	delete(db.entries, kmer)
}

// GroupsOf returns the IDs of the groups owning an exact k-mer, sorted,
// or nil if the k-mer is not stored.
func (db *DB) GroupsOf(kmer string) []string {
	owners := db.entries[kmer]
	if owners == nil {
		return nil
	}
	ids := append([]string(nil), owners...)
	sort.Strings(ids)
	return ids
}

// Groups returns all group IDs in the index, sorted.
func (db *DB) Groups() []string {
	ids := make([]string, 0, len(db.groups))
	for id := range db.groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Name returns the display name recorded for a group, or the empty
// string if the group is unknown.
func (db *DB) Name(groupID string) string {
	g, ok := db.groups[groupID]
	if !ok {
		return ""
	}
	return g.Name
}

// Stats returns a copy of the bookkeeping for a group and whether the
// group exists.
func (db *DB) Stats(groupID string) (GroupStats, bool) {
	g, ok := db.groups[groupID]
	if !ok {
		return GroupStats{}, false
	}
	return *g, true
}

// KCount returns the number of distinct k-mers currently stored.
func (db *DB) KCount() int { return len(db.entries) }

// EachEntry calls fn for every stored k-mer with its owning group IDs.
// The owner slice must not be retained or modified.
func (db *DB) EachEntry(fn func(kmer string, owners []string)) {
	for kmer, owners := range db.entries {
		fn(kmer, owners)
	}
}
