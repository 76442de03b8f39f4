// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmerdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/golang/snappy"

	"github.com/p3tools/kmerdb/kmers"
)

// ErrBadFormat is wrapped by Load errors caused by a corrupt or
// incompatible database file, as opposed to plain I/O failures.
var ErrBadFormat = errors.New("kmerdb: bad database format")

const formatVersion = 1

// document is the serialized form of a DB: a snappy-compressed JSON
// object. Key order is not significant; round-tripping preserves
// semantic content exactly.
type document struct {
	Version  int                    `json:"version"`
	KmerSize int                    `json:"kmer_size"`
	MaxFound int                    `json:"max_found"`
	Mirror   bool                   `json:"mirror"`
	Groups   map[string]*GroupStats `json:"groups"`
	Entries  map[string][]string    `json:"entries"`
}

// Save writes the full index to path.
func (db *DB) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("kmerdb: create %s: %w", path, err)
	}
	defer f.Close()
	w := snappy.NewBufferedWriter(f)
	err = json.NewEncoder(w).Encode(document{
		Version:  formatVersion,
		KmerSize: db.k,
		MaxFound: db.maxFound,
		Mirror:   db.mirror,
		Groups:   db.groups,
		Entries:  db.entries,
	})
	if err != nil {
		return fmt.Errorf("kmerdb: write %s: %w", path, err)
	}
	err = w.Close()
	if err != nil {
		return fmt.Errorf("kmerdb: write %s: %w", path, err)
	}
	return f.Close()
}

// Load reads an index previously written by Save. A truncated or
// corrupt file results in an error wrapping ErrBadFormat, never a
// silently empty index.
func Load(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kmerdb: open %s: %w", path, err)
	}
	defer f.Close()
	var doc document
	err = json.NewDecoder(snappy.NewReader(f)).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("kmerdb: read %s: %v: %w", path, err, ErrBadFormat)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("kmerdb: %s: unsupported version %d: %w", path, doc.Version, ErrBadFormat)
	}
	if doc.KmerSize <= 0 {
		return nil, fmt.Errorf("kmerdb: %s: invalid k-mer size %d: %w", path, doc.KmerSize, ErrBadFormat)
	}
	for kmer := range doc.Entries {
		if len(kmer) != doc.KmerSize {
			return nil, fmt.Errorf("kmerdb: %s: entry %q does not match k-mer size %d: %w", path, kmer, doc.KmerSize, ErrBadFormat)
		}
	}
	tok, err := kmers.New(doc.KmerSize, doc.Mirror)
	if err != nil {
		return nil, err
	}
	db := &DB{
		k:        doc.KmerSize,
		mirror:   doc.Mirror,
		maxFound: doc.MaxFound,
		tok:      tok,
		entries:  doc.Entries,
		groups:   doc.Groups,
	}
	if db.entries == nil {
		db.entries = make(map[string][]string)
	}
	if db.groups == nil {
		db.groups = make(map[string]*GroupStats)
	}
	return db, nil
}
