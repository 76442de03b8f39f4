// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store provides key marshaling and ordering for the kv-backed
// accumulation of k-mer hit counts. Whole-genome scans can touch many
// contig/group combinations, so counts are kept in a sorted on-disk
// store and read back in output order rather than held in one map.
package store

import (
	"bytes"
	"encoding/binary"
)

var order = binary.BigEndian

// A HitKey identifies one (genome, sequence, group) hit accumulator.
type HitKey struct {
	GenomeID string
	SeqID    string
	GroupID  string
}

// MarshalHitKey returns the length-prefixed encoding of k.
func MarshalHitKey(k HitKey) []byte {
	var (
		buf bytes.Buffer
		b   [8]byte
	)
	for _, s := range []string{k.GenomeID, k.SeqID, k.GroupID} {
		order.PutUint64(b[:], uint64(len(s)))
		buf.Write(b[:])
		buf.WriteString(s)
	}
	return buf.Bytes()
}

// UnmarshalHitKey decodes a key written by MarshalHitKey.
func UnmarshalHitKey(data []byte) HitKey {
	var k HitKey
	n64 := binary.Size(uint64(0))
	for _, f := range []*string{&k.GenomeID, &k.SeqID, &k.GroupID} {
		n := order.Uint64(data[:n64])
		data = data[n64:]
		*f = string(data[:n])
		data = data[n:]
	}
	return k
}

// ByGenomeSequence is a kv compare function, ordering hit keys by
// genome, sequence and group ID.
func ByGenomeSequence(x, y []byte) int {
	if bytes.Equal(x, y) {
		return 0
	}

	kx := UnmarshalHitKey(x)
	ky := UnmarshalHitKey(y)

	switch {
	case kx.GenomeID < ky.GenomeID:
		return -1
	case kx.GenomeID > ky.GenomeID:
		return 1
	}
	switch {
	case kx.SeqID < ky.SeqID:
		return -1
	case kx.SeqID > ky.SeqID:
		return 1
	}
	switch {
	case kx.GroupID < ky.GroupID:
		return -1
	case kx.GroupID > ky.GroupID:
		return 1
	}

	panic("unreachable")
}

// MarshalCount returns a slice encoding n as an int64.
func MarshalCount(n int64) []byte {
	var buf [8]byte
	order.PutUint64(buf[:], uint64(n))
	return buf[:]
}

// UnmarshalCount decodes a count written by MarshalCount.
func UnmarshalCount(data []byte) int64 {
	return int64(order.Uint64(data))
}
