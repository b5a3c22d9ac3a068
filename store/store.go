// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store provides the external collaborators the fix engine
// treats as opaque: a read sequence database, an overlap stream, named
// per-read tracks, and the patched-output sinks (spec.md §1).
package store

import (
	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/track"
)

// ReadStore is random access to read bases and length by read id.
type ReadStore interface {
	Bases(read int) []byte
	Len(read int) int
	NumReads() int
}

// OverlapStream is sequential, grouped access to an overlap file:
// each call to Next returns the complete overlap set of the next
// A-read, pre-sorted by B-read then A-start.
type OverlapStream interface {
	Next() (overlap.Group, bool, error)
	Close() error
}

// TrackStore gives named access to the Q, dust, trim and any `-c`
// convert tracks of a run.
type TrackStore interface {
	QSegments(read int) []int
	Dust(read int) []track.Interval
	Trim(read int) (track.Interval, bool)
	Convert(name string, read int) ([]track.Interval, error)
}

// QVStore gives random access to a read's input quality-value streams,
// the per-base QV data Patcher splices alongside bases when -q names a
// sibling .qv track.
type QVStore interface {
	NumQVStreams() int
	QV(read int, stream int) []byte
}

// FastaSink receives one patched (or trimmed) FASTA record per call.
type FastaSink interface {
	WriteRecord(header string, body []byte) error
	Close() error
}

// QualitySink receives one patched quality-value record per call.
type QualitySink interface {
	WriteRecord(header string, streams [][]byte) error
	Close() error
}
