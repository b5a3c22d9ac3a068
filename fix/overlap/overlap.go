// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlap defines the pairwise alignment record the fix engine
// consumes and a zero-copy view over one A-read's overlap group (C2,
// OverlapView).
package overlap

import "sort"

// TracePoint is one (diffs, b-consumed) pair for an A-segment an
// alignment crosses. Only BConsumed is used by the fix engine; Diffs is
// carried through for callers that want it (e.g. diagnostics).
type TracePoint struct {
	Diffs     int
	BConsumed int
}

// Overlap is a local pairwise alignment between read ARead (the "A"
// read) and read BRead (the "B" read), matching the LAS overlap record
// described in spec.md §3.
type Overlap struct {
	ARead, BRead int
	Comp         bool // B is reverse-complement aligned

	ABpos, AEpos int
	BBpos, BEpos int

	Trace []TracePoint
}

// ALen returns the length of the A-range of the alignment.
func (o *Overlap) ALen() int { return o.AEpos - o.ABpos }

// BLen returns the length of the B-range of the alignment.
func (o *Overlap) BLen() int { return o.BEpos - o.BBpos }

// Group is a zero-copy view over one A-read's overlap set, sorted by
// BRead then ABpos, as produced upstream by the overlap sort step.
type Group struct {
	ARead    int
	Overlaps []Overlap
}

// SortGroup sorts ovls in place by BRead then ABpos, the order
// OverlapView, FlipDetector and GapFinder all assume.
func SortGroup(ovls []Overlap) {
	sort.Slice(ovls, func(i, j int) bool {
		if ovls[i].BRead != ovls[j].BRead {
			return ovls[i].BRead < ovls[j].BRead
		}
		return ovls[i].ABpos < ovls[j].ABpos
	})
}

// NewGroup builds a Group from a slice of overlaps that all share the
// same ARead, sorting them into OverlapView order.
func NewGroup(aread int, ovls []Overlap) Group {
	SortGroup(ovls)
	return Group{ARead: aread, Overlaps: ovls}
}

// SelfRange returns the index range [b,e) of ovls that are self-overlaps
// (BRead == aread), assuming ovls is sorted in Group order. Self
// overlaps, if present, form a contiguous run because aread sorts among
// the BRead values in ascending order.
func SelfRange(ovls []Overlap, aread int) (b, e int) {
	b, e = -1, -1
	for i, o := range ovls {
		if o.BRead == aread {
			if b == -1 {
				b = i
			}
			e = i + 1
		} else if o.BRead > aread {
			break
		}
	}
	if b == -1 {
		return 0, 0
	}
	return b, e
}

// MinSpan is the minimum number of bases an overlap's A-range must
// extend beyond a reference interval on both sides to count as a
// spanner (spec.md §4.2).
const MinSpan = 400

// Spanners counts overlaps in ovls whose A-range extends at least
// MinSpan bases beyond both b and e.
func Spanners(ovls []Overlap, b, e int) int {
	n := 0
	for i := range ovls {
		o := &ovls[i]
		if o.ABpos <= b-MinSpan && o.AEpos >= e+MinSpan {
			n++
		}
	}
	return n
}

// Intersect reports whether the half-open ranges [ab,ae) and [bb,be)
// overlap.
func Intersect(ab, ae, bb, be int) bool {
	return ab < be && bb < ae
}
