// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package track implements per-read slice access to segment-indexed
// quality and interval-list tracks (C1, TrackView).
package track

import "github.com/biogo/store/interval"

// DefaultWidth is the process-wide segment width W used when a
// configuration does not override it.
const DefaultWidth = 100

// Interval is a half-open base-coordinate range [Begin,End).
type Interval struct {
	Begin, End int
}

// Len returns End-Begin.
func (iv Interval) Len() int { return iv.End - iv.Begin }

// Contains reports whether other lies entirely inside iv.
func (iv Interval) Contains(other Interval) bool {
	return iv.Begin <= other.Begin && other.End <= iv.End
}

// Packed is a flat, offset-indexed store for a per-read track, mirroring
// the anno/data layout DAZZLER-style track files use: Anno[a] is the
// start offset (in units of the per-element stride) of read a's data,
// so read a's slice is Data[Anno[a]:Anno[a+1]].
type Packed struct {
	Anno []int
	Data []int
}

// For returns the raw per-read slice of read a.
func (p Packed) For(a int) []int {
	return p.Data[p.Anno[a]:p.Anno[a+1]]
}

// NumReads reports how many reads Anno describes.
func (p Packed) NumReads() int {
	if len(p.Anno) == 0 {
		return 0
	}
	return len(p.Anno) - 1
}

// Q wraps a Packed track of one quality proxy value per segment.
type Q struct{ Raw Packed }

// Segments returns the per-segment Q values of read a.
func (q Q) Segments(a int) []int { return q.Raw.For(a) }

// NumSegments returns the number of Q segments stored for read a.
func (q Q) NumSegments(a int) int { return len(q.Raw.For(a)) }

// Intervals wraps a Packed track whose per-read data is a flat
// [begin0,end0,begin1,end1,...] list, exposed as Interval values.
type Intervals struct{ Raw Packed }

// For returns the decoded, ordered interval list for read a.
func (t Intervals) For(a int) []Interval {
	raw := t.Raw.For(a)
	ivs := make([]Interval, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		ivs = append(ivs, Interval{raw[i], raw[i+1]})
	}
	return ivs
}

// View is a per-read accessor combining the Q track, the dust mask and
// the (already flip-adjusted) trim interval for one read, the unit of
// work GapFinder, WeakFinder and CandidateMerger operate against.
type View struct {
	Read  int
	Width int
	Len   int

	QSeg []int
	Dust []Interval
	Trim Interval

	dustTree *interval.IntTree
}

// NewView builds a View for read a of length length, with the given
// segment width, Q segments and dust intervals. Trim defaults to
// [0,length).
func NewView(read, length, width int, q []int, dust []Interval) *View {
	return &View{
		Read:  read,
		Width: width,
		Len:   length,
		QSeg:  q,
		Dust:  dust,
		Trim:  Interval{0, length},
	}
}

// Segment returns the Q value of segment s, or 0 (untrusted) if s is
// out of range.
func (v *View) Segment(s int) int {
	if s < 0 || s >= len(v.QSeg) {
		return 0
	}
	return v.QSeg[s]
}

// NumSegments reports the number of Q segments this read has.
func (v *View) NumSegments() int { return len(v.QSeg) }

// SegmentAt returns the index of the segment containing base position p.
func (v *View) SegmentAt(p int) int { return p / v.Width }

type dustInterval struct {
	Interval
	id uintptr
}

func (d dustInterval) ID() uintptr { return d.id }
func (d dustInterval) Range() interval.IntRange {
	return interval.IntRange{Start: d.Begin, End: d.End}
}
func (d dustInterval) Overlap(b interval.IntRange) bool {
	return d.Begin < b.End && b.Start < d.End
}

func (v *View) tree() *interval.IntTree {
	if v.dustTree != nil {
		return v.dustTree
	}
	t := &interval.IntTree{}
	for i, iv := range v.Dust {
		t.Insert(dustInterval{iv, uintptr(i) + 1}, true)
	}
	t.AdjustRanges()
	v.dustTree = t
	return t
}

// DustContainedIn reports whether any dust interval of this read is
// entirely contained within [b,e), the veto GapFinder applies to
// candidate B-regions (spec.md §4.3).
func (v *View) DustContainedIn(b, e int) bool {
	if len(v.Dust) == 0 {
		return false
	}
	hits := v.tree().Get(interval.IntRange{Start: b, End: e})
	for _, h := range hits {
		iv := h.(dustInterval).Interval
		if b <= iv.Begin && iv.End <= e {
			return true
		}
	}
	return false
}
