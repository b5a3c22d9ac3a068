// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package weakfinder scans a read's internal segments for locally weak
// quality and, for each, selects the best donor overlap to patch it
// (C6, WeakFinder).
package weakfinder

import (
	"github.com/wolf2407/marvel/fix/candidate"
	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/track"
	"github.com/wolf2407/marvel/fix/tracemap"
)

// BReads is the donor-read Q-segment and length lookup this component
// needs.
type BReads interface {
	QSegments(bread int) []int
	Len(bread int) int
}

// weakMargin is the minimum number of bases a donor overlap must
// extend beyond the weak segment on each side to be considered
// "comfortably spanning" it (spec.md §4.4).
const weakMargin = 100

// bestDonor tracks the minimum-mean-Q (highest quality) donor found so
// far for one weak segment. valid distinguishes "no donor yet" from
// the zero value, replacing the source's uninitialized-sentinel
// variables (spec.md §9 open question 1).
type bestDonor struct {
	valid  bool
	bb, be int
	bread  int
	comp   bool
	meanQ  float64
}

// Find scans aView's segments inside its trim interval and returns one
// candidate per weak segment that has at least one eligible donor.
// existing is the set of candidates already found (by GapFinder);
// segments they already cover are skipped.
func Find(ovls []overlap.Overlap, aView *track.View, width, lowQ int, reads BReads, existing []candidate.Gap) []candidate.Gap {
	sFirst := aView.Trim.Begin / width
	sLast := (aView.Trim.End + width - 1) / width

	for sFirst < sLast && aView.Segment(sFirst) == 0 {
		sFirst++
	}
	for sLast > sFirst && aView.Segment(sLast-1) == 0 {
		sLast--
	}

	var out []candidate.Gap
	for i := sFirst; i < sLast; i++ {
		q := aView.Segment(i)
		if q != 0 && q < lowQ {
			continue
		}

		ab, ae := i*width, (i+1)*width
		if ae > aView.Trim.End {
			ae = aView.Trim.End
		}
		if ab >= ae || coveredByExisting(existing, ab, ae) {
			continue
		}

		var best bestDonor
		border := 0
		for j := range ovls {
			o := &ovls[j]
			if within(o.ABpos, ab, ae) || within(o.AEpos, ab, ae) {
				border++
			}
			if o.ABpos+weakMargin > ab || o.AEpos-weakMargin < ae {
				continue
			}

			blen := reads.Len(o.BRead)
			tm := tracemap.New(o, width, blen)
			_, _, bLo, bHi := tm.Segment(ab)
			bb, be := bLo, bHi
			if bb > be {
				bb, be = be, bb
			}

			meanQ, ok := meanQuality(reads.QSegments(o.BRead), width, bb, be)
			if !ok {
				continue
			}
			if !best.valid || meanQ < best.meanQ {
				best = bestDonor{valid: true, bb: bb, be: be, bread: o.BRead, comp: o.Comp, meanQ: meanQ}
			}
		}

		if !best.valid {
			continue
		}

		out = append(out, candidate.Gap{
			AB: ab, AE: ae,
			BB: best.bb, BE: best.be,
			BRead:   best.bread,
			Comp:    best.comp,
			Diff:    best.meanQ,
			Support: border,
			Span:    overlap.Spanners(ovls, ab, ae),
			Alive:   true,
		})
	}
	return out
}

func within(p, b, e int) bool { return p >= b && p < e }

func coveredByExisting(existing []candidate.Gap, ab, ae int) bool {
	for i := range existing {
		if existing[i].Intersects(ab, ae) {
			return true
		}
	}
	return false
}

// meanQuality averages the Q values of the segments covering [b,e),
// disqualifying the donor (ok=false) if any covered segment is zero.
func meanQuality(q []int, width, b, e int) (mean float64, ok bool) {
	first := b / width
	last := e / width
	if last > first && e%width == 0 {
		last--
	}
	n := 0
	sum := 0
	for s := first; s <= last; s++ {
		if s < 0 || s >= len(q) {
			return 0, false
		}
		if q[s] == 0 {
			return 0, false
		}
		sum += q[s]
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
