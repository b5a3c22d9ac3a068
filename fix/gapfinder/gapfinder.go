// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gapfinder derives candidate patches from consecutive
// same-B-read overlaps that leave a gap in the A-read (C5, GapFinder).
package gapfinder

import (
	"github.com/wolf2407/marvel/fix/candidate"
	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/track"
)

// BReads gives GapFinder the donor (B) read's View: its dust-veto and
// Q-segment checks go through the same track.View the rest of the
// pipeline uses for the A-read, rather than a private copy.
type BReads interface {
	View(bread int) *track.View
}

// Find scans ovls — which must be in overlap.SortGroup order — for
// consecutive pairs sharing a B-read and orientation that leave a gap
// in the A-read, and returns one candidate per surviving gap.
func Find(ovls []overlap.Overlap, width int, reads BReads) []candidate.Gap {
	var out []candidate.Gap
	for i := 0; i+1 < len(ovls); i++ {
		o1, o2 := &ovls[i], &ovls[i+1]
		if o1.BRead != o2.BRead || o1.Comp != o2.Comp {
			continue
		}
		if !(o1.AEpos < o2.ABpos) {
			continue
		}
		if len(o1.Trace) == 0 || len(o2.Trace) == 0 {
			continue
		}

		ab := ((o1.AEpos - 1) / width) * width
		ae := (o2.ABpos/width + 1) * width

		bb := o1.BEpos - o1.Trace[len(o1.Trace)-1].BConsumed
		be := o2.BBpos + o2.Trace[0].BConsumed

		view := reads.View(o1.BRead)
		if o1.Comp {
			bb, be = view.Len-be, view.Len-bb
		}
		if bb >= be {
			continue
		}

		if view.DustContainedIn(bb, be) {
			continue
		}

		sumQ, ok := qualitySum(view.QSeg, width, bb, be)
		if !ok {
			continue
		}

		out = append(out, candidate.Gap{
			AB: ab, AE: ae,
			BB: bb, BE: be,
			BRead:   o1.BRead,
			Comp:    o1.Comp,
			Diff:    100 * float64(sumQ) / float64(be-bb),
			Support: 1,
			Span:    0,
			Alive:   true,
		})
	}
	return out
}

// qualitySum sums the Q values of segments b/width through e/width
// inclusive (so the segment starting at e counts when e is on a segment
// boundary), failing (ok=false) if any of them is zero (untrusted).
func qualitySum(q []int, width, b, e int) (sum int, ok bool) {
	first := b / width
	last := e / width
	for s := first; s <= last; s++ {
		if s < 0 || s >= len(q) {
			return 0, false
		}
		if q[s] == 0 {
			return 0, false
		}
		sum += q[s]
	}
	return sum, true
}
