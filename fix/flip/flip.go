// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flip detects chimeric self-alignments ("flips") crossing a
// read's palindrome diagonal and derives a tightened trim interval
// (C4, FlipDetector).
package flip

import (
	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/track"
)

// Detect scans the self-overlaps of aread (length L) inside ovls —
// which must already be in overlap.SortGroup order — for
// reverse-complement alignments that cross the main diagonal, and
// returns a trim interval no wider than trim.
//
// ovls is the full per-read group; self-overlaps are located with
// overlap.SelfRange.
func Detect(ovls []overlap.Overlap, aread, L, width int, trim track.Interval) track.Interval {
	b, e := overlap.SelfRange(ovls, aread)
	self := ovls[b:e]

	cur := trim
	var comps []int
	for i, o := range self {
		if !o.Comp {
			continue
		}
		comps = append(comps, i)

		abStar, aeStar := L-o.BEpos, L-o.BBpos
		if overlap.Intersect(o.ABpos, o.AEpos, abStar, aeStar) {
			cur = tighten(cur, (o.ABpos+o.AEpos)/2)
		}

		cur = walkTrace(cur, &self[i], L, width)
	}

	for i := 1; i < len(comps); i++ {
		o1 := &self[comps[i-1]]
		o2 := &self[comps[i]]
		if o1.AEpos >= o2.ABpos {
			continue
		}
		gab, gae := o1.AEpos, o2.ABpos
		gabStar := L - o2.BBpos
		gaeStar := L - o1.BEpos
		if overlap.Intersect(gab, gae, gabStar, gaeStar) && overlap.Spanners(ovls, gab, gae) <= 1 {
			cur = tighten(cur, (gab+gae)/2)
		}
	}

	if cur.Begin < trim.Begin {
		cur.Begin = trim.Begin
	}
	if cur.End > trim.End {
		cur.End = trim.End
	}
	return cur
}

// walkTrace flags each A-segment of o whose flipped B-range intersects
// it, tightening trim at each flagged segment's midpoint.
func walkTrace(trim track.Interval, o *overlap.Overlap, L, width int) track.Interval {
	k := len(o.Trace)
	if k == 0 {
		return trim
	}

	sab := o.ABpos
	sbb := o.BBpos
	first := ((o.ABpos / width) + 1) * width

	for i := 0; i < k; i++ {
		sae := first + i*width
		if i == 0 {
			sae = first
		}
		if i == k-1 || sae > o.AEpos {
			sae = o.AEpos
		}
		sbe := sbb + o.Trace[i].BConsumed

		fbb, fbe := L-sbe, L-sbb
		if overlap.Intersect(sab, sae, fbb, fbe) {
			trim = tighten(trim, (sab+sae)/2)
		}

		sab = sae
		sbb = sbe
	}
	return trim
}

// tighten drops whichever side of trim is closer to mid, pulling that
// endpoint to mid and leaving the longer side untouched.
func tighten(trim track.Interval, mid int) track.Interval {
	near := mid - trim.Begin
	far := trim.End - mid
	if near < far {
		trim.Begin = mid
	} else {
		trim.End = mid
	}
	return trim
}
