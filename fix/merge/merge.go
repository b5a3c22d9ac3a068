// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merge sorts, deduplicates and filters raw patch candidates
// down to a disjoint, well-supported set (C7, CandidateMerger).
package merge

import (
	"sort"

	"github.com/wolf2407/marvel/fix/candidate"
	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/track"
)

// maxBLenSkew is the maximum B-length difference two candidates
// sharing an identical A-range may have to be folded together as
// duplicates (spec.md §4.5 step 1).
const maxBLenSkew = 40

// maxSpanners is the spanners(ab,ae) threshold above which a candidate
// is considered well-supported and dropped rather than patched
// (spec.md §4.5 step 4).
const maxSpanners = 10

// Merge runs the full candidate-merger pipeline over cands (the
// concatenation of GapFinder's and WeakFinder's raw output for one
// read) and returns the surviving, pairwise-disjoint candidates in
// ascending A-order.
//
// maxgap < 0 disables the gap-length cap.
func Merge(cands []candidate.Gap, ovls []overlap.Overlap, aView *track.View, width, lowQ, maxgap int) []candidate.Gap {
	work := make([]candidate.Gap, len(cands))
	copy(work, cands)

	sort.SliceStable(work, func(i, j int) bool {
		return candidate.Less(work[i].Key(), work[j].Key())
	})

	dedupe(work)
	capGaps(work, maxgap)
	overlapMerge(work)
	spanFilter(work, ovls)
	weakQFilter(work, aView, width, lowQ)

	out := work[:0]
	for _, c := range work {
		if c.Alive {
			out = append(out, c)
		}
	}
	return out
}

// dedupe folds candidates sharing an identical (AB,AE) and a B-length
// within maxBLenSkew of one another into the first of the group.
func dedupe(work []candidate.Gap) {
	for i := range work {
		if !work[i].Alive {
			continue
		}
		for j := i + 1; j < len(work); j++ {
			if work[j].AB != work[i].AB || work[j].AE != work[i].AE {
				break
			}
			if !work[j].Alive {
				continue
			}
			if abs(work[j].BLen()-work[i].BLen()) < maxBLenSkew {
				work[i].Support += work[j].Support
				work[j].Alive = false
			}
		}
	}
}

// capGaps drops any surviving candidate whose A- or B-span is maxgap
// or more, or whose A/B span difference is.
func capGaps(work []candidate.Gap, maxgap int) {
	if maxgap < 0 {
		return
	}
	for i := range work {
		c := &work[i]
		if !c.Alive {
			continue
		}
		if c.Len() >= maxgap || c.BLen() >= maxgap || abs(c.BLen()-c.Len()) >= maxgap {
			c.Alive = false
		}
	}
}

// overlapMerge repeatedly folds pairs of surviving candidates whose
// A-ranges intersect, keeping the larger-support one (ties won by
// earlier sort order) and summing supports.
func overlapMerge(work []candidate.Gap) {
	changed := true
	for changed {
		changed = false
		for i := range work {
			if !work[i].Alive {
				continue
			}
			for j := i + 1; j < len(work); j++ {
				if !work[j].Alive {
					continue
				}
				if !work[i].Intersects(work[j].AB, work[j].AE) {
					continue
				}
				win, lose := i, j
				if work[j].Support > work[i].Support {
					win, lose = j, i
				}
				work[win].Support += work[lose].Support
				work[lose].Alive = false
				changed = true
			}
		}
	}
}

// spanFilter drops any candidate with more than maxSpanners supporting
// overlaps spanning its A-range.
func spanFilter(work []candidate.Gap, ovls []overlap.Overlap) {
	for i := range work {
		c := &work[i]
		if !c.Alive {
			continue
		}
		if overlap.Spanners(ovls, c.AB, c.AE) > maxSpanners {
			c.Alive = false
		}
	}
}

// weakQFilter drops any candidate whose A-range contains no segment
// that is itself bad (Q==0 or Q>=lowQ): the region must actually look
// bad to be worth replacing.
func weakQFilter(work []candidate.Gap, aView *track.View, width, lowQ int) {
	for i := range work {
		c := &work[i]
		if !c.Alive {
			continue
		}
		bad := false
		first, last := c.AB/width, (c.AE-1)/width
		for s := first; s <= last; s++ {
			q := aView.Segment(s)
			if q == 0 || q >= lowQ {
				bad = true
				break
			}
		}
		if !bad {
			c.Alive = false
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
