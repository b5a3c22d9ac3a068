// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package candidate defines the patch-candidate record shared by
// GapFinder, WeakFinder, CandidateMerger, Patcher and IntervalRemapper.
package candidate

// Gap is one candidate patch: an A-interval to be replaced by the
// [BB,BE) slice of read BRead, in the orientation Comp indicates.
//
// Alive replaces the C source's support==-1 tombstone convention
// (spec.md §9): a dropped candidate is marked Alive=false rather than
// mutated in place with a sentinel value.
type Gap struct {
	AB, AE int
	BB, BE int
	BRead  int
	Comp   bool

	// Diff is a percent "badness" in [0,100], 0 being perfect, used to
	// order candidates and pick donors.
	Diff float64

	Support int
	Span    int

	Alive bool
}

// Len returns the A-span AE-AB.
func (g *Gap) Len() int { return g.AE - g.AB }

// BLen returns the B-span BE-BB.
func (g *Gap) BLen() int { return g.BE - g.BB }

// Intersects reports whether g's A-range intersects [ab,ae).
func (g *Gap) Intersects(ab, ae int) bool {
	return g.AB < ae && ab < g.AE
}

// SortKey is the ascending sort triple (AB, AE, Diff) spec.md §4.5
// orders candidates by.
type SortKey struct {
	AB, AE int
	Diff   float64
}

// Key returns g's sort key.
func (g *Gap) Key() SortKey { return SortKey{g.AB, g.AE, g.Diff} }

// Less reports whether a sorts before b under the (AB, AE, Diff) order.
func Less(a, b SortKey) bool {
	if a.AB != b.AB {
		return a.AB < b.AB
	}
	if a.AE != b.AE {
		return a.AE < b.AE
	}
	return a.Diff < b.Diff
}
