// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracemap maps A-coordinates of an overlap to B-coordinates
// (and back) through its segmented trace (C3, TraceMap).
package tracemap

import "github.com/wolf2407/marvel/fix/overlap"

// Map holds the decoded A/B boundary ladder for one overlap, built once
// and queried by b_at-style lookups as many times as callers need.
type Map struct {
	width int

	// aBound[i], bBound[i] are parallel boundary ladders: aBound has
	// k+1 entries A0..Ak, bBound has k+1 entries B0..Bk.
	aBound []int
	bBound []int

	comp bool
	blen int // B-read length, needed to flip comp coordinates to forward strand
}

// New builds a Map for o, whose donor read has length blen.
func New(o *overlap.Overlap, width, blen int) *Map {
	k := len(o.Trace)
	a := make([]int, k+1)
	b := make([]int, k+1)

	a[0] = o.ABpos
	b[0] = o.BBpos

	// first is the segment boundary strictly above abpos; every
	// subsequent boundary up to Ak-1 is a further W apart.
	first := ((o.ABpos / width) + 1) * width
	for i := 1; i < k; i++ {
		a[i] = first + (i-1)*width
		b[i] = b[i-1] + o.Trace[i-1].BConsumed
	}
	if k > 0 {
		a[k] = o.AEpos
		b[k] = b[k-1] + o.Trace[k-1].BConsumed
	}

	return &Map{
		width:  width,
		aBound: a,
		bBound: b,
		comp:   o.Comp,
		blen:   blen,
	}
}

// BAt returns the B coordinate corresponding to A position p, i.e. Bj
// where j is the largest index with Aj <= p. p must lie in [A0, Ak].
func (m *Map) BAt(p int) int {
	j := m.segmentIndex(p)
	return m.forward(m.bBound[j])
}

// Segment returns the A/B segment bounds (Aj, Aj+1, Bj, Bj+1) of the
// segment containing A position p.
func (m *Map) Segment(p int) (aLo, aHi, bLo, bHi int) {
	j := m.segmentIndex(p)
	hi := j + 1
	if hi >= len(m.aBound) {
		hi = j
	}
	return m.aBound[j], m.aBound[hi], m.forward(m.bBound[j]), m.forward(m.bBound[hi])
}

// segmentIndex returns the largest j with aBound[j] <= p.
func (m *Map) segmentIndex(p int) int {
	j := 0
	for i, ab := range m.aBound {
		if ab <= p {
			j = i
		} else {
			break
		}
	}
	return j
}

// forward converts a raw trace-accumulated B coordinate to forward
// strand when the overlap is COMP, per spec.md §4.1: b' = Lb - B.
func (m *Map) forward(b int) int {
	if !m.comp {
		return b
	}
	return m.blen - b
}
