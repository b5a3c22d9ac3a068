// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapfinder

import (
	"testing"

	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/track"
)

type fakeReads struct {
	dust map[int][]track.Interval
	q    map[int][]int
	len  map[int]int
}

func (f fakeReads) View(b int) *track.View {
	return track.NewView(b, f.len[b], 100, f.q[b], f.dust[b])
}

func gapOverlaps() []overlap.Overlap {
	return []overlap.Overlap{
		{
			ARead: 2, BRead: 9, Comp: false,
			ABpos: 0, AEpos: 200, BBpos: 0, BEpos: 200,
			Trace: []overlap.TracePoint{{BConsumed: 100}},
		},
		{
			ARead: 2, BRead: 9, Comp: false,
			ABpos: 300, AEpos: 500, BBpos: 300, BEpos: 500,
			Trace: []overlap.TracePoint{{BConsumed: 100}},
		},
	}
}

func TestFindGapCandidate(t *testing.T) {
	reads := fakeReads{
		q:   map[int][]int{9: {5, 10, 10, 10, 10, 5}},
		len: map[int]int{9: 500},
	}
	got := Find(gapOverlaps(), 100, reads)
	if len(got) != 1 {
		t.Fatalf("Find() returned %d candidates, want 1", len(got))
	}
	c := got[0]
	if c.AB != 100 || c.AE != 400 {
		t.Errorf("candidate A-range = [%d,%d), want [100,400)", c.AB, c.AE)
	}
	if c.BB != 100 || c.BE != 400 {
		t.Errorf("candidate B-range = [%d,%d), want [100,400)", c.BB, c.BE)
	}
	if c.BRead != 9 || c.Comp {
		t.Errorf("candidate donor = (%d,comp=%v), want (9,false)", c.BRead, c.Comp)
	}
	if !c.Alive {
		t.Error("candidate should be Alive")
	}
}

func TestFindVetoesDustContainedGap(t *testing.T) {
	reads := fakeReads{
		dust: map[int][]track.Interval{9: {{200, 300}}},
		q:    map[int][]int{9: {5, 10, 10, 10, 10, 5}},
		len:  map[int]int{9: 500},
	}
	got := Find(gapOverlaps(), 100, reads)
	if len(got) != 0 {
		t.Fatalf("Find() returned %d candidates, want 0 (dust veto)", len(got))
	}
}

func TestFindRejectsZeroQualitySegment(t *testing.T) {
	reads := fakeReads{
		q:   map[int][]int{9: {5, 10, 0, 10, 10, 5}},
		len: map[int]int{9: 500},
	}
	got := Find(gapOverlaps(), 100, reads)
	if len(got) != 0 {
		t.Fatalf("Find() returned %d candidates, want 0 (zero-Q veto)", len(got))
	}
}

func TestFindSkipsDifferentBRead(t *testing.T) {
	ovls := gapOverlaps()
	ovls[1].BRead = 11
	reads := fakeReads{
		q:   map[int][]int{9: {5, 10, 10, 10, 10, 5}, 11: {5, 10, 10, 10, 10, 5}},
		len: map[int]int{9: 500, 11: 500},
	}
	got := Find(ovls, 100, reads)
	if len(got) != 0 {
		t.Fatalf("Find() returned %d candidates, want 0 (different B read)", len(got))
	}
}
