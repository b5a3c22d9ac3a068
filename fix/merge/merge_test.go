// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"testing"

	"github.com/wolf2407/marvel/fix/candidate"
	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/track"
)

func TestMergeDeduplicatesCloseBLengths(t *testing.T) {
	cands := []candidate.Gap{
		{AB: 100, AE: 200, BB: 0, BE: 100, Support: 1, Diff: 5, Alive: true},
		{AB: 100, AE: 200, BB: 5, BE: 95, Support: 2, Diff: 3, Alive: true},
	}
	aView := track.NewView(1, 200, 100, []int{10, 40}, nil)

	got := Merge(cands, nil, aView, 100, 28, 500)
	if len(got) != 1 {
		t.Fatalf("Merge() returned %d candidates, want 1", len(got))
	}
	if got[0].Support != 3 {
		t.Errorf("merged support = %d, want 3", got[0].Support)
	}
	if got[0].Diff != 3 {
		t.Errorf("kept candidate diff = %v, want 3 (lower diff sorts first)", got[0].Diff)
	}
}

func TestMergeCapsGaps(t *testing.T) {
	cands := []candidate.Gap{
		{AB: 0, AE: 600, BB: 0, BE: 600, Support: 1, Diff: 1, Alive: true},
	}
	aView := track.NewView(1, 600, 100, []int{40, 40, 40, 40, 40, 40}, nil)

	got := Merge(cands, nil, aView, 100, 28, 500)
	if len(got) != 0 {
		t.Fatalf("Merge() returned %d candidates, want 0 (gap cap)", len(got))
	}
}

func TestMergeOverlapTieBreaksEarlier(t *testing.T) {
	cands := []candidate.Gap{
		{AB: 100, AE: 250, BB: 0, BE: 150, Support: 2, Diff: 1, Alive: true},
		{AB: 150, AE: 300, BB: 0, BE: 150, Support: 2, Diff: 2, Alive: true},
	}
	aView := track.NewView(1, 300, 100, []int{10, 40, 10}, nil)

	got := Merge(cands, nil, aView, 100, 28, -1)
	if len(got) != 1 {
		t.Fatalf("Merge() returned %d candidates, want 1", len(got))
	}
	if got[0].AB != 100 || got[0].AE != 250 {
		t.Errorf("surviving candidate = [%d,%d), want the earlier [100,250)", got[0].AB, got[0].AE)
	}
	if got[0].Support != 4 {
		t.Errorf("merged support = %d, want 4", got[0].Support)
	}
}

func TestMergeSpanFilter(t *testing.T) {
	cands := []candidate.Gap{
		{AB: 100, AE: 200, BB: 0, BE: 100, Support: 1, Diff: 1, Alive: true},
	}
	var ovls []overlap.Overlap
	for i := 0; i < 11; i++ {
		ovls = append(ovls, overlap.Overlap{ABpos: -500, AEpos: 700})
	}
	aView := track.NewView(1, 200, 100, []int{10, 40}, nil)

	got := Merge(cands, ovls, aView, 100, 28, -1)
	if len(got) != 0 {
		t.Fatalf("Merge() returned %d candidates, want 0 (span filter)", len(got))
	}
}

func TestMergeWeakQFilter(t *testing.T) {
	cands := []candidate.Gap{
		{AB: 100, AE: 200, BB: 0, BE: 100, Support: 1, Diff: 1, Alive: true},
	}
	aView := track.NewView(1, 200, 100, []int{10, 10}, nil)

	got := Merge(cands, nil, aView, 100, 28, -1)
	if len(got) != 0 {
		t.Fatalf("Merge() returned %d candidates, want 0 (A-region not actually bad)", len(got))
	}
}
