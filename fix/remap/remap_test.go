// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remap

import (
	"testing"

	"github.com/wolf2407/marvel/fix/patch"
	"github.com/wolf2407/marvel/fix/track"
)

// splice represents a patch that replaced A-range [100,200) with a
// 50-base donor segment, retaining [0,100) and [200,400).
func testSplice() []patch.Splice {
	return []patch.Splice{
		{AB: 0, AE: 100, Off: 0},
		{AB: 200, AE: 400, Off: 150},
	}
}

func TestRemapWithinSingleBlock(t *testing.T) {
	got := Remap(testSplice(), 350, []track.Interval{{Begin: 10, End: 90}})
	if len(got) != 1 {
		t.Fatalf("Remap() returned %d intervals, want 1", len(got))
	}
	if got[0] != (track.Interval{Begin: 10, End: 90}) {
		t.Errorf("got %+v, want {10 90}", got[0])
	}
}

func TestRemapAcrossPatch(t *testing.T) {
	got := Remap(testSplice(), 350, []track.Interval{{Begin: 50, End: 250}})
	if len(got) != 1 {
		t.Fatalf("Remap() returned %d intervals, want 1", len(got))
	}
	want := track.Interval{Begin: 50, End: 200}
	if got[0] != want {
		t.Errorf("got %+v, want %+v", got[0], want)
	}
}

func TestRemapDroppedInsideRemovedRegion(t *testing.T) {
	got := Remap(testSplice(), 350, []track.Interval{{Begin: 120, End: 180}})
	if len(got) != 0 {
		t.Fatalf("Remap() returned %d intervals, want 0 (entirely inside replaced region)", len(got))
	}
}

func TestRemapDroppedOutOfRange(t *testing.T) {
	got := Remap(testSplice(), 350, []track.Interval{{Begin: 500, End: 600}})
	if len(got) != 0 {
		t.Fatalf("Remap() returned %d intervals, want 0 (out of range)", len(got))
	}
}

func TestRemapDropsShortResult(t *testing.T) {
	got := Remap(testSplice(), 350, []track.Interval{{Begin: 10, End: 14}})
	if len(got) != 0 {
		t.Fatalf("Remap() returned %d intervals, want 0 (below MinLen)", len(got))
	}
}

func TestRemapNoSplicesReturnsNil(t *testing.T) {
	got := Remap(nil, 0, []track.Interval{{Begin: 0, End: 10}})
	if got != nil {
		t.Errorf("Remap() = %+v, want nil", got)
	}
}
