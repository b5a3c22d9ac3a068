// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flip

import (
	"testing"

	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/track"
)

func TestDetectTightensTrim(t *testing.T) {
	ovls := []overlap.Overlap{
		{
			ARead: 3, BRead: 3, Comp: true,
			ABpos: 200, AEpos: 500,
			BBpos: 500, BEpos: 800,
		},
	}
	trim := track.Interval{Begin: 0, End: 1000}

	got := Detect(ovls, 3, 1000, 100, trim)
	want := track.Interval{Begin: 350, End: 1000}
	if got != want {
		t.Fatalf("Detect() = %+v, want %+v", got, want)
	}
}

func TestDetectNoSelfOverlapsIsNoop(t *testing.T) {
	ovls := []overlap.Overlap{
		{ARead: 3, BRead: 7, ABpos: 0, AEpos: 900},
	}
	trim := track.Interval{Begin: 0, End: 1000}
	got := Detect(ovls, 3, 1000, 100, trim)
	if got != trim {
		t.Fatalf("Detect() = %+v, want unchanged %+v", got, trim)
	}
}

func TestDetectNeverWidensTrim(t *testing.T) {
	ovls := []overlap.Overlap{
		{
			ARead: 3, BRead: 3, Comp: true,
			ABpos: 200, AEpos: 500,
			BBpos: 500, BEpos: 800,
		},
	}
	// A pre-tightened trim narrower than [0,1000).
	trim := track.Interval{Begin: 100, End: 900}
	got := Detect(ovls, 3, 1000, 100, trim)
	if got.Begin < trim.Begin || got.End > trim.End {
		t.Fatalf("Detect() = %+v widened input trim %+v", got, trim)
	}
}
