// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import "testing"

func TestPackedFor(t *testing.T) {
	p := Packed{
		Anno: []int{0, 3, 3, 5},
		Data: []int{10, 12, 11, 8, 9},
	}
	if got := p.For(0); len(got) != 3 || got[1] != 12 {
		t.Fatalf("For(0) = %v", got)
	}
	if got := p.For(1); len(got) != 0 {
		t.Fatalf("For(1) = %v, want empty", got)
	}
	if got := p.For(2); len(got) != 2 || got[0] != 8 {
		t.Fatalf("For(2) = %v", got)
	}
	if n := p.NumReads(); n != 3 {
		t.Fatalf("NumReads() = %d, want 3", n)
	}
}

func TestIntervalsFor(t *testing.T) {
	tr := Intervals{Raw: Packed{
		Anno: []int{0, 4},
		Data: []int{10, 20, 50, 60},
	}}
	ivs := tr.For(0)
	want := []Interval{{10, 20}, {50, 60}}
	if len(ivs) != len(want) || ivs[0] != want[0] || ivs[1] != want[1] {
		t.Fatalf("For(0) = %v, want %v", ivs, want)
	}
}

func TestViewSegment(t *testing.T) {
	v := NewView(0, 400, 100, []int{10, 40, 10, 12}, nil)
	if q := v.Segment(1); q != 40 {
		t.Fatalf("Segment(1) = %d, want 40", q)
	}
	if q := v.Segment(9); q != 0 {
		t.Fatalf("Segment(9) out of range = %d, want 0", q)
	}
	if s := v.SegmentAt(150); s != 1 {
		t.Fatalf("SegmentAt(150) = %d, want 1", s)
	}
}

func TestDustContainedIn(t *testing.T) {
	v := NewView(0, 1000, 100, nil, []Interval{{200, 300}, {600, 650}})
	if !v.DustContainedIn(150, 350) {
		t.Fatal("expected [200,300) to be contained in [150,350)")
	}
	if v.DustContainedIn(250, 280) {
		t.Fatal("did not expect a dust interval to be contained in a narrower query")
	}
	if v.DustContainedIn(700, 800) {
		t.Fatal("expected no dust interval in [700,800)")
	}
}
