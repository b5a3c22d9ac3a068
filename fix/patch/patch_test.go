// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patch

import (
	"bytes"
	"testing"

	"github.com/wolf2407/marvel/fix/candidate"
	"github.com/wolf2407/marvel/fix/track"
)

type fakeReader struct {
	bases map[int][]byte
	qv    map[int][]byte
}

func (f fakeReader) Bases(b int) []byte     { return f.bases[b] }
func (f fakeReader) NumQVStreams() int      { return len(f.qv) }
func (f fakeReader) QV(b int, stream int) []byte {
	return f.qv[b]
}

func TestPatchNoCandidatesIsIdentity(t *testing.T) {
	a := []byte("AAAACCCCGG")
	trim := track.Interval{Begin: 0, End: len(a)}

	res := Patch(a, nil, trim, nil, fakeReader{})
	if res.Patched {
		t.Error("Patched = true, want false for no candidates")
	}
	if !bytes.Equal(res.Out, a) {
		t.Errorf("Out = %q, want %q", res.Out, a)
	}
	if len(res.Splice) != 1 || res.Splice[0] != (Splice{0, 10, 0}) {
		t.Errorf("Splice = %+v, want [{0 10 0}]", res.Splice)
	}
}

func TestPatchSplicesDonorSegment(t *testing.T) {
	a := []byte("AAAACCCCGG")
	trim := track.Interval{Begin: 0, End: len(a)}
	cands := []candidate.Gap{
		{AB: 4, AE: 8, BRead: 5, BB: 0, BE: 2, Comp: false, Alive: true},
	}
	reads := fakeReader{bases: map[int][]byte{5: []byte("TT")}}

	res := Patch(a, nil, trim, cands, reads)
	if !res.Patched {
		t.Fatal("Patched = false, want true")
	}
	want := "AAAATTGG"
	if string(res.Out) != want {
		t.Errorf("Out = %q, want %q", res.Out, want)
	}
	wantSplice := []Splice{{0, 4, 0}, {8, 10, 6}}
	if len(res.Splice) != len(wantSplice) {
		t.Fatalf("Splice = %+v, want %+v", res.Splice, wantSplice)
	}
	for i, s := range wantSplice {
		if res.Splice[i] != s {
			t.Errorf("Splice[%d] = %+v, want %+v", i, res.Splice[i], s)
		}
	}
}

func TestPatchReverseComplementsDonorOnComp(t *testing.T) {
	a := []byte("AAAACCCCGG")
	trim := track.Interval{Begin: 0, End: len(a)}
	cands := []candidate.Gap{
		{AB: 4, AE: 8, BRead: 5, BB: 0, BE: 2, Comp: true, Alive: true},
	}
	reads := fakeReader{bases: map[int][]byte{5: []byte("AC")}}

	res := Patch(a, nil, trim, cands, reads)
	want := "AAAAGTGG"
	if string(res.Out) != want {
		t.Errorf("Out = %q, want %q (reverse-complemented donor)", res.Out, want)
	}
}

func TestPatchRespectsTrim(t *testing.T) {
	a := []byte("AAAACCCCGGTTTT")
	trim := track.Interval{Begin: 2, End: 10}

	res := Patch(a, nil, trim, nil, fakeReader{})
	want := "AACCCCGG"
	if string(res.Out) != want {
		t.Errorf("Out = %q, want %q", res.Out, want)
	}
}

func TestPatchQVStreamReversedNotComplemented(t *testing.T) {
	a := []byte("AAAACCCCGG")
	aQV := [][]byte{[]byte("0123456789")}
	trim := track.Interval{Begin: 0, End: len(a)}
	cands := []candidate.Gap{
		{AB: 4, AE: 8, BRead: 5, BB: 0, BE: 2, Comp: true, Alive: true},
	}
	reads := fakeReader{
		bases: map[int][]byte{5: []byte("AC")},
		qv:    map[int][]byte{5: []byte("XY")},
	}

	res := Patch(a, aQV, trim, cands, reads)
	want := "0123" + "YX" + "89"
	if string(res.OutQV[0]) != want {
		t.Errorf("OutQV[0] = %q, want %q", res.OutQV[0], want)
	}
}
