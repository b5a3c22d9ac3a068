// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package patch splices the retained A-segments of a read with donor
// B-segments to produce the patched sequence, and records the splice
// map IntervalRemapper later replays (C8, Patcher).
package patch

import (
	"github.com/wolf2407/marvel/fix/candidate"
	"github.com/wolf2407/marvel/fix/track"
	"github.com/wolf2407/marvel/sequtil"
)

// BReader gives the Patcher random access to donor (B) read bases and,
// optionally, quality-value streams.
type BReader interface {
	Bases(bread int) []byte
	NumQVStreams() int
	QV(bread int, stream int) []byte
}

// Splice is one retained A-subrange copied verbatim into the output,
// recording where in the output it landed.
type Splice struct {
	AB, AE, Off int
}

// Result is the output of one Patch call.
type Result struct {
	Out     []byte
	OutQV   [][]byte
	Splice  []Splice
	Patched bool // false if no candidate was actually spliced in
}

// Patch splices aBytes (and, if non-nil, the parallel aQV streams)
// against trim and the surviving candidates cands (already sorted in
// ascending A-order by CandidateMerger), reading donor bytes from
// reads.
func Patch(aBytes []byte, aQV [][]byte, trim track.Interval, cands []candidate.Gap, reads BReader) Result {
	var res Result
	res.OutQV = make([][]byte, len(aQV))

	abCur := trim.Begin
	for i := range cands {
		c := &cands[i]

		if c.AB < trim.Begin {
			abCur = c.AE
			continue
		}
		if c.AE > trim.End {
			break
		}

		aeCur := c.AB
		if trim.Begin > abCur && trim.Begin < aeCur {
			abCur = trim.Begin
		}
		if abCur > aeCur {
			continue
		}

		if abCur < aeCur {
			res.Splice = append(res.Splice, Splice{abCur, aeCur, len(res.Out)})
			res.Out = append(res.Out, aBytes[abCur:aeCur]...)
			for s := range aQV {
				res.OutQV[s] = append(res.OutQV[s], aQV[s][abCur:aeCur]...)
			}
		}

		bBytes := reads.Bases(c.BRead)[c.BB:c.BE]
		if c.Comp {
			bBytes = sequtil.ReverseComplement(bBytes)
		}
		res.Out = append(res.Out, bBytes...)

		for s := 0; s < reads.NumQVStreams() && s < len(res.OutQV); s++ {
			bq := reads.QV(c.BRead, s)[c.BB:c.BE]
			if c.Comp {
				bq = sequtil.Reverse(bq)
			}
			res.OutQV[s] = append(res.OutQV[s], bq...)
		}

		abCur = c.AE
		res.Patched = true
	}

	if abCur < trim.End {
		res.Splice = append(res.Splice, Splice{abCur, trim.End, len(res.Out)})
		res.Out = append(res.Out, aBytes[abCur:trim.End]...)
		for s := range aQV {
			res.OutQV[s] = append(res.OutQV[s], aQV[s][abCur:trim.End]...)
		}
	}

	return res
}
