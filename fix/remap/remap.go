// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package remap transforms external interval annotations through a
// Patcher splice map, dropping or clipping intervals that fall outside
// the patched sequence (C9, IntervalRemapper).
package remap

import (
	"github.com/wolf2407/marvel/fix/patch"
	"github.com/wolf2407/marvel/fix/track"
)

// MinLen is the minimum remapped interval length that survives; any
// remap result at or below this is dropped (spec.md §4.7).
const MinLen = 5

// Remap rewrites each interval in ivs through splice (the Patcher's
// splice map, in ascending order) and returns the surviving, clipped
// intervals. outLen is the length of the patched output, used only for
// the bounds sanity check.
func Remap(splice []patch.Splice, outLen int, ivs []track.Interval) []track.Interval {
	if len(splice) == 0 {
		return nil
	}
	ab0 := splice[0].AB
	aeLast := splice[len(splice)-1].AE

	var out []track.Interval
	for _, iv := range ivs {
		if iv.End < ab0 || iv.Begin > aeLast {
			continue
		}

		ibAdj, ok := remapBegin(splice, iv.Begin)
		if !ok {
			continue
		}
		ieAdj, ok := remapEnd(splice, iv.End)
		if !ok {
			continue
		}

		if ieAdj-ibAdj <= MinLen {
			continue
		}
		if ibAdj < 0 || ibAdj > ieAdj || ieAdj > outLen {
			continue
		}
		out = append(out, track.Interval{Begin: ibAdj, End: ieAdj})
	}
	return out
}

// remapBegin finds the smallest j with ib < splice[j].AE and maps ib
// into that block's output range.
func remapBegin(splice []patch.Splice, ib int) (int, bool) {
	for _, s := range splice {
		if ib < s.AE {
			begin := ib
			if begin < s.AB {
				begin = s.AB
			}
			return s.Off + (begin - s.AB), true
		}
	}
	return 0, false
}

// remapEnd finds the smallest j with ie <= splice[j].AE and maps ie,
// clipping to the prior block's end if ie falls in the donor gap
// before block j.
func remapEnd(splice []patch.Splice, ie int) (int, bool) {
	for j, s := range splice {
		if ie <= s.AE {
			if ie < s.AB && j > 0 {
				prev := splice[j-1]
				return prev.Off + (prev.AE - prev.AB), true
			}
			return s.Off + (ie - s.AB), true
		}
	}
	return 0, false
}
