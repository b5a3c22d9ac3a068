// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fix orchestrates the per-read patch-planning pipeline: flip
// detection, gap and weak-region candidate discovery, candidate
// merging, splicing and interval remapping.
package fix

import (
	"fmt"
	"strings"

	"github.com/wolf2407/marvel/fix/candidate"
	"github.com/wolf2407/marvel/fix/flip"
	"github.com/wolf2407/marvel/fix/gapfinder"
	"github.com/wolf2407/marvel/fix/merge"
	"github.com/wolf2407/marvel/fix/overlap"
	"github.com/wolf2407/marvel/fix/patch"
	"github.com/wolf2407/marvel/fix/remap"
	"github.com/wolf2407/marvel/fix/track"
	"github.com/wolf2407/marvel/fix/weakfinder"
)

// Gap is the patch-candidate type shared by GapFinder, WeakFinder,
// CandidateMerger, Patcher and IntervalRemapper.
type Gap = candidate.Gap

// Config holds the per-run tunables of the CLI (spec.md §6).
type Config struct {
	Width        int // segment width W
	MinLen       int // -x: drop output reads shorter than this
	LowQ         int // -Q: segments with Q>=LowQ are weak-patch candidates
	MaxGap       int // -g: reject patches spanning more than this; -1 disables
	ConvertTrack []string
	NumQVStreams int
}

// DefaultConfig returns the CLI's documented defaults.
func DefaultConfig() Config {
	return Config{
		Width:  track.DefaultWidth,
		MinLen: 1000,
		LowQ:   28,
		MaxGap: 500,
	}
}

// ReadStore is the subset of store.ReadStore Context needs.
type ReadStore interface {
	Bases(read int) []byte
	Len(read int) int
}

// TrackStore is the subset of store.TrackStore Context needs.
type TrackStore interface {
	QSegments(read int) []int
	Dust(read int) []track.Interval
	Trim(read int) (track.Interval, bool)
	Convert(name string, read int) ([]track.Interval, error)
}

// QVStore is the optional source of A- and B-read quality-value
// streams, present only when -q is given.
type QVStore interface {
	NumQVStreams() int
	QV(read int, stream int) []byte
}

// Stats accumulates per-run counters (spec.md §9's "global mutable
// counters" design note), safe to sum across sharded workers at
// teardown.
type Stats struct {
	NumFlips     int
	NumGaps      int
	BasesBefore  int64
	BasesAfter   int64
	ReadsEmitted int
	ReadsDropped int
}

// Merge adds o's counters into s, for combining per-shard stats.
func (s *Stats) Merge(o Stats) {
	s.NumFlips += o.NumFlips
	s.NumGaps += o.NumGaps
	s.BasesBefore += o.BasesBefore
	s.BasesAfter += o.BasesAfter
	s.ReadsEmitted += o.ReadsEmitted
	s.ReadsDropped += o.ReadsDropped
}

// Context is the per-run scratch owner: it holds the (borrowed)
// collaborators and the run's accumulated Stats. A Context must not be
// shared across goroutines; shard by running one Context per worker
// and merging Stats at teardown (spec.md §5).
type Context struct {
	cfg    Config
	reads  ReadStore
	tracks TrackStore
	qv     QVStore // nil unless -q is set

	Stats Stats
}

// NewContext builds a Context over reads and tracks. qv may be nil.
func NewContext(cfg Config, reads ReadStore, tracks TrackStore, qv QVStore) *Context {
	return &Context{cfg: cfg, reads: reads, tracks: tracks, qv: qv}
}

// Result is the outcome of patch-planning one A-read.
type Result struct {
	Emit    bool
	Header  string
	Body    []byte
	QVLines [][]byte
}

// trackReads adapts a Context's ReadStore+TrackStore into the small
// BReads interfaces gapfinder and weakfinder each require of a donor
// (B) read.
type trackReads struct {
	reads  ReadStore
	tracks TrackStore
	width  int
}

func (t trackReads) QSegments(b int) []int { return t.tracks.QSegments(b) }
func (t trackReads) Len(b int) int         { return t.reads.Len(b) }

// View builds the donor-read View gapfinder needs for its dust-veto
// and quality-sum checks, the same track.View construction Run uses
// for the A-read.
func (t trackReads) View(b int) *track.View {
	return track.NewView(b, t.reads.Len(b), t.width, t.tracks.QSegments(b), t.tracks.Dust(b))
}

// breader adapts a Context into patch.BReader.
type breader struct {
	reads ReadStore
	qv    QVStore
}

func (b breader) Bases(read int) []byte { return b.reads.Bases(read) }
func (b breader) NumQVStreams() int {
	if b.qv == nil {
		return 0
	}
	return b.qv.NumQVStreams()
}
func (b breader) QV(read int, stream int) []byte { return b.qv.QV(read, stream) }

// Run processes one A-read's overlap group end to end: FlipDetector
// tightens trim, GapFinder and WeakFinder propose candidates,
// CandidateMerger resolves them, Patcher splices the output, and any
// configured convert tracks are remapped through the splice map.
func (c *Context) Run(g overlap.Group) Result {
	aread := g.ARead
	L := c.reads.Len(aread)

	qseg := c.tracks.QSegments(aread)
	dust := c.tracks.Dust(aread)
	trim, ok := c.tracks.Trim(aread)
	if !ok {
		trim = track.Interval{Begin: 0, End: L}
	}

	view := track.NewView(aread, L, c.cfg.Width, qseg, dust)
	view.Trim = trim

	tightened := flip.Detect(g.Overlaps, aread, L, c.cfg.Width, trim)
	if tightened != trim {
		c.Stats.NumFlips++
	}
	view.Trim = tightened

	if view.Trim.Begin >= view.Trim.End {
		c.Stats.ReadsDropped++
		return Result{}
	}

	tr := trackReads{reads: c.reads, tracks: c.tracks, width: c.cfg.Width}

	gaps := gapfinder.Find(g.Overlaps, c.cfg.Width, tr)
	weaks := weakfinder.Find(g.Overlaps, view, c.cfg.Width, c.cfg.LowQ, tr, gaps)

	raw := make([]candidate.Gap, 0, len(gaps)+len(weaks))
	raw = append(raw, gaps...)
	raw = append(raw, weaks...)

	merged := merge.Merge(raw, g.Overlaps, view, c.cfg.Width, c.cfg.LowQ, c.cfg.MaxGap)
	c.Stats.NumGaps += len(merged)

	aBytes := c.reads.Bases(aread)
	var aQV [][]byte
	if c.qv != nil {
		aQV = make([][]byte, c.qv.NumQVStreams())
		for s := range aQV {
			aQV[s] = c.qv.QV(aread, s)
		}
	}

	br := breader{reads: c.reads, qv: c.qv}
	res := patch.Patch(aBytes, aQV, view.Trim, merged, br)

	if len(res.Out) < c.cfg.MinLen {
		c.Stats.ReadsDropped++
		return Result{}
	}

	// The fixed_/trimmed_ choice follows whether any candidate survived
	// CandidateMerger, not whether Patcher actually spliced one in: a
	// surviving candidate can still fall entirely outside the
	// (possibly flip-tightened) trim window and never reach res.Out.
	prefix := "fixed"
	if len(merged) == 0 {
		prefix = "trimmed"
	}
	header := fmt.Sprintf("%s_%d source=%d", prefix, aread, aread)

	for _, name := range c.cfg.ConvertTrack {
		ivs, err := c.tracks.Convert(name, aread)
		if err != nil {
			continue
		}
		remapped := remap.Remap(res.Splice, len(res.Out), ivs)
		if len(remapped) == 0 {
			continue
		}
		header += " " + name + "=" + formatIntervals(remapped)
	}

	c.Stats.BasesBefore += int64(L)
	c.Stats.BasesAfter += int64(len(res.Out))
	c.Stats.ReadsEmitted++

	return Result{Emit: true, Header: header, Body: res.Out, QVLines: res.OutQV}
}

func formatIntervals(ivs []track.Interval) string {
	parts := make([]string, 0, len(ivs)*2)
	for _, iv := range ivs {
		parts = append(parts, fmt.Sprintf("%d", iv.Begin), fmt.Sprintf("%d", iv.End))
	}
	return strings.Join(parts, ",")
}
