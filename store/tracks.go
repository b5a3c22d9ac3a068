// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/pkg/errors"

	"github.com/wolf2407/marvel/fix/track"
)

// FileTrackStore is a TrackStore assembled from a Q-segment text file
// and zero or more GFF interval files (dust, trim, and any `-c`
// convert tracks), looked up by read id after a name->id resolution
// pass against a ReadStore.
type FileTrackStore struct {
	q       map[int][]int
	dust    map[int][]track.Interval
	trim    map[int]track.Interval
	convert map[string]map[int][]track.Interval
}

// NewFileTrackStore returns an empty store; use Load* to populate it.
func NewFileTrackStore() *FileTrackStore {
	return &FileTrackStore{
		q:       make(map[int][]int),
		dust:    make(map[int][]track.Interval),
		trim:    make(map[int]track.Interval),
		convert: make(map[string]map[int][]track.Interval),
	}
}

// QSegments returns the per-segment Q values of read, or nil if none
// were loaded (treated by callers as "untrusted").
func (ts *FileTrackStore) QSegments(read int) []int { return ts.q[read] }

// Dust returns the dust mask intervals of read.
func (ts *FileTrackStore) Dust(read int) []track.Interval { return ts.dust[read] }

// Trim returns the trim interval of read, if one was loaded.
func (ts *FileTrackStore) Trim(read int) (track.Interval, bool) {
	iv, ok := ts.trim[read]
	return iv, ok
}

// Convert returns the named convert track's intervals for read.
func (ts *FileTrackStore) Convert(name string, read int) ([]track.Interval, error) {
	byRead, ok := ts.convert[name]
	if !ok {
		return nil, errors.Errorf("track store: unknown track %q", name)
	}
	return byRead[read], nil
}

// LoadQ reads a Q-segment text file — one line per read, "<name> q0
// q1 q2 ..." — resolving names to ids via nameToID, and records the
// per-read segment slices.
func (ts *FileTrackStore) LoadQ(r io.Reader, nameToID map[string]int) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		id, ok := nameToID[fields[0]]
		if !ok {
			continue
		}
		segs := make([]int, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return errors.Wrapf(err, "track store: Q segment for %q", fields[0])
			}
			segs[i] = v
		}
		ts.q[id] = segs
	}
	return errors.Wrap(sc.Err(), "track store: scan Q track")
}

// LoadDust reads a GFF file of dust-masked intervals, one feature per
// interval, and records them per read id.
func (ts *FileTrackStore) LoadDust(r io.Reader, nameToID map[string]int) error {
	byRead, err := readIntervalGFF(r, nameToID)
	if err != nil {
		return errors.Wrap(err, "track store: load dust")
	}
	ts.dust = byRead
	return nil
}

// LoadTrim reads a GFF file of single trim intervals per read, the
// way rinse.go's readAnnotations loads repeat-annotation GFF files,
// and records the first feature seen per read id as its trim.
func (ts *FileTrackStore) LoadTrim(r io.Reader, nameToID map[string]int) error {
	byRead, err := readIntervalGFF(r, nameToID)
	if err != nil {
		return errors.Wrap(err, "track store: load trim")
	}
	for id, ivs := range byRead {
		if len(ivs) > 0 {
			ts.trim[id] = ivs[0]
		}
	}
	return nil
}

// LoadConvert reads a GFF interval file as a named convert track.
func (ts *FileTrackStore) LoadConvert(name string, r io.Reader, nameToID map[string]int) error {
	byRead, err := readIntervalGFF(r, nameToID)
	if err != nil {
		return errors.Wrapf(err, "track store: load convert track %q", name)
	}
	ts.convert[name] = byRead
	return nil
}

func readIntervalGFF(r io.Reader, nameToID map[string]int) (map[int][]track.Interval, error) {
	byRead := make(map[int][]track.Interval)
	sc := featio.NewScanner(gff.NewReader(r))
	for sc.Next() {
		f, ok := sc.Feat().(*gff.Feature)
		if !ok {
			continue
		}
		id, ok := nameToID[f.SeqName]
		if !ok {
			continue
		}
		byRead[id] = append(byRead[id], track.Interval{Begin: f.FeatStart, End: f.FeatEnd})
	}
	if sc.Error() != nil {
		return nil, sc.Error()
	}
	return byRead, nil
}
