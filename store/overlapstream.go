// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"
	"github.com/pkg/errors"

	"github.com/wolf2407/marvel/fix/overlap"
)

// FileOverlapStream reads the native text overlap format: one line per
// overlap record,
//
//	aread bread comp abpos aepos bbpos bepos d0:w0,d1:w1,...
//
// comp is "0" or "1", and the trailing field is the trace, a
// comma-separated list of diffs:b-consumed pairs. Lines are expected
// pre-sorted by A-read, then by B-read and A-start within each A-read
// (the order overlap.SortGroup produces), matching the convention
// LAfix.c's caller (LAsort/LAmerge) establishes upstream.
//
// The field-splitting and strconv idiom mirrors loopy.go's
// newBlasrHit text-hit parser.
type FileOverlapStream struct {
	sc      *bufio.Scanner
	pending *overlap.Overlap
	done    bool
}

// NewFileOverlapStream wraps r as a FileOverlapStream.
func NewFileOverlapStream(r io.Reader) *FileOverlapStream {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &FileOverlapStream{sc: sc}
}

// Next returns the complete overlap group of the next A-read.
func (fs *FileOverlapStream) Next() (overlap.Group, bool, error) {
	if fs.done {
		return overlap.Group{}, false, nil
	}

	var ovls []overlap.Overlap
	if fs.pending != nil {
		ovls = append(ovls, *fs.pending)
		fs.pending = nil
	}

	for fs.sc.Scan() {
		line := strings.TrimSpace(fs.sc.Text())
		if line == "" {
			continue
		}
		o, err := parseOverlapLine(line)
		if err != nil {
			return overlap.Group{}, false, errors.Wrap(err, "overlap stream: parse line")
		}
		if len(ovls) > 0 && o.ARead != ovls[0].ARead {
			fs.pending = &o
			return overlap.NewGroup(ovls[0].ARead, ovls), true, nil
		}
		ovls = append(ovls, o)
	}
	if err := fs.sc.Err(); err != nil {
		return overlap.Group{}, false, errors.Wrap(err, "overlap stream: scan")
	}

	fs.done = true
	if len(ovls) == 0 {
		return overlap.Group{}, false, nil
	}
	return overlap.NewGroup(ovls[0].ARead, ovls), true, nil
}

// Close is a no-op: FileOverlapStream does not own r.
func (fs *FileOverlapStream) Close() error { return nil }

func parseOverlapLine(line string) (overlap.Overlap, error) {
	fields := strings.Fields(line)
	if len(fields) < 7 {
		return overlap.Overlap{}, errors.Errorf("short overlap record: %q", line)
	}

	var o overlap.Overlap
	var err error
	if o.ARead, err = strconv.Atoi(fields[0]); err != nil {
		return o, err
	}
	if o.BRead, err = strconv.Atoi(fields[1]); err != nil {
		return o, err
	}
	comp, err := strconv.Atoi(fields[2])
	if err != nil {
		return o, err
	}
	o.Comp = comp != 0
	if o.ABpos, err = strconv.Atoi(fields[3]); err != nil {
		return o, err
	}
	if o.AEpos, err = strconv.Atoi(fields[4]); err != nil {
		return o, err
	}
	if o.BBpos, err = strconv.Atoi(fields[5]); err != nil {
		return o, err
	}
	if o.BEpos, err = strconv.Atoi(fields[6]); err != nil {
		return o, err
	}
	if len(fields) > 7 {
		o.Trace, err = parseTrace(fields[7])
		if err != nil {
			return o, err
		}
	}
	return o, nil
}

func parseTrace(s string) ([]overlap.TracePoint, error) {
	parts := strings.Split(s, ",")
	trace := make([]overlap.TracePoint, 0, len(parts))
	for _, p := range parts {
		dw := strings.SplitN(p, ":", 2)
		if len(dw) != 2 {
			return nil, errors.Errorf("malformed trace point: %q", p)
		}
		d, err := strconv.Atoi(dw[0])
		if err != nil {
			return nil, err
		}
		w, err := strconv.Atoi(dw[1])
		if err != nil {
			return nil, err
		}
		trace = append(trace, overlap.TracePoint{Diffs: d, BConsumed: w})
	}
	return trace, nil
}

// TraceFromCIGAR converts a BAM/SAM CIGAR (sam.Cigar) into the
// diffs/b-consumed trace LAfix expects, for overlaps derived from a
// CIGAR-bearing alignment record rather than a DAZZLER .las file. No
// command or stream in this module calls it; FileOverlapStream reads
// only the native text format. Each non-deletion, non-clip operation
// contributes one trace point whose BConsumed is the number of query
// (B) bases it
// consumes; Diffs is left 0, since CIGAR alone does not separate
// matches from mismatches.
//
// This mirrors reefer.go's walk of r.Cigar into a per-position cost
// trace, adapted here to produce per-operation B-consumption instead
// of a per-base cost curve.
func TraceFromCIGAR(cigar sam.Cigar) []overlap.TracePoint {
	trace := make([]overlap.TracePoint, 0, len(cigar))
	for _, co := range cigar {
		consumes := co.Type().Consumes()
		if consumes.Query == 0 || co.Type() == sam.CigarSoftClipped {
			continue
		}
		trace = append(trace, overlap.TracePoint{BConsumed: co.Len() * consumes.Query})
	}
	return trace
}
