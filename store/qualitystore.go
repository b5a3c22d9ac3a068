// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// FileQualityStore is a QVStore assembled from a sibling `.qv` text
// file: one record per read, a ">name" header line followed by
// NumQVStreams() lines of equal-length QV bytes (one line per stream),
// the same sibling-track convention FileTrackStore's Q/dust/trim/
// convert loaders use, extended to a fixed-width record per read
// instead of one line.
type FileQualityStore struct {
	streams int
	qv      map[int][][]byte
}

// NewFileQualityStore returns an empty store; use Load to populate it.
func NewFileQualityStore() *FileQualityStore {
	return &FileQualityStore{qv: make(map[int][][]byte)}
}

// NumQVStreams reports the number of QV streams every loaded read
// carries, or 0 if nothing has been loaded yet.
func (qs *FileQualityStore) NumQVStreams() int { return qs.streams }

// QV returns stream of read, or nil if read or stream is unknown.
func (qs *FileQualityStore) QV(read int, stream int) []byte {
	lines := qs.qv[read]
	if stream < 0 || stream >= len(lines) {
		return nil
	}
	return lines[stream]
}

// Load reads a QV-stream file, resolving read names to ids via
// nameToID, and records each read's per-stream byte slices. Every
// record must carry the same number of stream lines; Load fails on
// the first read whose count disagrees with the first record seen.
func (qs *FileQualityStore) Load(r io.Reader, nameToID map[string]int) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	haveRead := false
	var curID int
	var lines [][]byte

	flush := func() error {
		if !haveRead {
			return nil
		}
		if qs.streams == 0 {
			qs.streams = len(lines)
		} else if len(lines) != qs.streams {
			return errors.Errorf("quality store: read has %d QV streams, want %d", len(lines), qs.streams)
		}
		qs.qv[curID] = lines
		return nil
	}

	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			name := strings.TrimSpace(strings.TrimPrefix(line, ">"))
			id, ok := nameToID[name]
			haveRead = ok
			curID = id
			lines = nil
			continue
		}
		if !haveRead {
			continue
		}
		lines = append(lines, []byte(line))
	}
	if err := flush(); err != nil {
		return err
	}
	return errors.Wrap(sc.Err(), "quality store: scan QV track")
}
