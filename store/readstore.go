// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// FileReadStore is a ReadStore backed by an in-memory FASTA corpus,
// read in full with biogo/biogo/io/seqio/fasta the way loopy.go reads
// its input read files.
type FileReadStore struct {
	bases [][]byte
	index map[string]int
}

// NewFileReadStore reads every record of r as DNA and returns a
// ReadStore indexing them in file order: the nth record read becomes
// read id n.
func NewFileReadStore(r io.Reader) (*FileReadStore, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))

	fr := &FileReadStore{index: make(map[string]int)}
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, errors.New("read store: unexpected sequence type")
		}
		b := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			b[i] = byte(l)
		}
		fr.index[s.Name()] = len(fr.bases)
		fr.bases = append(fr.bases, b)
	}
	if sc.Error() != nil {
		return nil, errors.Wrap(sc.Error(), "read store: scan fasta")
	}
	return fr, nil
}

// Bases returns the raw bases of read.
func (fr *FileReadStore) Bases(read int) []byte { return fr.bases[read] }

// Len returns the length of read.
func (fr *FileReadStore) Len(read int) int { return len(fr.bases[read]) }

// NumReads reports how many reads were loaded.
func (fr *FileReadStore) NumReads() int { return len(fr.bases) }

// ID returns the read id assigned to a FASTA record by name, for
// callers that need to go from header name to id.
func (fr *FileReadStore) ID(name string) (int, bool) {
	id, ok := fr.index[name]
	return id, ok
}

// Index returns the full name->id mapping, used to resolve track files
// (keyed by read name) against this store's read ids.
func (fr *FileReadStore) Index() map[string]int { return fr.index }
