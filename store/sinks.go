// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// FastaWriter is a FastaSink writing 60-column wrapped FASTA records,
// using biogo/biogo's "%60a" sequence verb the way cmd/bundle writes
// its bundled output.
type FastaWriter struct {
	w   *bufio.Writer
	out io.Closer
}

// NewFastaWriter wraps w. If w also implements io.Closer, Close closes
// it; otherwise Close only flushes.
func NewFastaWriter(w io.Writer) *FastaWriter {
	fw := &FastaWriter{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		fw.out = c
	}
	return fw
}

// WriteRecord writes one FASTA record: the header line verbatim
// (without a leading '>', which WriteRecord adds), then body wrapped
// at 60 columns.
func (fw *FastaWriter) WriteRecord(header string, body []byte) error {
	if _, err := fmt.Fprintf(fw.w, ">%s\n", header); err != nil {
		return err
	}
	s := linear.NewSeq("", alphabet.BytesToLetters(body), alphabet.DNA)
	_, err := fmt.Fprintf(fw.w, "%60a\n", s)
	return err
}

// Close flushes buffered output and closes the underlying writer, if
// it is closeable.
func (fw *FastaWriter) Close() error {
	if err := fw.w.Flush(); err != nil {
		return err
	}
	if fw.out != nil {
		return fw.out.Close()
	}
	return nil
}

// QualityWriter is a QualitySink writing the fastq-style quality
// record format of spec.md §6: a header line followed by one line per
// QV stream.
type QualityWriter struct {
	w   *bufio.Writer
	out io.Closer
}

// NewQualityWriter wraps w.
func NewQualityWriter(w io.Writer) *QualityWriter {
	qw := &QualityWriter{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		qw.out = c
	}
	return qw
}

// WriteRecord writes header, then one line per entry of streams.
func (qw *QualityWriter) WriteRecord(header string, streams [][]byte) error {
	if _, err := fmt.Fprintf(qw.w, "%s\n", header); err != nil {
		return err
	}
	for _, s := range streams {
		if _, err := qw.w.Write(s); err != nil {
			return err
		}
		if err := qw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered output and closes the underlying writer, if
// it is closeable.
func (qw *QualityWriter) Close() error {
	if err := qw.w.Flush(); err != nil {
		return err
	}
	if qw.out != nil {
		return qw.out.Close()
	}
	return nil
}
