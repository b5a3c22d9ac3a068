// Copyright ©2024 The MARVEL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sequtil provides the base-complement and reverse-complement
// primitives the core assumes are available from an external SeqOps
// utility (spec.md §1).
package sequtil

import "github.com/biogo/biogo/alphabet"

// complement maps each letter of alphabet.DNA (and the ambiguity code
// N) to its Watson-Crick partner.
var complement = buildComplementTable()

// buildComplementTable installs a Watson-Crick pairing only for bytes
// alphabet.DNA.IndexOf actually recognizes as members of the DNA
// alphabet, the same validity check pwmscan's base-counting loop
// applies to each column letter before using it.
func buildComplementTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	pairs := []struct{ a, b byte }{
		{'a', 't'}, {'c', 'g'},
		{'A', 'T'}, {'C', 'G'},
	}
	for _, p := range pairs {
		if alphabet.DNA.IndexOf(alphabet.Letter(p.a)) < 0 || alphabet.DNA.IndexOf(alphabet.Letter(p.b)) < 0 {
			continue
		}
		t[p.a], t[p.b] = p.b, p.a
	}
	t['n'], t['N'] = 'n', 'N'
	return t
}

// Complement returns the Watson-Crick complement of b.
func Complement(b byte) byte { return complement[b] }

// ReverseComplement returns a new slice holding the reverse complement
// of seq. seq is not modified.
func ReverseComplement(seq []byte) []byte {
	out := make([]byte, len(seq))
	n := len(seq)
	for i, b := range seq {
		out[n-1-i] = Complement(b)
	}
	return out
}

// Reverse returns a new slice holding seq reversed, without
// complementing — the transform applied to a quality-value stream
// under a COMP patch, which is reversed but never complemented.
func Reverse(seq []byte) []byte {
	out := make([]byte, len(seq))
	n := len(seq)
	for i, b := range seq {
		out[n-1-i] = b
	}
	return out
}
