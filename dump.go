// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"fmt"
	"io"

	"modernc.org/mathutil"
)

// addrDigits picks the number of hex digits wide enough to print every
// offset up to n-1: 2/4/6/8 digits for totals up to 256/64K/16M/beyond.
func addrDigits(n uint32) int {
	switch {
	case n <= 1<<8:
		return 2
	case n <= 1<<16:
		return 4
	case n <= 1<<24:
		return 6
	default:
		return 8
	}
}

// hexGroup renders up to n bytes of b as space-separated "%02x" pairs,
// padding any missing trailing bytes with two spaces each so short lines
// still line up in a column.
func hexGroup(b []byte, n int) string {
	out := make([]byte, 0, n*3)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		if i < len(b) {
			out = append(out, fmt.Sprintf("%02x", b[i])...)
		} else {
			out = append(out, ' ', ' ')
		}
	}
	return string(out)
}

// asciiGroup renders up to n bytes of b as ASCII, substituting '.' for any
// byte outside [32, 126) and a space for a missing trailing byte.
func asciiGroup(b []byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		switch {
		case i >= len(b):
			out[i] = ' '
		case b[i] < 32 || b[i] >= 126:
			out[i] = '.'
		default:
			out[i] = b[i]
		}
	}
	return string(out)
}

// Show writes a hex+ASCII dump of the current window to w, with tag as a
// label on the first line. Each line covers up to 8 bytes of the window,
// split into [0,4) rendered as hex then ASCII and [4,8) rendered as ASCII
// then hex (mirrored) - "ADDR:  HH HH HH HH  AAAA  AAAA  HH HH HH HH\n" -
// per the §6 stability contract. ADDR is the chunk's offset from the
// window start, not a raw pointer value, so the dump is stable across runs
// and safe to paste into a bug report. Exact inter-column whitespace on a
// short trailing line is cosmetic and not part of the stability contract.
func (b *Buf) Show(w io.Writer, tag string) error {
	data := b.AsWindowSlice()
	digits := addrDigits(uint32(mathutil.Max(len(data), 1)))

	if tag != "" {
		if _, err := fmt.Fprintf(w, "%s: %d byte(s)\n", tag, len(data)); err != nil {
			return err
		}
	}

	for off := 0; off < len(data); off += 8 {
		end := off + 8
		if end > len(data) {
			end = len(data)
		}
		line := data[off:end]

		var first, second []byte
		if len(line) > 4 {
			first, second = line[:4], line[4:]
		} else {
			first = line
		}

		_, err := fmt.Fprintf(w, "%0*x:  %s  %s  %s  %s\n",
			digits, off,
			hexGroup(first, 4), asciiGroup(first, 4),
			asciiGroup(second, 4), hexGroup(second, 4))
		if err != nil {
			return err
		}
	}
	return nil
}
