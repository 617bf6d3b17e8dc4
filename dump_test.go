// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"bytes"
	"strings"
	"testing"
)

func TestShowMirroredEightByteLayout(t *testing.T) {
	// 16 bytes -> exactly two 8-byte lines, each split [0,4)/[4,8) per the
	// documented "ADDR:  HH HH HH HH  AAAA  AAAA  HH HH HH HH" format.
	b := FromSliceCopy([]byte("Hi there, iobuf!"))
	defer b.DropNonatomic()

	var out bytes.Buffer
	if err := b.Show(&out, "greeting"); err != nil {
		t.Fatalf("Show returned an error: %v", err)
	}

	want := "greeting: 16 byte(s)\n" +
		"00:  48 69 20 74  Hi t  here  68 65 72 65\n" +
		"08:  2c 20 69 6f  , io  buf!  62 75 66 21\n"
	if g := out.String(); g != want {
		t.Fatalf("Show output =\n%q\nwant\n%q", g, want)
	}
}

func TestShowTagless(t *testing.T) {
	b := FromSliceCopy([]byte{0x00, 0x1f, ' ', 0x7e})
	defer b.DropNonatomic()

	var out bytes.Buffer
	if err := b.Show(&out, ""); err != nil {
		t.Fatalf("Show returned an error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "00:") {
		t.Fatalf("Show with an empty tag should not print a label line: %q", out.String())
	}

	// Bytes outside [32, 126) must render as '.' in the ASCII column; a
	// short (<8 byte) line only fills the first half, the second half's
	// hex/ASCII groups stay blank.
	if g, e := out.String(), "00:  00 1f 20 7e  .. .  "; !strings.HasPrefix(g, e) {
		t.Fatalf("Show output = %q, want prefix %q", g, e)
	}
}

func TestShowEmptyBuf(t *testing.T) {
	b := Empty()
	var out bytes.Buffer
	if err := b.Show(&out, "empty"); err != nil {
		t.Fatalf("Show on an empty buf returned an error: %v", err)
	}
	if g, e := out.String(), "empty: 0 byte(s)\n"; g != e {
		t.Fatalf("Show on an empty buf = %q, want %q", g, e)
	}
}

func TestAddrDigitsTiers(t *testing.T) {
	cases := []struct {
		n    uint32
		want int
	}{
		{1, 2},
		{256, 2},
		{257, 4},
		{1 << 16, 4},
		{1<<16 + 1, 6},
		{1 << 24, 6},
		{1<<24 + 1, 8},
	}
	for _, c := range cases {
		if g := addrDigits(c.n); g != c.want {
			t.Errorf("addrDigits(%d) = %d, want %d", c.n, g, c.want)
		}
	}
}

func TestHexGroupAndASCIIGroupPadding(t *testing.T) {
	if g, e := hexGroup([]byte{0xAB}, 4), "ab         "; g != e {
		t.Fatalf("hexGroup short = %q, want %q", g, e)
	}
	if g, e := asciiGroup([]byte{0xAB}, 4), ".   "; g != e {
		t.Fatalf("asciiGroup short = %q, want %q", g, e)
	}
	if g, e := asciiGroup(nil, 4), "    "; g != e {
		t.Fatalf("asciiGroup empty = %q, want %q", g, e)
	}
}
