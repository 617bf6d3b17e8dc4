// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestAdvanceAndExtend(t *testing.T) {
	b := New(12)
	defer b.DropNonatomic()
	b.ResizeUnchecked(10) // window [0,10) within limits [0,12)

	if !b.Advance(3) {
		t.Fatal("Advance(3) failed on a 10-byte window")
	}
	if g, e := b.Len(), uint32(7); g != e {
		t.Fatalf("Len() = %d, want %d", g, e)
	}
	if b.Advance(8) {
		t.Fatal("Advance(8) should fail: only 7 bytes left")
	}

	if !b.Extend(2) {
		t.Fatal("Extend(2) failed with room in hiMax")
	}
	if g, e := b.Len(), uint32(9); g != e {
		t.Fatalf("Len() = %d, want %d", g, e)
	}
	if b.Extend(5) {
		t.Fatal("Extend(5) should fail: would cross hiMax")
	}
}

func TestResize(t *testing.T) {
	b := New(10)
	defer b.DropNonatomic()

	if !b.Resize(4) {
		t.Fatal("Resize(4) failed")
	}
	if g, e := b.Len(), uint32(4); g != e {
		t.Fatalf("Len() = %d, want %d", g, e)
	}
	if b.Resize(11) {
		t.Fatal("Resize(11) should fail: exceeds hiMax from lo=0")
	}
}

func TestRewindResetFlip(t *testing.T) {
	b := New(10)
	defer b.DropNonatomic()

	b.AdvanceUnchecked(4)
	b.ResizeUnchecked(2) // window [4,6)

	b.Rewind()
	if g, e := b.Lo(), uint32(0); g != e {
		t.Fatalf("after Rewind, Lo() = %d, want %d", g, e)
	}
	if g, e := b.Hi(), uint32(6); g != e {
		t.Fatalf("after Rewind, Hi() = %d, want %d", g, e)
	}

	b.Reset()
	if g, e := b.Len(), uint32(10); g != e {
		t.Fatalf("after Reset, Len() = %d, want %d", g, e)
	}

	b.AdvanceUnchecked(4)
	b.ResizeUnchecked(2) // window [4,6)
	flipped := b
	flipped.FlipLo()
	if g, e := flipped.Lo(), uint32(0); g != e {
		t.Fatalf("FlipLo: Lo() = %d, want %d", g, e)
	}
	if g, e := flipped.Hi(), uint32(4); g != e {
		t.Fatalf("FlipLo: Hi() = %d, want %d", g, e)
	}

	flipped2 := b
	flipped2.FlipHi()
	if g, e := flipped2.Lo(), uint32(6); g != e {
		t.Fatalf("FlipHi: Lo() = %d, want %d", g, e)
	}
	if g, e := flipped2.Hi(), uint32(10); g != e {
		t.Fatalf("FlipHi: Hi() = %d, want %d", g, e)
	}
}

func TestNarrowIdempotent(t *testing.T) {
	b := New(10)
	defer b.DropNonatomic()

	b.SubWindowUnchecked(2, 4) // window [2,6)
	b.Narrow()
	loMin1, hiMax1 := b.LoMin(), b.HiMax()

	b.Narrow()
	if b.LoMin() != loMin1 || b.HiMax() != hiMax1 {
		t.Fatal("Narrow is not idempotent")
	}
	if g, e := b.Cap(), uint32(4); g != e {
		t.Fatalf("Cap() after Narrow = %d, want %d", g, e)
	}
}

func TestSubVariants(t *testing.T) {
	b := New(10)
	defer b.DropNonatomic()

	c := b
	if !c.SubWindow(2, 4) {
		t.Fatal("SubWindow(2,4) failed")
	}
	if g, e := c.Len(), uint32(4); g != e {
		t.Fatalf("Len() = %d, want %d", g, e)
	}
	if g, e := c.Cap(), uint32(10); g != e {
		t.Fatalf("SubWindow must not touch limits: Cap() = %d, want %d", g, e)
	}

	d := b
	if !d.Sub(2, 4) {
		t.Fatal("Sub(2,4) failed")
	}
	if g, e := d.Cap(), uint32(4); g != e {
		t.Fatalf("Sub must narrow limits: Cap() = %d, want %d", g, e)
	}

	e := b
	if e.SubWindow(8, 4) {
		t.Fatal("SubWindow(8,4) should fail: out of range")
	}
}

func TestCompactPreservesContents(t *testing.T) {
	b := FromSliceCopy([]byte("0123456789"))
	defer b.DropNonatomic()

	b.AdvanceUnchecked(4) // window "456789"
	b.ResizeUnchecked(3)  // window "456"

	b.Compact()

	// Compact shifts the preserved bytes down to loMin and hands the rest
	// of the capacity to the window for further writes; the preserved
	// bytes themselves sit behind the new lo and are read back via FlipLo.
	behind := b
	behind.FlipLo()
	if g, e := string(behind.AsWindowSlice()), "456"; g != e {
		t.Fatalf("Compact: preserved region = %q, want %q", g, e)
	}
	if g, e := b.Lo(), uint32(3); g != e {
		t.Fatalf("Compact: Lo() = %d, want %d", g, e)
	}
	if g, e := b.Hi(), b.HiMax(); g != e {
		t.Fatalf("Compact: Hi() = %d, want HiMax() = %d", g, e)
	}
}

func TestSetLimitsAndWindow(t *testing.T) {
	b := New(10)
	defer b.DropNonatomic()

	if !b.SetLimitsAndWindow(2, 8, 3, 5) {
		t.Fatal("SetLimitsAndWindow should succeed narrowing within current limits")
	}
	if g, e := b.LoMin(), uint32(2); g != e {
		t.Fatalf("LoMin() = %d, want %d", g, e)
	}
	if g, e := b.HiMax(), uint32(8); g != e {
		t.Fatalf("HiMax() = %d, want %d", g, e)
	}

	if b.SetLimitsAndWindow(0, 8, 3, 5) {
		t.Fatal("SetLimitsAndWindow should reject widening loMin below current")
	}
	if b.SetLimitsAndWindow(2, 9, 3, 5) {
		t.Fatal("SetLimitsAndWindow should reject widening hiMax above current")
	}
	if b.SetLimitsAndWindow(2, 8, 1, 5) {
		t.Fatal("SetLimitsAndWindow should reject a window outside the new limits")
	}
}

func TestExtendWithContiguous(t *testing.T) {
	b := New(10)
	defer b.DropNonatomic()

	head, ok := b.SplitStartAtNonatomic(4)
	if !ok {
		t.Fatal("SplitStartAtNonatomic(4) failed")
	}
	defer head.DropNonatomic()

	if !head.IsExtendedBy(&b) {
		t.Fatal("head should be extendable by the remainder after a split")
	}
	if !head.ExtendWith(&b) {
		t.Fatal("ExtendWith should succeed for a contiguous split")
	}
	if g, e := head.Len(), uint32(10); g != e {
		t.Fatalf("after ExtendWith, Len() = %d, want %d", g, e)
	}
}

func TestRandomizedCheckedRangeNeverCorrupts(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	data := make([]byte, 64)
	rnd.Read(data)

	b := FromSliceCopy(data)
	defer b.DropNonatomic()

	for i := 0; i < 2000; i++ {
		pos := uint32(rnd.Intn(80))
		n := uint32(rnd.Intn(80))
		before := b
		ok := b.SubWindow(pos, n)
		if !ok {
			if b != before {
				t.Fatalf("failed SubWindow(%d,%d) mutated b: before=%+v after=%+v", pos, n, before, b)
			}
			continue
		}
		if b.Len() != n {
			t.Fatalf("SubWindow(%d,%d): Len() = %d, want %d", pos, n, b.Len(), n)
		}
		b = before
	}
}

func TestCompactAfterFullConsume(t *testing.T) {
	src := bytes.Repeat([]byte{0xAB}, 32)
	b := FromSliceCopy(src)
	defer b.DropNonatomic()

	b.AdvanceUnchecked(32)
	b.Compact()
	if g, e := b.Len(), uint32(32); g != e {
		t.Fatalf("Len() after Compact on fully-consumed buf = %d, want %d", g, e)
	}
	if g, e := b.LoSpace(), uint32(0); g != e {
		t.Fatalf("LoSpace() after Compact = %d, want %d", g, e)
	}
}
