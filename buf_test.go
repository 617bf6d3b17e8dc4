// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"testing"
	"unsafe"
)

func TestLenCapSpacing(t *testing.T) {
	b := New(20)
	defer b.DropNonatomic()

	b.SubWindowUnchecked(5, 10) // window [5,15) within limits [0,20)

	if g, e := b.Len(), uint32(10); g != e {
		t.Fatalf("Len() = %d, want %d", g, e)
	}
	if g, e := b.Cap(), uint32(20); g != e {
		t.Fatalf("Cap() = %d, want %d", g, e)
	}
	if g, e := b.LoSpace(), uint32(5); g != e {
		t.Fatalf("LoSpace() = %d, want %d", g, e)
	}
	if g, e := b.HiSpace(), uint32(5); g != e {
		t.Fatalf("HiSpace() = %d, want %d", g, e)
	}
}

func TestStringDoesNotPanic(t *testing.T) {
	b := New(4)
	defer b.DropNonatomic()
	if b.String() == "" {
		t.Fatal("String() returned empty")
	}

	e := Empty()
	if e.String() == "" {
		t.Fatal("String() on Empty() returned empty")
	}
}

func TestIsEmpty(t *testing.T) {
	b := New(4)
	defer b.DropNonatomic()
	if b.IsEmpty() {
		t.Fatal("fresh buf should not be empty")
	}
	b.AdvanceUnchecked(4)
	if !b.IsEmpty() {
		t.Fatal("fully advanced buf should be empty")
	}
}

func TestPtrStableAcrossCursorMoves(t *testing.T) {
	b := New(4)
	defer b.DropNonatomic()

	p0 := b.Ptr()
	b.AdvanceUnchecked(2)
	if b.Ptr() != p0 {
		t.Fatal("Ptr() must be the data region base, independent of the window")
	}
}

func TestAsPtrTracksWindowUnlikePtr(t *testing.T) {
	b := New(4)
	defer b.DropNonatomic()

	if b.AsPtr() != b.AsMutPtr() {
		t.Fatal("AsPtr() and AsMutPtr() must return the same address")
	}

	base := b.Ptr()
	if b.AsPtr() != base {
		t.Fatal("AsPtr() should start out equal to Ptr() on a fresh window")
	}

	b.AdvanceUnchecked(2)
	want := unsafe.Pointer(uintptr(base) + 2)
	if b.AsPtr() != want {
		t.Fatalf("AsPtr() = %p, want %p (base + 2, tracking the window start)", b.AsPtr(), want)
	}
	if b.Ptr() != base {
		t.Fatal("Ptr() must stay at the data region base after AdvanceUnchecked")
	}
	if b.AsPtr() != b.AsMutPtr() {
		t.Fatal("AsPtr() and AsMutPtr() must still agree after the window moved")
	}
}
