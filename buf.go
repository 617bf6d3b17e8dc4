// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"fmt"
	"unsafe"
)

// ownedMask is the high bit of loMinAndOwned: when set, buf is owned and
// the three words before it are a live allocationHeader.
const ownedMask uint32 = 1 << 31

// Buf is a handle onto a byte range drawn from a shared backing allocation.
// It describes a window [lo, hi) within limits [loMin, hiMax); limits only
// ever narrow. Buf is a plain value type - copying the struct duplicates the
// handle without touching any refcount, so a Buf MUST be moved with intent:
// use CloneAtomic/CloneNonatomic to produce a second live handle onto the
// same allocation, and DropAtomic/DropNonatomic exactly once per handle
// (including the original) when done with it. This package cannot enforce
// that discipline at compile time; see the package doc for the contract.
//
// The zero Buf is Empty(): a valid, zero-length, unowned handle.
type Buf struct {
	buf           unsafe.Pointer
	loMinAndOwned uint32
	lo            uint32
	hi            uint32
	hiMax         uint32
}

// LoMin returns the inclusive lower limit.
func (b *Buf) LoMin() uint32 {
	return b.loMinAndOwned &^ ownedMask
}

func (b *Buf) setLoMin(v uint32) {
	if debugChecks && v > uint32(MaxBufferLen) {
		panic(fmt.Sprintf("iobuf: new loMin out of range (max=%#x): %#x", uint32(MaxBufferLen), v))
	}
	b.loMinAndOwned = (b.loMinAndOwned & ownedMask) | v
}

// Lo returns the window's inclusive start.
func (b *Buf) Lo() uint32 { return b.lo }

// Hi returns the window's exclusive end.
func (b *Buf) Hi() uint32 { return b.hi }

// HiMax returns the limits' exclusive upper bound.
func (b *Buf) HiMax() uint32 { return b.hiMax }

// Ptr returns the address of byte 0 of the data region (not of the window -
// use AsWindowSlice to read/write through the window). It is provided for
// callers that need to hand the buffer to a syscall (readv/writev, a pinned
// DMA descriptor) without going through a []byte header.
func (b *Buf) Ptr() unsafe.Pointer { return b.buf }

// IsOwned reports whether this Buf carries a live allocationHeader and
// contributes to its refcount.
func (b *Buf) IsOwned() bool {
	return b.loMinAndOwned&ownedMask != 0
}

// Len returns the number of bytes in the current window.
func (b *Buf) Len() uint32 { return b.hi - b.lo }

// Cap returns the number of bytes in the full limits.
func (b *Buf) Cap() uint32 { return b.hiMax - b.LoMin() }

// IsEmpty reports whether the window is empty.
func (b *Buf) IsEmpty() bool { return b.hi == b.lo }

// LoSpace returns how many bytes lie between loMin and the window start.
func (b *Buf) LoSpace() uint32 { return b.lo - b.LoMin() }

// HiSpace returns how many bytes lie between the window end and hiMax.
func (b *Buf) HiSpace() uint32 { return b.hiMax - b.hi }

func (b *Buf) header() *allocationHeader {
	if !b.IsOwned() {
		return nil
	}
	return headerOf(b.buf)
}

// String renders a short one-line summary: length, capacity, and ownership.
// Use Show for the full hex+ASCII dump.
func (b *Buf) String() string {
	kind := "borrowed"
	if b.IsOwned() {
		kind = "owned"
	}
	return fmt.Sprintf("Buf{len=%d cap=%d %s}", b.Len(), b.Cap(), kind)
}

// byteAt returns a pointer to the byte at window offset pos, i.e. absolute
// offset b.lo+pos from b.buf.
func (b *Buf) byteAt(pos uint32) *byte {
	return (*byte)(unsafe.Add(b.buf, int(b.lo)+int(pos)))
}

// AsPtr returns the address of byte 0 of the current window (Lo(), not the
// data region base - see Ptr for that). It is for FFI-adjacent callers that
// want to hand the window to a syscall (ReadAt/WriteAt, readv/writev)
// without going through a []byte header.
func (b *Buf) AsPtr() unsafe.Pointer {
	return unsafe.Pointer(b.byteAt(0))
}

// AsMutPtr is AsPtr; the pointer returned is identical, the same relationship
// AsWindowSlice/AsMutWindowSlice have. It exists so a call site can document
// write intent even though Go draws no const distinction on unsafe.Pointer.
func (b *Buf) AsMutPtr() unsafe.Pointer {
	return b.AsPtr()
}

// AsWindowSlice returns a read-only view of the current window. The slice
// aliases the backing allocation; it is only valid as long as b (or some
// handle sharing its allocation) is kept alive.
func (b *Buf) AsWindowSlice() []byte {
	if b.hi == b.lo {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Add(b.buf, int(b.lo))), int(b.hi-b.lo))
}

// AsMutWindowSlice is AsWindowSlice, writable. Nothing stops a caller from
// handing out two overlapping mutable slices over the same allocation at
// once; that discipline is on the caller, same as with a raw pointer.
func (b *Buf) AsMutWindowSlice() []byte {
	return b.AsWindowSlice()
}

// AsLimitSlice returns a read-only view of the full limits [loMin, hiMax),
// ignoring the current window. DeepClone uses this to copy everything a Buf
// could ever see, not just what it currently sees.
func (b *Buf) AsLimitSlice() []byte {
	loMin := b.LoMin()
	if b.hiMax == loMin {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Add(b.buf, int(loMin))), int(b.hiMax-loMin))
}
