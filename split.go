// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

// SplitAtAtomic splits b into two handles sharing b's allocation under the
// atomic refcount discipline: a covers [lo, lo+pos) and c covers [lo+pos,
// hi); both inherit b's full limits. b itself is left unmodified. The
// refcount is bumped by 2, one for each returned handle.
func (b *Buf) SplitAtAtomic(pos uint32) (a, c Buf, ok bool) {
	if !b.CheckRange(uint64(pos), 0) {
		return Buf{}, Buf{}, false
	}
	a, c = b.SplitAtAtomicUnchecked(pos)
	return a, c, true
}

// SplitAtAtomicUnchecked is SplitAtAtomic without the bounds check.
func (b *Buf) SplitAtAtomicUnchecked(pos uint32) (a, c Buf) {
	b.debugCheckRange(pos, 0)
	a = b.CloneAtomic()
	c = b.CloneAtomic()
	a.ResizeUnchecked(pos)
	c.AdvanceUnchecked(pos)
	return a, c
}

// SplitAtNonatomic is SplitAtAtomic under the nonatomic discipline.
func (b *Buf) SplitAtNonatomic(pos uint32) (a, c Buf, ok bool) {
	if !b.CheckRange(uint64(pos), 0) {
		return Buf{}, Buf{}, false
	}
	a, c = b.SplitAtNonatomicUnchecked(pos)
	return a, c, true
}

// SplitAtNonatomicUnchecked is SplitAtNonatomic without the bounds check.
func (b *Buf) SplitAtNonatomicUnchecked(pos uint32) (a, c Buf) {
	b.debugCheckRange(pos, 0)
	a = b.CloneNonatomic()
	c = b.CloneNonatomic()
	a.ResizeUnchecked(pos)
	c.AdvanceUnchecked(pos)
	return a, c
}

// SplitStartAtAtomic mutates b to cover [lo+pos, hi) and returns a new
// handle covering [lo, lo+pos), bumping the refcount by 1.
func (b *Buf) SplitStartAtAtomic(pos uint32) (head Buf, ok bool) {
	if !b.CheckRange(uint64(pos), 0) {
		return Buf{}, false
	}
	return b.SplitStartAtAtomicUnchecked(pos), true
}

// SplitStartAtAtomicUnchecked is SplitStartAtAtomic without the bounds check.
func (b *Buf) SplitStartAtAtomicUnchecked(pos uint32) Buf {
	b.debugCheckRange(pos, 0)
	head := b.CloneAtomic()
	head.ResizeUnchecked(pos)
	b.AdvanceUnchecked(pos)
	return head
}

// SplitStartAtNonatomic is SplitStartAtAtomic under the nonatomic
// discipline.
func (b *Buf) SplitStartAtNonatomic(pos uint32) (head Buf, ok bool) {
	if !b.CheckRange(uint64(pos), 0) {
		return Buf{}, false
	}
	return b.SplitStartAtNonatomicUnchecked(pos), true
}

// SplitStartAtNonatomicUnchecked is SplitStartAtNonatomic without the
// bounds check.
func (b *Buf) SplitStartAtNonatomicUnchecked(pos uint32) Buf {
	b.debugCheckRange(pos, 0)
	head := b.CloneNonatomic()
	head.ResizeUnchecked(pos)
	b.AdvanceUnchecked(pos)
	return head
}
