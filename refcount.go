// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

// CloneAtomic returns a new handle onto the same allocation as b, bumping
// the refcount with an atomic increment. The clone and b (and every
// other handle sharing this allocation) MUST all use the atomic discipline
// for the rest of the allocation's life.
func (b *Buf) CloneAtomic() Buf {
	if h := b.header(); h != nil {
		h.incRefAtomic()
	}
	return *b
}

// CloneNonatomic is CloneAtomic under the nonatomic discipline: a plain
// increment, valid only when this allocation never crosses a goroutine
// boundary.
func (b *Buf) CloneNonatomic() Buf {
	if h := b.header(); h != nil {
		h.incRefNonatomic()
	}
	return *b
}

// CloneFromAtomic makes b an atomic clone of source. If b and source
// already share the same allocation and ownership, it just copies the
// cursor fields - no refcount traffic, and a no-op when source is b itself.
// Otherwise it increments source's refcount, decrements (and possibly
// frees) b's old allocation, and then copies the cursors.
func (b *Buf) CloneFromAtomic(source *Buf) {
	if b.buf != source.buf || b.IsOwned() != source.IsOwned() {
		cloneFromFixRefcounts(b, source, true)
	}
	b.loMinAndOwned = source.loMinAndOwned
	b.lo = source.lo
	b.hi = source.hi
	b.hiMax = source.hiMax
	b.buf = source.buf
}

// CloneFromNonatomic is CloneFromAtomic under the nonatomic discipline.
func (b *Buf) CloneFromNonatomic(source *Buf) {
	if b.buf != source.buf || b.IsOwned() != source.IsOwned() {
		cloneFromFixRefcounts(b, source, false)
	}
	b.loMinAndOwned = source.loMinAndOwned
	b.lo = source.lo
	b.hi = source.hi
	b.hiMax = source.hiMax
	b.buf = source.buf
}

// cloneFromFixRefcounts bumps source's refcount and drops b's old one,
// freeing b's old allocation if that was the last reference. Kept out of
// line, as in the original source, to guide inlining of the common
// (same-allocation) CloneFromAtomic/CloneFromNonatomic path.
func cloneFromFixRefcounts(b, source *Buf, atomic bool) {
	if h := source.header(); h != nil {
		if atomic {
			h.incRefAtomic()
		} else {
			h.incRefNonatomic()
		}
	}

	oldBuf := b.buf
	if h := b.header(); h != nil {
		var last bool
		if atomic {
			last = h.decRefAtomic()
		} else {
			last = h.decRefNonatomic()
		}
		if last {
			h.pendingDeallocation(oldBuf).free()
		}
	}
}

// DropAtomic releases b's reference to its allocation, decrementing the
// refcount atomically and freeing the allocation if this was the last
// reference (see header.go's note on the sequentially consistent ordering
// used in place of a release decrement and acquire fence). Calling it on a borrowed or empty Buf is a no-op.
// b must not be used again afterwards except to overwrite it.
func (b *Buf) DropAtomic() {
	if h := b.header(); h != nil {
		if h.decRefAtomic() {
			h.pendingDeallocation(b.buf).free()
		}
	}
	b.loMinAndOwned &^= ownedMask // prevent a double-free on a stray second Drop
}

// DropNonatomic is DropAtomic under the nonatomic discipline.
func (b *Buf) DropNonatomic() {
	if h := b.header(); h != nil {
		if h.decRefNonatomic() {
			h.pendingDeallocation(b.buf).free()
		}
	}
	b.loMinAndOwned &^= ownedMask
}

// IsUniqueAtomic reports whether b is the only live handle onto its
// allocation, loaded atomically. A borrowed or empty Buf is never unique in
// this sense (it has no refcount to check) and returns false.
func (b *Buf) IsUniqueAtomic() bool {
	h := b.header()
	return h != nil && h.refcountAtomic() == 1
}

// IsUniqueNonatomic is IsUniqueAtomic with a plain (non-atomic) load.
func (b *Buf) IsUniqueNonatomic() bool {
	h := b.header()
	return h != nil && h.refcountNonatomic() == 1
}
