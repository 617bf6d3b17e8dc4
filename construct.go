// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import "unsafe"

// New allocates a fresh, owned Buf of length n from the default heap. Its
// window and limits both start out as [0, n). It panics if n exceeds
// MaxBufferLen - this is a programming error, not a recoverable condition,
// per the package's error handling design.
func New(n int) Buf {
	return NewWithAllocator(n, nil)
}

// NewWithAllocator is New, drawing the backing allocation from allocator
// instead of the default heap. A nil allocator means the default heap.
func NewWithAllocator(n int, allocator Allocator) Buf {
	if n < 0 || uint64(n) > uint64(MaxBufferLen) {
		abortOverflow(uint64(n))
	}

	buf, err := allocateHeader(n, allocator)
	if err != nil {
		panic(err)
	}

	return Buf{
		buf:           buf,
		loMinAndOwned: ownedMask,
		lo:            0,
		hi:            uint32(n),
		hiMax:         uint32(n),
	}
}

// Empty returns a valid, zero-length, unowned Buf. It is the zero value of
// Buf and is provided as a named constructor for readability at call sites.
func Empty() Buf {
	return Buf{}
}

// FromSlice returns a borrowed Buf that zero-copy-aliases s. The returned
// Buf's usable lifetime is bounded by the caller keeping s (or whatever it
// in turn aliases) alive; this package has no way to enforce that and, per
// spec, a borrowed Buf carries no header and no refcount.
func FromSlice(s []byte) Buf {
	if uint64(len(s)) > uint64(MaxBufferLen) {
		abortOverflow(uint64(len(s)))
	}
	var buf unsafe.Pointer
	if len(s) > 0 {
		buf = unsafe.Pointer(&s[0])
	}
	return Buf{
		buf:   buf,
		lo:    0,
		hi:    uint32(len(s)),
		hiMax: uint32(len(s)),
	}
}

// FromString is FromSlice over the bytes of s.
func FromString(s string) Buf {
	return FromSlice(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// FromSliceCopy allocates a fresh, owned Buf from the default heap and
// copies s into it.
func FromSliceCopy(s []byte) Buf {
	return FromSliceCopyWithAllocator(s, nil)
}

// FromSliceCopyWithAllocator is FromSliceCopy, drawing the backing
// allocation from allocator instead of the default heap.
func FromSliceCopyWithAllocator(s []byte, allocator Allocator) Buf {
	b := NewWithAllocator(len(s), allocator)
	if len(s) > 0 {
		copyBytes(b.buf, unsafe.Pointer(&s[0]), len(s))
	}
	return b
}

// FromStringCopy is FromSliceCopy over the bytes of s.
func FromStringCopy(s string) Buf {
	return FromSliceCopy(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// DeepClone allocates a fresh, owned Buf covering the same limits as b
// (not just b's current window), copies those bytes, and preserves b's
// window offsets relative to loMin. Unlike CloneAtomic/CloneNonatomic, the
// result shares nothing with b: it is a new allocation with its own
// refcount.
func DeepClone(b *Buf) Buf {
	return DeepCloneWithAllocator(b, nil)
}

// DeepCloneWithAllocator is DeepClone, drawing the fresh allocation from
// allocator instead of the default heap.
func DeepCloneWithAllocator(b *Buf, allocator Allocator) Buf {
	limits := b.AsLimitSlice()
	out := FromSliceCopyWithAllocator(limits, allocator)
	loMin := b.LoMin()
	out.lo = b.lo - loMin
	out.hi = b.hi - loMin
	return out
}
