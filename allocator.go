// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"fmt"
	"math/bits"
	"sync"
	"unsafe"
)

// Allocator is the custom-allocator contract a caller may plug into
// NewWithAllocator, FromSliceCopyWithAllocator or DeepCloneWithAllocator in
// place of the default heap. An Allocator MUST be safe
// for concurrent use: a single Allocator may back many Bufs, possibly
// cloned onto several goroutines under the atomic refcount discipline.
type Allocator interface {
	// Allocate returns size bytes aligned to align, or an error.
	Allocate(size, align int) (unsafe.Pointer, error)

	// Deallocate releases memory obtained from Allocate. size and align
	// MUST match the values passed to the Allocate call that produced p.
	Deallocate(p unsafe.Pointer, size, align int)
}

// DefaultAllocator draws every allocation straight from the Go heap via
// make([]byte, ...) and lets the garbage collector reclaim it; Deallocate is
// a no-op. New and NewWithAllocator(n, nil) are equivalent to
// NewWithAllocator(n, DefaultAllocator{}) - the nil case is handled directly
// in allocateHeader to avoid boxing a zero-size struct into every header,
// but DefaultAllocator is exported so a caller can pass it explicitly to an
// API that requires a non-nil Allocator.
type DefaultAllocator struct{}

// Allocate implements Allocator.
func (DefaultAllocator) Allocate(size, align int) (unsafe.Pointer, error) {
	if size < 0 {
		return nil, fmt.Errorf("iobuf: negative allocation size %d", size)
	}
	raw := make([]byte, size)
	if size == 0 {
		return nil, nil
	}
	return unsafe.Pointer(&raw[0]), nil
}

// Deallocate implements Allocator; it is a no-op, since the Go garbage
// collector owns memory obtained from Allocate.
func (DefaultAllocator) Deallocate(p unsafe.Pointer, size, align int) {}

// PooledAllocator recycles arenas by power-of-two size class instead of
// handing every allocation back to the Go heap, the same shard-by-size-class
// design IrineSistiana/mosdns's pool.Allocator and dgraph-io/ristretto/z's
// Allocator both use, built here on top of sync.Pool rather than a bespoke
// free list.
//
// PooledAllocator is the concrete component that exercises the custom
// allocator half of the contract end to end: its Allocate rounds size up to
// the next power of two and draws from the matching shard; Deallocate
// returns the (oversized) arena to that shard for reuse. align is ignored:
// no extra bytes are allocated for it, and the arena's alignment is whatever
// Go's allocator gives a []byte of that size.
type PooledAllocator struct {
	shards []sync.Pool
}

// NewPooledAllocator returns a PooledAllocator with shards for every
// power-of-two arena size from 1 byte up to maxSize.
func NewPooledAllocator(maxSize int) *PooledAllocator {
	if maxSize <= 0 {
		maxSize = 1 << 20
	}
	n := bits.Len(uint(maxSize))
	p := &PooledAllocator{shards: make([]sync.Pool, n+1)}
	for i := range p.shards {
		sz := 1 << i
		p.shards[i].New = func() any {
			buf := make([]byte, sz)
			return &buf
		}
	}
	return p
}

func (p *PooledAllocator) shardFor(size int) int {
	if size <= 1 {
		return 0
	}
	return bits.Len(uint(size - 1))
}

// Allocate implements Allocator.
func (p *PooledAllocator) Allocate(size, align int) (unsafe.Pointer, error) {
	if size < 0 {
		return nil, fmt.Errorf("iobuf: negative allocation size %d", size)
	}
	i := p.shardFor(size)
	if i >= len(p.shards) {
		return nil, fmt.Errorf("iobuf: requested size %d exceeds pool maximum", size)
	}
	buf := p.shards[i].Get().(*[]byte)
	if len(*buf) < size {
		*buf = make([]byte, 1<<i)
	}
	return unsafe.Pointer(&(*buf)[0]), nil
}

// Deallocate implements Allocator. size MUST be the exact value passed to
// the matching Allocate call.
func (p *PooledAllocator) Deallocate(ptr unsafe.Pointer, size, align int) {
	i := p.shardFor(size)
	if i >= len(p.shards) {
		return
	}
	n := 1 << i
	buf := unsafe.Slice((*byte)(ptr), n)
	p.shards[i].Put(&buf)
}
