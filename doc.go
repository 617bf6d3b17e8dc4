// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Package iobuf implements a zero-copy I/O buffer: a handle onto a byte range
drawn from a shared, refcounted backing allocation.

The terms MUST or MUST NOT, if/where used in the documentation of this
package, written in all caps as seen here, are a requirement for any possible
alternative implementations aiming for compatibility with this one.

Handle

A Buf is a 24 byte (on a 64-bit target) value type: a pointer to byte 0 of a
data region plus four 32-bit cursors describing a window [lo, hi) within
limits [loMin, hiMax). Limits can only narrow over a Buf's life; the window is
always a subrange of the limits.

Ownership

A Buf is either owned or borrowed. An owned Buf's data region is immediately
preceded by an allocationHeader (three machine words: the originating
allocator, the total allocation length, and a refcount). A borrowed Buf simply
aliases someone else's bytes for as long as the caller keeps them alive; it has
no header and no refcount.

Refcount discipline

Every owned Buf is cloned and dropped under exactly one of two disciplines,
chosen by the caller and never mixed for the life of a given allocation:

	Atomic:    CloneAtomic / DropAtomic.    Safe to share across goroutines.
	Nonatomic: CloneNonatomic / DropNonatomic.  Faster; single-goroutine only.

Picking the wrong discipline, or switching disciplines on handles sharing an
allocation, is a data race and this package does nothing to detect it -
exactly as for any other type whose safety depends on a documented contract
rather than a runtime check.

Checked and unchecked operations

Every operation that can run off the end of a buffer's limits comes in two
forms. The checked form validates its arguments and returns false (or, for
reads, a zero value and false) instead of mutating anything. The unchecked
form skips that validation on release builds; built with the iobufdebug build
tag, it panics on the same violation the checked form would reject. This
package never panics on a checked call and never raises an error for a range
violation. Construction does panic: with *ErrOverflow when the requested
length exceeds MaxBufferLen, and with *ErrAllocator when a custom Allocator
fails (see errors.go).

*/
package iobuf
