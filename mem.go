// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import "unsafe"

// copyBytes copies n bytes from src to dst, correctly handling the case
// where the two ranges overlap (as Compact's shift-down does), by routing
// through the builtin copy, which the Go spec guarantees behaves like
// memmove rather than memcpy.
func copyBytes(dst, src unsafe.Pointer, n int) {
	if n == 0 {
		return
	}
	dstSlice := unsafe.Slice((*byte)(dst), n)
	srcSlice := unsafe.Slice((*byte)(src), n)
	copy(dstSlice, srcSlice)
}

// unsafeSliceAt returns an n-byte slice starting at byte offset off from
// base. The caller is responsible for having validated that range.
func unsafeSliceAt(base unsafe.Pointer, off, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Add(base, off)), n)
}
