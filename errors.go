// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOverflow is raised when a caller asks for an allocation bigger than
// MaxBufferLen. Unlike a range check on an existing Buf, this is a
// programming error, not a runtime condition a caller is expected to handle:
// construction panics with an *ErrOverflow, which terminates the process
// unless recovered.
type ErrOverflow struct {
	Requested uint64
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("iobuf: requested allocation of %d bytes exceeds MaxBufferLen (%d)", e.Requested, MaxBufferLen)
}

// ErrAllocator wraps a failure returned by a pluggable Allocator's Allocate
// method, giving it provenance the way zchee-go-qcow2's WriteXxx helpers wrap
// every os.File.WriteAt failure with errors.Wrap.
type ErrAllocator struct {
	Op  string
	Err error
}

func (e *ErrAllocator) Error() string {
	return errors.Wrapf(e.Err, "iobuf: allocator failed during %s", e.Op).Error()
}

func (e *ErrAllocator) Unwrap() error {
	return e.Err
}

func wrapAllocatorErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ErrAllocator{Op: op, Err: err}
}

// abortOverflow panics with an *ErrOverflow; unrecovered, that terminates
// the process. Constructing a Buf with a length
// greater than MaxBufferLen is always a programming error: nothing
// legitimate should ever request more than ~2 GiB from this package, so
// there is no recoverable error path for it - see spec §7.
func abortOverflow(requested uint64) {
	panic(&ErrOverflow{Requested: requested})
}
