// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build iobufdebug

package iobuf

// debugChecks is true when built with -tags iobufdebug. Unchecked cursor
// operations then re-validate their own precondition and panic on
// violation, instead of silently corrupting the handle.
const debugChecks = true
