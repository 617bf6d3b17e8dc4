// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !iobufdebug

package iobuf

// debugChecks gates the bounds assertions unchecked operations perform. In a
// release build (the default) it is false and the compiler dead-code-
// eliminates every debugCheckRange call to nothing, matching the
// Go runtime's own habit (see cloudfly-readgo's runtime fork) of gating
// expensive invariant checks behind a build-time const rather than a
// runtime flag.
const debugChecks = false
