// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iobuf

import "unsafe"

// Int is the set of fixed-width integer types the typed peek/poke/fill/
// consume family supports. Go has no generic methods, so these live as free
// functions parameterized over T rather than as methods on Buf.
type Int interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

func intSize[T Int]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

func loadLE[T Int](p []byte) T {
	var v uint64
	for i := len(p) - 1; i >= 0; i-- {
		v = v<<8 | uint64(p[i])
	}
	return T(v)
}

func loadBE[T Int](p []byte) T {
	var v uint64
	for i := 0; i < len(p); i++ {
		v = v<<8 | uint64(p[i])
	}
	return T(v)
}

func storeLE[T Int](p []byte, v T) {
	u := uint64(v)
	for i := range p {
		p[i] = byte(u)
		u >>= 8
	}
}

func storeBE[T Int](p []byte, v T) {
	u := uint64(v)
	for i := len(p) - 1; i >= 0; i-- {
		p[i] = byte(u)
		u >>= 8
	}
}

// PeekBE reads a big-endian T from window offset pos without moving the
// window, failing if that would read past the window end.
func PeekBE[T Int](b *Buf, pos uint32) (T, bool) {
	n := intSize[T]()
	if !b.CheckRange(uint64(pos), uint64(n)) {
		var zero T
		return zero, false
	}
	return PeekBEUnchecked[T](b, pos), true
}

// PeekBEUnchecked is PeekBE without the bounds check.
func PeekBEUnchecked[T Int](b *Buf, pos uint32) T {
	n := intSize[T]()
	b.debugCheckRange(pos, uint32(n))
	return loadBE[T](b.rawAt(pos, n))
}

// PeekLE is PeekBE for little-endian encoding.
func PeekLE[T Int](b *Buf, pos uint32) (T, bool) {
	n := intSize[T]()
	if !b.CheckRange(uint64(pos), uint64(n)) {
		var zero T
		return zero, false
	}
	return PeekLEUnchecked[T](b, pos), true
}

// PeekLEUnchecked is PeekLE without the bounds check.
func PeekLEUnchecked[T Int](b *Buf, pos uint32) T {
	n := intSize[T]()
	b.debugCheckRange(pos, uint32(n))
	return loadLE[T](b.rawAt(pos, n))
}

// PokeBE writes v as big-endian at window offset pos without moving the
// window, failing if that would write past the window end.
func PokeBE[T Int](b *Buf, pos uint32, v T) bool {
	n := intSize[T]()
	if !b.CheckRange(uint64(pos), uint64(n)) {
		return false
	}
	PokeBEUnchecked(b, pos, v)
	return true
}

// PokeBEUnchecked is PokeBE without the bounds check.
func PokeBEUnchecked[T Int](b *Buf, pos uint32, v T) {
	n := intSize[T]()
	b.debugCheckRange(pos, uint32(n))
	storeBE(b.rawAt(pos, n), v)
}

// PokeLE is PokeBE for little-endian encoding.
func PokeLE[T Int](b *Buf, pos uint32, v T) bool {
	n := intSize[T]()
	if !b.CheckRange(uint64(pos), uint64(n)) {
		return false
	}
	PokeLEUnchecked(b, pos, v)
	return true
}

// PokeLEUnchecked is PokeLE without the bounds check.
func PokeLEUnchecked[T Int](b *Buf, pos uint32, v T) {
	n := intSize[T]()
	b.debugCheckRange(pos, uint32(n))
	storeLE(b.rawAt(pos, n), v)
}

// ConsumeBE reads a big-endian T from the window start and advances past it,
// failing (and leaving b unchanged) if the window is too short.
func ConsumeBE[T Int](b *Buf) (T, bool) {
	v, ok := PeekBE[T](b, 0)
	if !ok {
		return v, false
	}
	b.AdvanceUnchecked(uint32(intSize[T]()))
	return v, true
}

// ConsumeBEUnchecked is ConsumeBE without the bounds check.
func ConsumeBEUnchecked[T Int](b *Buf) T {
	v := PeekBEUnchecked[T](b, 0)
	b.AdvanceUnchecked(uint32(intSize[T]()))
	return v
}

// ConsumeLE is ConsumeBE for little-endian encoding.
func ConsumeLE[T Int](b *Buf) (T, bool) {
	v, ok := PeekLE[T](b, 0)
	if !ok {
		return v, false
	}
	b.AdvanceUnchecked(uint32(intSize[T]()))
	return v, true
}

// ConsumeLEUnchecked is ConsumeLE without the bounds check.
func ConsumeLEUnchecked[T Int](b *Buf) T {
	v := PeekLEUnchecked[T](b, 0)
	b.AdvanceUnchecked(uint32(intSize[T]()))
	return v
}

// FillBE writes v as big-endian at the window start and advances past it,
// failing (and leaving b unchanged) if the window is too short.
func FillBE[T Int](b *Buf, v T) bool {
	if !PokeBE(b, 0, v) {
		return false
	}
	b.AdvanceUnchecked(uint32(intSize[T]()))
	return true
}

// FillBEUnchecked is FillBE without the bounds check.
func FillBEUnchecked[T Int](b *Buf, v T) {
	PokeBEUnchecked(b, 0, v)
	b.AdvanceUnchecked(uint32(intSize[T]()))
}

// FillLE is FillBE for little-endian encoding.
func FillLE[T Int](b *Buf, v T) bool {
	if !PokeLE(b, 0, v) {
		return false
	}
	b.AdvanceUnchecked(uint32(intSize[T]()))
	return true
}

// FillLEUnchecked is FillLE without the bounds check.
func FillLEUnchecked[T Int](b *Buf, v T) {
	PokeLEUnchecked(b, 0, v)
	b.AdvanceUnchecked(uint32(intSize[T]()))
}

// rawAt returns the n-byte slice at window offset pos. The caller must have
// already validated the range (CheckRange or debugCheckRange).
func (b *Buf) rawAt(pos uint32, n int) []byte {
	return unsafeSliceAt(b.buf, int(b.lo)+int(pos), n)
}

// Peek copies Len(dst) bytes from window offset pos into dst without moving
// the window, failing if that would read past the window end.
func (b *Buf) Peek(pos uint32, dst []byte) bool {
	if !b.CheckRange(uint64(pos), uint64(len(dst))) {
		return false
	}
	copy(dst, b.rawAt(pos, len(dst)))
	return true
}

// Poke copies src into the window at offset pos without moving the window,
// failing if that would write past the window end.
func (b *Buf) Poke(pos uint32, src []byte) bool {
	if !b.CheckRange(uint64(pos), uint64(len(src))) {
		return false
	}
	copy(b.rawAt(pos, len(src)), src)
	return true
}

// Consume copies len(dst) bytes from the window start into dst and advances
// past them, failing (and leaving b unchanged) if the window is too short.
func (b *Buf) Consume(dst []byte) bool {
	if !b.Peek(0, dst) {
		return false
	}
	b.AdvanceUnchecked(uint32(len(dst)))
	return true
}

// Fill copies src into the window start and advances past it, failing (and
// leaving b unchanged) if the window is too short.
func (b *Buf) Fill(src []byte) bool {
	if !b.Poke(0, src) {
		return false
	}
	b.AdvanceUnchecked(uint32(len(src)))
	return true
}
