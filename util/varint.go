// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - varint64 encoding for packed records
//
// 7 bits of value per byte, high bit set on all but the final byte;
// a ninth byte, if present, carries a full 8 bits
package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)

	for i := 0; i < Varint64MaximumBytes-1; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value&0x7f|0x80))
		value >>= 7
	}

	// ninth byte holds the remaining high bits verbatim
	return append(result, byte(value))
}

// FromVarint64 - convert a byte buffer back to a uint64
//
// also returns the number of bytes consumed
// returns 0, 0 if the buffer is truncated mid-value
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count, b := range buffer {
		if count == Varint64MaximumBytes-1 {
			return result | uint64(b)<<shift, count + 1
		}
		result |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return result, count + 1
		}
		shift += 7
	}
	return 0, 0
}
