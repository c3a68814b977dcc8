// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/brano-hozza/meta-assetsd/util"
)

// test various encodings
func TestToVarint64(t *testing.T) {
	items := []struct {
		value    uint64
		expected []byte
	}{
		{0x00, []byte{0x00}},
		{0x01, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0xff, []byte{0xff, 0x01}},
		{0x100, []byte{0x80, 0x02}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range items {
		result := util.ToVarint64(item.value)
		if !bytes.Equal(result, item.expected) {
			t.Errorf("%d: value: %x  actual: %x  expected: %x", i, item.value, result, item.expected)
		}
	}
}

// test round trip of various values including the 9 byte maximum
func TestFromVarint64(t *testing.T) {
	values := []uint64{
		0, 1, 0x7f, 0x80, 0xff, 0x100, 0x1234, 0x3fff, 0x4000,
		0xffffff, 0x123456789abcdef0, 0xffffffffffffffff,
	}

	for i, value := range values {
		buffer := util.ToVarint64(value)
		// append some junk to ensure only the value bytes are consumed
		buffer = append(buffer, 0x99, 0x12)

		result, count := util.FromVarint64(buffer)
		if result != value {
			t.Errorf("%d: actual: %x  expected: %x", i, result, value)
		}
		if count != len(buffer)-2 {
			t.Errorf("%d: byte count: %d  expected: %d", i, count, len(buffer)-2)
		}
	}
}

// a truncated buffer must return zero count
func TestFromVarint64Truncated(t *testing.T) {
	buffer := util.ToVarint64(0x123456789abcdef0)
	for n := 0; n < len(buffer); n += 1 {
		if _, count := util.FromVarint64(buffer[:n]); 0 != count {
			t.Errorf("truncated to %d bytes: count: %d  expected: 0", n, count)
		}
	}
}
