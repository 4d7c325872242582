// Copyright 2026 The bamrescue Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bgzftest builds BGZF byte fixtures shared between the bgzf
// package's own tests and cmd/bamrescue's end-to-end tests.
package bgzftest

import (
	"encoding/binary"

	"github.com/Arkanosis/bamrescue/bgzf"
)

// RegularDeflated is the 7-byte raw deflate encoding of "hello".
var RegularDeflated = []byte{0xcb, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00}

// RegularCRC32 and RegularISIZE are "hello"'s CRC32 and length.
const (
	RegularCRC32 uint32 = 907060870
	RegularISIZE uint32 = 5
)

// Block assembles one complete BGZF block's wire bytes from a deflated
// payload and its trailer fields. header0 overrides the header's first byte
// (normally 0x1f); pass 0x1f for a well-formed block.
func Block(header0 byte, deflated []byte, crc32, isize uint32) []byte {
	xlen := uint16(6)
	bsize := uint16(10 + 2 + int(xlen) + len(deflated) + 8 - 1)

	b := make([]byte, 0, 12+int(xlen)+len(deflated)+8)
	b = append(b,
		header0, 0x8b, // ID1, ID2
		0x08,       // CM: deflate
		0x04,       // FLG: FEXTRA
		0, 0, 0, 0, // MTIME
		0,    // XFL
		0xff, // OS: unknown
	)
	b = append(b, byte(xlen), byte(xlen>>8))
	b = append(b,
		0x42, 0x43, // SI1, SI2: 'B', 'C'
		0x02, 0x00, // SLEN = 2
		byte(bsize), byte(bsize>>8),
	)
	b = append(b, deflated...)

	var trailer [8]byte
	binary.LittleEndian.PutUint32(trailer[0:4], crc32)
	binary.LittleEndian.PutUint32(trailer[4:8], isize)
	return append(b, trailer[:]...)
}

// RegularBlock returns one well-formed BGZF block wrapping "hello".
func RegularBlock() []byte {
	return Block(0x1f, RegularDeflated, RegularCRC32, RegularISIZE)
}

// DamagedMagicBlock returns a "regular" block with its first header byte
// corrupted (one of the four canonical bytes wrong), the rescuable-in-place
// case.
func DamagedMagicBlock() []byte {
	return Block(0x42, RegularDeflated, RegularCRC32, RegularISIZE)
}

// UnresynchableBlock returns a "regular" block with its first two header
// bytes corrupted, below the rescuable-in-place threshold: the scanner can't
// parse it as a header at all and must resynchronize past it.
func UnresynchableBlock() []byte {
	b := Block(0x1f, RegularDeflated, RegularCRC32, RegularISIZE)
	b[0], b[1] = 0x42, 0x43
	return b
}

// BadCRC32Block returns a "regular" block whose payload is intact but whose
// declared CRC32 doesn't match it.
func BadCRC32Block() []byte {
	return Block(0x1f, RegularDeflated, RegularCRC32^0xffffffff, RegularISIZE)
}

// Terminator returns the canonical empty terminating block.
func Terminator() []byte {
	return append([]byte{}, bgzf.Terminator...)
}

// Concat joins byte slices with nothing in between, for assembling a
// fixture file out of several blocks.
func Concat(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
