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

// Package bgzf implements a tolerant scanner, validator, and rescuer for the
// BGZF format: a concatenation of independently-compressed gzip members used
// by the BAM genomics format to support random access.
//
// The package does not decode BAM records; it only verifies and repairs
// BGZF block framing. See Check and Rescue for the two entry points.
package bgzf

import "hash/crc32"

// gzipID1, gzipID2, deflateMethod, and fextraFlag are the four canonical
// bytes a BGZF header must start with, in order.
const (
	gzipID1       = 0x1f
	gzipID2       = 0x8b
	deflateMethod = 0x08
	fextraFlag    = 0x04
)

// bgzfSubfieldID1 and bgzfSubfieldID2 identify the BGZF extra subfield
// ('B', 'C') carrying BSIZE.
const (
	bgzfSubfieldID1 = 0x42
	bgzfSubfieldID2 = 0x43
)

// gzipHeaderSize is the size, in bytes, of the fixed gzip header prefix
// (ID1, ID2, CM, FLG, MTIME, XFL, OS) before XLEN.
const gzipHeaderSize = 10

// MaxBlockSize is the largest a single BGZF block (header + payload +
// trailer) may be; blocks are capped at 64 KiB inflated.
const MaxBlockSize = 0x10000

// maxOutstanding bounds how many blocks may have their payload validation
// in flight at once. 100 blocks of at most 64 KiB inflated, plus their
// compressed form of at most 64 KiB each, is at most 12.5 MiB -- small enough to hold in
// memory and large enough that inflate parallelism saturates any reasonable
// machine.
const maxOutstanding = 100

// resyncBufferSize is the chunk size the resync scanner reads in while
// looking for the next plausible block header.
const resyncBufferSize = 65536

// crc32ISOHDLC is the CRC-32 polynomial BGZF trailers are computed with.
// crc32.IEEE is the same ISO-HDLC polynomial the format calls for.
var crc32ISOHDLC uint32 = crc32.IEEE

// Terminator is the canonical 28-byte empty BGZF block that must end every
// well-formed BGZF stream.
var Terminator = []byte{
	0x1f, 0x8b, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0x06, 0x00,
	0x42, 0x43, 0x02, 0x00, 0x1b, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}
