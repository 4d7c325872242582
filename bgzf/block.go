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

package bgzf

// blockRecord is the unit the scanner, the work pipeline, and the emitter
// pass around. Once handed off to the pipeline it is owned by whichever
// goroutine is validating its payload; on return it is owned by the emitter,
// which writes it out (or drops it) and lets it go.
type blockRecord struct {
	// headerBytes is the captured gzip+extra-field prefix, preserved
	// verbatim (including every extra subfield) so it can be re-emitted
	// byte-for-byte in rescue mode.
	headerBytes []byte

	// deflatedPayloadBytes is the raw compressed payload, not yet inflated.
	deflatedPayloadBytes []byte

	// declaredCRC32 is the 32-bit little-endian CRC from the gzip trailer.
	declaredCRC32 uint32

	// declaredISIZE is the 32-bit little-endian uncompressed length from
	// the gzip trailer.
	declaredISIZE uint32

	// corrupted is set by the header parser when the header required
	// tolerant recovery (an off-by-one-byte header or BGZF subfield). It
	// does not by itself mean the payload is bad; it blocks re-emission
	// even when the payload later validates.
	corrupted bool

	// endPosition is the byte offset just after this block, used for
	// progress reporting.
	endPosition uint64
}

// blockStatus is the result of validating one block's payload.
type blockStatus struct {
	corrupted           bool
	inflatedPayloadSize uint32

	// block is non-nil only when the block is neither corrupted at the
	// header level nor the payload level -- i.e. exactly when it's safe to
	// re-emit verbatim.
	block *blockRecord
}
