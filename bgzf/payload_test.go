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

import (
	"bytes"
	"compress/flate"
	"hash/crc32"
	"testing"
)

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("flate.NewWriter: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func TestValidatePayload(t *testing.T) {
	t.Parallel()

	payload := []byte("the quick brown fox jumps over the lazy dog")
	deflated := deflate(t, payload)
	crc := crc32.Checksum(payload, crc32.MakeTable(crc32ISOHDLC))

	testCases := []struct {
		name string
		blk  *blockRecord

		wantCorrupted bool
		wantSize      uint32
		wantKept      bool
	}{
		{
			name: "nil block",
			blk:  nil,
		},
		{
			name: "intact payload",
			blk: &blockRecord{
				deflatedPayloadBytes: deflated,
				declaredCRC32:        crc,
				declaredISIZE:        uint32(len(payload)),
			},
			wantSize: uint32(len(payload)),
			wantKept: true,
		},
		{
			name: "header already flagged corrupted",
			blk: &blockRecord{
				deflatedPayloadBytes: deflated,
				declaredCRC32:        crc,
				declaredISIZE:        uint32(len(payload)),
				corrupted:            true,
			},
			wantCorrupted: true,
			wantSize:      uint32(len(payload)),
		},
		{
			name: "bad crc32",
			blk: &blockRecord{
				deflatedPayloadBytes: deflated,
				declaredCRC32:        crc ^ 0xffffffff,
				declaredISIZE:        uint32(len(payload)),
			},
			wantCorrupted: true,
			wantSize:      uint32(len(payload)),
		},
		{
			name: "declared isize doesn't match",
			blk: &blockRecord{
				deflatedPayloadBytes: deflated,
				declaredCRC32:        crc,
				declaredISIZE:        uint32(len(payload)) + 1,
			},
			wantCorrupted: true,
			wantSize:      uint32(len(payload)) + 1,
		},
		{
			name: "garbage deflate stream",
			blk: &blockRecord{
				deflatedPayloadBytes: []byte{0xff, 0xff, 0xff, 0xff},
				declaredCRC32:        crc,
				declaredISIZE:        uint32(len(payload)),
			},
			wantCorrupted: true,
			wantSize:      uint32(len(payload)),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status := validatePayload(tc.blk)
			if status.corrupted != tc.wantCorrupted {
				t.Errorf("corrupted = %v, want %v", status.corrupted, tc.wantCorrupted)
			}
			if status.inflatedPayloadSize != tc.wantSize {
				t.Errorf("inflatedPayloadSize = %d, want %d", status.inflatedPayloadSize, tc.wantSize)
			}
			if (status.block != nil) != tc.wantKept {
				t.Errorf("block != nil = %v, want %v", status.block != nil, tc.wantKept)
			}
		})
	}
}
