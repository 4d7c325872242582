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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteBlock(t *testing.T) {
	t.Parallel()

	blk := &blockRecord{
		headerBytes:          []byte{0x1f, 0x8b, 0x08, 0x04},
		deflatedPayloadBytes: []byte{0xca, 0xfe},
		declaredCRC32:        0x01020304,
		declaredISIZE:        5,
	}

	var buf bytes.Buffer
	if err := writeBlock(&buf, blk); err != nil {
		t.Fatalf("writeBlock: %v", err)
	}

	want := []byte{
		0x1f, 0x8b, 0x08, 0x04, // header
		0xca, 0xfe, // payload
		0x04, 0x03, 0x02, 0x01, // crc32, little-endian
		0x05, 0x00, 0x00, 0x00, // isize, little-endian
	}
	if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
		t.Errorf("writeBlock output (-want, +got):\n%s", diff)
	}
}

func TestWriteTerminator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeTerminator(&buf); err != nil {
		t.Fatalf("writeTerminator: %v", err)
	}
	if diff := cmp.Diff(Terminator, buf.Bytes()); diff != "" {
		t.Errorf("writeTerminator output (-want, +got):\n%s", diff)
	}
}
