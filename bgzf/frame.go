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
	"encoding/binary"
	"io"
)

// frameReader pulls bounded, position-tracked byte slices from a seekable
// input, built around repeated io.ReadFull calls against a bare
// io.ReadSeeker, since the scanner needs to seek and re-read far more than
// a single linear header parse would.
type frameReader struct {
	r   io.ReadSeeker
	pos int64
	end int64
}

// newFrameReader wraps r, capturing its total length once up front for
// progress reporting, and leaves r positioned at the start.
func newFrameReader(r io.ReadSeeker) (*frameReader, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &frameReader{r: r, end: end}, nil
}

// length returns the total size of the input, captured at construction.
func (f *frameReader) length() int64 { return f.end }

// position returns the current offset into the input.
func (f *frameReader) position() int64 { return f.pos }

// seek moves to an absolute offset.
func (f *frameReader) seek(offset int64) error {
	n, err := f.r.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	f.pos = n
	return nil
}

// seekRelative moves by delta bytes relative to the current offset.
func (f *frameReader) seekRelative(delta int64) error {
	n, err := f.r.Seek(delta, io.SeekCurrent)
	if err != nil {
		return err
	}
	f.pos = n
	return nil
}

// readExact reads exactly n bytes. A read that returns zero bytes at EOF is
// reported as io.EOF; any partial read (more than zero bytes but fewer than
// n) is reported as ErrShortRead, since the only place that can happen is
// mid-header or mid-payload, never cleanly between blocks.
func (f *frameReader) readExact(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(f.r, buf)
	f.pos += int64(read)
	switch {
	case read == 0 && err != nil:
		return nil, io.EOF
	case read < n:
		return buf[:read], ErrShortRead
	default:
		return buf, nil
	}
}

// readU16LE reads a little-endian uint16, failing with ErrShortRead (or
// io.EOF at a clean boundary) on a short read.
func (f *frameReader) readU16LE() (uint16, error) {
	b, err := f.readExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// readU32LE reads a little-endian uint32, failing with ErrShortRead (or
// io.EOF at a clean boundary) on a short read.
func (f *frameReader) readU32LE() (uint32, error) {
	b, err := f.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
