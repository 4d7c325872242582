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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Arkanosis/bamrescue/internal/bgzftest"
)

func TestRescueCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.bam")
	outPath := filepath.Join(dir, "out.bam")

	good := bgzftest.RegularBlock()
	data := bgzftest.Concat(good, bgzftest.DamagedMagicBlock(), good, bgzftest.Terminator())
	if err := os.WriteFile(inPath, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	stdout, _, err := runApp(t, "rescue", "--quiet", inPath, outPath)
	if err != nil {
		t.Fatalf("rescue: %v", err)
	}
	if stdout.Len() == 0 {
		t.Errorf("rescue: expected a summary line on stdout")
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	want := bgzftest.Concat(good, good, bgzftest.Terminator())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rescued output (-want, +got):\n%s", diff)
	}
}

func TestRescueCommandRefusesToOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.bam")
	outPath := filepath.Join(dir, "out.bam")

	if err := os.WriteFile(inPath, bgzftest.Terminator(), 0o644); err != nil {
		t.Fatalf("WriteFile in: %v", err)
	}
	if err := os.WriteFile(outPath, []byte("existing"), 0o644); err != nil {
		t.Fatalf("WriteFile out: %v", err)
	}

	if _, _, err := runApp(t, "rescue", inPath, outPath); err == nil {
		t.Errorf("rescue onto an existing file without --force: want error, got nil")
	}
}
