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

import "testing"

func TestPipelineInline(t *testing.T) {
	t.Parallel()

	p := newPipeline(1)
	if !p.inline() {
		t.Fatalf("inline() = false, want true for workers=1")
	}

	r := p.dispatch(nil)
	status := r.wait()
	if status.block != nil || status.corrupted {
		t.Errorf("dispatch(nil) = %+v, want zero value", status)
	}
}

func TestPipelineWorkerPoolPreservesOrder(t *testing.T) {
	t.Parallel()

	p := newPipeline(4)
	if p.inline() {
		t.Fatalf("inline() = true, want false for workers=4")
	}

	const n = 50
	for i := 0; i < n; i++ {
		p.push(p.dispatch(&blockRecord{deflatedPayloadBytes: []byte{0xff}, declaredISIZE: uint32(i)}))
	}

	results := p.drain()
	if len(results) != n {
		t.Fatalf("drain() returned %d results, want %d", len(results), n)
	}
	for i, status := range results {
		if !status.corrupted {
			t.Errorf("status = %+v, want corrupted (garbage deflate stream)", status)
		}
		if status.inflatedPayloadSize != uint32(i) {
			t.Errorf("results[%d].inflatedPayloadSize = %d, want %d (enqueue order)", i, status.inflatedPayloadSize, i)
		}
	}
}

func TestPipelineFullAndPopOldest(t *testing.T) {
	t.Parallel()

	p := newPipeline(2)
	for i := 0; i < maxOutstanding; i++ {
		p.push(p.dispatch(nil))
	}
	if !p.full() {
		t.Fatalf("full() = false after pushing maxOutstanding tasks")
	}

	p.popOldest()
	if p.full() {
		t.Errorf("full() = true after popping one task")
	}

	remaining := p.drain()
	if len(remaining) != maxOutstanding-1 {
		t.Errorf("drain() returned %d results, want %d", len(remaining), maxOutstanding-1)
	}
}
