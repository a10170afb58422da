// Copyright 2026 The Unix-like-OS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernel

import "testing"

func TestStatsReflectsLiveThreads(t *testing.T) {
	k := newTestKernel(t, 5)

	tid, err := k.Spawn("worker", func(arg any) {
		k.Yield()
		k.Exit()
	}, nil)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	stats := k.Stats()
	var found *ThreadStat
	for i := range stats {
		if stats[i].ID == tid {
			found = &stats[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("Stats() did not include newly spawned thread %d", tid)
	}
	if found.Name != "worker" {
		t.Fatalf("Stats()[%d].Name = %q, want %q", tid, found.Name, "worker")
	}
	if found.ParentID != k.mainID {
		t.Fatalf("Stats()[%d].ParentID = %d, want MAIN (%d)", tid, found.ParentID, k.mainID)
	}

	yieldUntilExited(t, k, tid)
	if _, err := k.Join(tid); err != nil {
		t.Fatalf("Join: %v", err)
	}

	for _, s := range k.Stats() {
		if s.ID == tid {
			t.Fatalf("Stats() still lists recycled thread %d", tid)
		}
	}
}

func TestStatsIncludesMainAndIdle(t *testing.T) {
	k := newTestKernel(t, 4)
	stats := k.Stats()

	var sawMain, sawIdle bool
	for _, s := range stats {
		if s.ID == k.mainID {
			sawMain = true
		}
		if s.ID == k.idleID {
			sawIdle = true
		}
	}
	if !sawMain {
		t.Fatal("Stats() missing MAIN")
	}
	if !sawIdle {
		t.Fatal("Stats() missing IDLE")
	}
}
