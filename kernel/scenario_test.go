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

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestScenarioFullLifecycle exercises spawn, yield, condition wait/
// broadcast, join, join_any, and reparenting together in one tree, the
// way a small embedding program actually would rather than in isolated
// unit tests.
func TestScenarioFullLifecycle(t *testing.T) {
	k := newTestKernel(t, 8)

	var gate Condition
	gate.Init("scenario.gate")

	results := make(chan string, 4)
	spawnErrs := make(chan error, 1)

	workerTid, err := k.Spawn("worker", func(arg any) {
		k.Wait(&gate)
		results <- "worker"

		if _, err := k.Spawn("grandchild", func(arg any) {
			k.Yield()
			results <- "grandchild"
			k.Exit()
		}, nil); err != nil {
			spawnErrs <- err
		}

		k.Exit()
	}, nil)
	if err != nil {
		t.Fatalf("Spawn worker: %v", err)
	}

	for i := 0; i < 10; i++ {
		k.Yield()
	}
	k.Broadcast(&gate)

	first, err := k.JoinAny()
	if err != nil {
		t.Fatalf("JoinAny: %v", err)
	}
	if first != workerTid {
		t.Fatalf("JoinAny returned %d, want worker %d", first, workerTid)
	}
	if got := <-results; got != "worker" {
		t.Fatalf("results channel: got %q, want %q", got, "worker")
	}

	// worker's child (the grandchild) was reparented to MAIN on recycle.
	second, err := k.JoinAny()
	if err != nil {
		t.Fatalf("JoinAny for reparented grandchild: %v", err)
	}
	if got := <-results; got != "grandchild" {
		t.Fatalf("results channel: got %q, want %q", got, "grandchild")
	}
	_ = second

	if _, err := k.JoinAny(); err == nil {
		t.Fatal("JoinAny with no remaining children should fail")
	}

	select {
	case err := <-spawnErrs:
		t.Fatalf("Spawn grandchild: %v", err)
	default:
	}
}

// TestScenarioIndependentKernelsInParallel runs several independently
// constructed kernels concurrently, each driving its own spawn/join
// tree to completion, to exercise that nothing in the package relies on
// hidden process-wide state shared across Kernel instances.
func TestScenarioIndependentKernelsInParallel(t *testing.T) {
	var g errgroup.Group

	for i := 0; i < 6; i++ {
		n := i
		g.Go(func() error {
			k, closeFn, err := newRawKernel(6, "/dev/null")
			if err != nil {
				return fmt.Errorf("kernel %d: %w", n, err)
			}
			defer closeFn()

			const children = 3
			tids := make([]int, 0, children)
			for c := 0; c < children; c++ {
				tid, err := k.Spawn(fmt.Sprintf("k%d.child%d", n, c), func(arg any) {
					k.Yield()
					k.Exit()
				}, nil)
				if err != nil {
					return fmt.Errorf("kernel %d: spawn %d: %w", n, c, err)
				}
				tids = append(tids, tid)
			}

			for _, tid := range tids {
				for j := 0; j < 50 && k.table.get(tid).state != StateExited; j++ {
					k.Yield()
				}
				if _, err := k.Join(tid); err != nil {
					return fmt.Errorf("kernel %d: join %d: %w", n, tid, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
