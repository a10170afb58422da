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

func TestBroadcastOnEmptyWaitListIsNoOp(t *testing.T) {
	k := newTestKernel(t, 4)
	var c Condition
	c.Init("test")

	before := k.intr.Enabled()
	k.Broadcast(&c)
	after := k.intr.Enabled()

	if before != after {
		t.Fatal("Broadcast on an empty wait list changed the interrupt mask")
	}
}

func TestWaitBroadcastWakesWaiter(t *testing.T) {
	k := newTestKernel(t, 5)
	var c Condition
	c.Init("test")

	woke := make(chan struct{})
	_, err := k.Spawn("waiter", func(arg any) {
		k.Wait(&c)
		close(woke)
		k.Exit()
	}, nil)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	// Drive the waiter onto the condition's wait list.
	for i := 0; i < 10; i++ {
		select {
		case <-woke:
			t.Fatal("waiter woke before Broadcast")
		default:
		}
		k.Yield()
	}

	k.Broadcast(&c)

	for i := 0; i < 10; i++ {
		select {
		case <-woke:
			return
		default:
		}
		k.Yield()
	}
	t.Fatal("waiter never woke after Broadcast")
}

func TestBroadcastWakesAllWaiters(t *testing.T) {
	k := newTestKernel(t, 6)
	var c Condition
	c.Init("test")

	const n = 3
	woke := make(chan int, n)
	for i := 0; i < n; i++ {
		idx := i
		_, err := k.Spawn("waiter", func(arg any) {
			k.Wait(&c)
			woke <- idx
			k.Exit()
		}, nil)
		if err != nil {
			t.Fatalf("Spawn %d: %v", idx, err)
		}
	}

	for i := 0; i < 20; i++ {
		if len(woke) > 0 {
			t.Fatal("a waiter woke before Broadcast")
		}
		k.Yield()
	}

	k.Broadcast(&c)

	for i := 0; i < 40 && len(woke) < n; i++ {
		k.Yield()
	}
	if len(woke) != n {
		t.Fatalf("woke %d of %d waiters after one Broadcast", len(woke), n)
	}
}
