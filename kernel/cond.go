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

// Condition is a wait queue of threads, the Go analogue of struct
// condition: a name for diagnostics and a list of blocked waiters. There
// is deliberately no Signal — the reference kernel only ever exposes
// wait and broadcast, and waking a single arbitrary waiter is never
// correct for the join/join_any protocol this package builds on
// Condition.
type Condition struct {
	name     string
	waitList threadList
}

// newCondition returns a ready, empty Condition.
func newCondition(name string) *Condition {
	c := &Condition{}
	c.Init(name)
	return c
}

// Init (re)initializes a caller-allocated Condition, the Go analogue of
// condition_init(cond, name). It lets a Condition live as a plain field
// (e.g. embedded in a caller's own type) rather than always being
// heap-allocated by this package.
func (c *Condition) Init(name string) {
	c.name = name
	c.waitList.clear()
}

// Name returns the condition's diagnostic name.
func (c *Condition) Name() string { return c.name }

// Wait blocks the current thread on c until some other thread broadcasts
// it. It must be called with the current thread RUNNING; it returns
// with the current thread RUNNING again, having been moved through
// WAITING and back to READY/RUNNING by whichever broadcast woke it.
func (k *Kernel) Wait(c *Condition) {
	cur := k.Current()
	k.diag.Tracef("condition_wait(%q) in %s", c.name, cur.name)
	k.diag.Assert(cur.state == StateRunning, "condition_wait: thread %q not RUNNING", cur.name)

	saved := k.intr.Disable()
	k.setState(cur, StateWaiting)
	cur.waitCond = c
	c.waitList.insert(cur)
	k.intr.Restore(saved)

	k.suspendSelf()

	k.diag.Assert(cur.state == StateRunning, "condition_wait: thread %q resumed not RUNNING", cur.name)
}

// Broadcast moves every thread waiting on c to the ready list. A
// broadcast on an empty wait list is a no-op with no interrupt-mask side
// effect observable to a caller: the fast path returns before ever
// touching the mask.
func (k *Kernel) Broadcast(c *Condition) {
	cur := k.Current()
	k.diag.Tracef("condition_broadcast(%q) in %s", c.name, cur.name)

	if c.waitList.empty() {
		return
	}

	saved := k.intr.Disable()
	woken := c.waitList
	c.waitList.clear()
	for t := woken.head; t != nil; t = t.listNext {
		k.diag.Assert(t.state == StateWaiting && t.waitCond == c,
			"condition_broadcast(%q): waiter %q not parked on this condition", c.name, t.name)
		k.setState(t, StateReady)
		t.waitCond = nil
	}
	k.ready.append(&woken)
	k.intr.Restore(saved)

	// Closing the idle wfi race (see kernel/idle.go) needs no mask: the
	// wake pipe is a raw signal, not shared mutable state.
	k.wakeIdle()
}
