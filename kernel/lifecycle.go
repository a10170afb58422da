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

import "fmt"

// stackAnchorReserve is the bookkeeping overhead reserved at the top of
// every allocated stack for its stackAnchor, mirroring the reference
// kernel's struct stack_anchor sitting at the high end of each thread's
// page.
const stackAnchorReserve = 16

// Spawn allocates a new thread table slot and stack, registers it as a
// child of the calling thread, and makes it READY. start will run with
// arg the first time the scheduler switches to it.
func (k *Kernel) Spawn(name string, start func(arg any), arg any) (int, error) {
	cur := k.Current()
	k.diag.Tracef("spawn(name=%q) in %s", name, cur.name)

	id, ok := k.table.allocate()
	if !ok {
		return 0, fmt.Errorf("kernel: thread table full (%d slots)", k.cfg.NThreads)
	}

	child := newThread(id, name)
	page, err := k.mem.AllocPage()
	if err != nil {
		k.table.free(id)
		return 0, fmt.Errorf("kernel: spawn %q: page allocation: %w", name, err)
	}
	pageSize := k.mem.PageSize()
	child.stackPage = page
	top := uintptr(page) + pageSize
	child.stackBase = top - stackAnchorReserve
	child.stackSize = pageSize - stackAnchorReserve
	child.anchor = &stackAnchor{thread: child}

	child.parent = cur
	child.proc = cur.proc
	k.setState(child, StateReady)
	k.table.set(id, child)

	k.sw.Setup(&child.Context, child.stackBase, start, arg)

	saved := k.intr.Disable()
	k.ready.insert(child)
	k.intr.Restore(saved)
	k.wakeIdle()

	return id, nil
}

// Yield voluntarily gives up the hart, re-entering the ready list behind
// whichever thread runs next.
func (k *Kernel) Yield() {
	cur := k.Current()
	k.diag.Tracef("yield() in %s", cur.name)
	k.diag.Assert(cur.state == StateRunning, "yield: thread %q not RUNNING", cur.name)
	k.suspendSelf()
}

// Exit terminates the calling thread. MAIN exiting halts the system
// cleanly instead of being recycled, since MAIN has no parent to join
// it. Every other thread marks itself EXITED, wakes its parent (which
// may be blocked in Join or JoinAny), and never runs again; its stack is
// reclaimed by the next suspendSelf that switches away from it.
func (k *Kernel) Exit() {
	cur := k.Current()
	k.diag.Tracef("exit() in %s", cur.name)

	if cur.id == k.mainID {
		k.diag.HaltSuccess()
		return
	}

	k.diag.Assert(cur.parent != nil, "exit: thread %q has no parent", cur.name)
	k.setState(cur, StateExited)
	k.Broadcast(cur.parent.childExit)

	k.suspendSelf()
	k.diag.Panic("exit: thread %q resumed after exiting", cur.name)
}

// Join blocks the calling thread until the direct child at slot tid has
// exited, then recycles it and returns its table slot. It is an error
// to join a slot that is not a live child of the caller.
func (k *Kernel) Join(tid int) (int, error) {
	cur := k.Current()

	if tid <= 0 || tid >= k.cfg.NThreads-1 {
		return 0, fmt.Errorf("%w: tid %d out of range", ErrInvalidJoin, tid)
	}
	child := k.table.get(tid)
	if child == nil || child.parent != cur {
		return 0, fmt.Errorf("%w: tid %d is not a child of %q", ErrInvalidJoin, tid, cur.name)
	}

	for child.state != StateExited {
		k.Wait(cur.childExit)
	}
	k.recycle(tid)
	return tid, nil
}

// JoinAny blocks the calling thread until any direct child has exited,
// then recycles it and returns its table slot. It is an error to call
// JoinAny with no live children.
func (k *Kernel) JoinAny() (int, error) {
	cur := k.Current()
	k.diag.Tracef("join_any() in %s", cur.name)

	if tid, ok := k.findExitedChild(cur); ok {
		k.recycle(tid)
		return tid, nil
	}
	if !k.hasAnyChild(cur) {
		return 0, fmt.Errorf("%w: %q has no children", ErrNoChildren, cur.name)
	}

	for {
		k.Wait(cur.childExit)
		if tid, ok := k.findExitedChild(cur); ok {
			k.recycle(tid)
			return tid, nil
		}
	}
}

func (k *Kernel) findExitedChild(parent *Thread) (int, bool) {
	for _, t := range k.table.snapshot() {
		if t != nil && t.parent == parent && t.state == StateExited {
			return t.id, true
		}
	}
	return 0, false
}

func (k *Kernel) hasAnyChild(parent *Thread) bool {
	for _, t := range k.table.snapshot() {
		// IDLE's parent is MAIN, but it never exits and Join rejects its
		// slot, so it does not count as a joinable child.
		if t != nil && t.id != k.idleID && t.parent == parent {
			return true
		}
	}
	return false
}

// recycle frees an EXITED child's table slot, reparenting its own
// children (if any) up to its parent — the reference kernel's orphan
// rule, so a grandchild that outlives its immediate parent is still
// reachable by join_any from further up the tree.
func (k *Kernel) recycle(tid int) {
	thr := k.table.get(tid)
	k.diag.Assert(thr != nil && thr.state == StateExited, "recycle: thread %d not EXITED", tid)

	for _, t := range k.table.snapshot() {
		if t != nil && t.parent == thr {
			t.parent = thr.parent
		}
	}
	k.table.free(tid)
}
