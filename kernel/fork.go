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

	"github.com/krish-sahni/Unix-like-OS/arch"
)

// satpASIDShift mirrors the reference kernel's SATP_ASID_MASK placement:
// the address-space identifier occupies the high bits of an mtag.
const satpASIDShift = 44

// Process is the minimal address-space record ForkToUser operates on.
// Everything about an address space beyond its mtag (page tables, the
// program image, open files) is out of scope for this package; Process
// exists only so SetProcess/ProcessOf and ForkToUser have something
// concrete to pass around.
type Process struct {
	Mtag uintptr
	Tid  int
}

// forkArgs is the bundle handed to a forked child's start function: the
// parent's trap frame pointer and a placeholder for the child thread's
// own pointer, packed together exactly as the reference kernel's
// argument array does. The child field is deliberately filled in AFTER
// Spawn returns, never before: the reference kernel's
// thread_fork_to_user captures child_thread into that array before
// thread_spawn has assigned it, so the child always observes a stale
// (zero) pointer. Passing a pointer to this struct and mutating it in
// place once the real child exists avoids the bug structurally — the
// child goroutine cannot read b.child until it is actually resumed,
// which is always later than this function filling it in.
type forkArgs struct {
	child    *Thread
	parentTF arch.TrapFrame
}

// ForkToUser clones the calling thread's address space (tagged with the
// target process's asid), spawns a new thread to run in it, switches the
// calling thread's address space to the child's, and returns the
// child's table slot. The child will, once scheduled, invoke the
// arch-specific user-mode entry point and then exit — see finishFork.
func (k *Kernel) ForkToUser(childProc *Process, parentTF arch.TrapFrame) (int, error) {
	if childProc == nil || parentTF == 0 {
		return 0, fmt.Errorf("%w: nil argument", ErrForkFailed)
	}

	asid := uint16(childProc.Mtag >> satpASIDShift)
	childMtag, err := k.mem.SpaceClone(asid)
	if err != nil {
		return 0, fmt.Errorf("%w: space clone: %v", ErrForkFailed, err)
	}
	childProc.Mtag = childMtag

	bundle := &forkArgs{parentTF: parentTF}
	childTid, err := k.Spawn("user", func(arg any) {
		k.finishFork(arg.(*forkArgs))
	}, bundle)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrForkFailed, err)
	}

	child := k.table.get(childTid)
	k.diag.Assert(child != nil, "ForkToUser: spawned child %d missing from table", childTid)
	// Filled in only now that child is real — see forkArgs's doc comment.
	bundle.child = child

	k.SetProcess(childTid, childProc)

	if !k.mem.SpaceSwitch(childMtag) {
		return 0, fmt.Errorf("%w: address space switch failed", ErrForkFailed)
	}

	childProc.Tid = childTid
	return childTid, nil
}

// finishFork is the forked child's thread body. It hands the parent's
// trap frame off to the arch-specific user-mode entry point and, since
// that can only be simulated rather than actually performed (see
// arch.UserEntry), treats the simulated return as "the user program ran
// and called exit" and terminates the thread.
func (k *Kernel) finishFork(b *forkArgs) {
	k.diag.Assert(b.child != nil, "finishFork: child pointer never assigned")
	k.diag.Tracef("finishFork: child %q from parent trap frame %#x", b.child.name, uintptr(b.parentTF))
	k.entry.FinishJump(b.child.stackBase, uintptr(b.parentTF), 0)
	k.Exit()
}
