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

// suspendSelf is the scheduler's core primitive: pick the next READY
// thread, move the caller off the hart (back onto the ready list if it
// is still RUNNING, i.e. this is a voluntary yield rather than a
// blocking wait or exit), and switch to it. It is the direct translation
// of the reference kernel's suspend_self.
func (k *Kernel) suspendSelf() {
	susp := k.Current()
	k.diag.Tracef("suspend_self() in %s", susp.name)

	saved := k.intr.Disable()

	k.diag.Assert(!k.ready.empty(), "suspend_self: ready list empty")
	next := k.ready.remove()
	k.diag.Assert(next.state == StateReady, "suspend_self: next thread %q not READY", next.name)
	k.setState(next, StateRunning)

	if susp.state == StateRunning {
		k.setState(susp, StateReady)
		k.ready.insert(susp)
	}

	k.intr.Restore(saved)

	if next.proc != nil {
		ok := k.mem.SpaceSwitch(next.proc.Mtag)
		k.diag.Assert(ok, "suspend_self: address space switch to %#x failed", next.proc.Mtag)
	}

	k.diag.Tracef("%s switching to %s", susp.name, next.name)
	prevCtx := k.sw.Switch(&susp.Context, &next.Context)
	k.diag.Tracef("switch returned control to %s", susp.name)

	prev := prevCtx.Owner.(*Thread)
	if prev.state == StateExited {
		k.mem.FreePage(prev.stackPage)
		prev.stackPage = 0
		prev.stackBase = 0
		prev.stackSize = 0
		prev.anchor = nil
	}
}
