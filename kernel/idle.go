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

// idleLoop is IDLE's thread body: run anything else that is READY, and
// when there is nothing left, block in wfi instead of burning the hart
// spinning on an empty ready list.
//
// The disable/recheck/sleep/restore ordering is the double-check the
// reference kernel's idle_thread_func uses to close a race: between
// "ready list looked empty" and "the hart actually halts", an ISR could
// make a thread READY and the wakeup would be lost forever if wfi simply
// trusted the first check. Here the race is closed not by the mask
// (Broadcast's wake ping happens outside any mask section it shares with
// idle) but by the wfi primitive's own semantics: a Wake delivered at
// any point before Sleep's read is never lost, the same guarantee a
// pending interrupt bit gives a real wfi instruction regardless of
// exactly when in this window the interrupt arrived.
func (k *Kernel) idleLoop() {
	for {
		for !k.ready.empty() {
			k.Yield()
		}

		saved := k.intr.Disable()
		stillEmpty := k.ready.empty()
		if stillEmpty {
			if err := k.wfi.Sleep(); err != nil {
				k.diag.Panic("idle: wfi sleep: %v", err)
			}
		}
		k.intr.Restore(saved)
	}
}
