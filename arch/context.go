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

package arch

// Context is the callee-saved register bank and scheduling handshake state
// for one thread. Its layout is a hard contract: kernel.Thread embeds a
// Context as its first field, exactly as the reference kernel's
// thread_context must be the first member of struct thread for the
// assembly trampoline to locate it. Resume and CameFrom are exported only
// so that an alternate arch.Switcher implementation can drive the same
// park/resume handshake; kernel code only creates Resume when it builds a
// Thread and never signals it or reads CameFrom.
type Context struct {
	// Owner is the *kernel.Thread that embeds this Context, stored as
	// an interface value to avoid an import cycle between arch and
	// kernel.
	Owner any

	// Resume is signaled by a Switcher to wake the goroutine parked on
	// behalf of this context.
	Resume chan struct{}

	// CameFrom is set by a Switcher immediately before it signals
	// Resume, recording which context performed the switch. It is the
	// "prev" a Switch call returns once this context resumes.
	CameFrom *Context
}

// NewContext allocates a Context ready to be passed to a Switcher's Setup
// or Bootstrap.
func NewContext(owner any) *Context {
	return &Context{
		Owner:  owner,
		Resume: make(chan struct{}, 1),
	}
}
