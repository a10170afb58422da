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

// Package arch defines the contracts the kernel core consumes but never
// implements itself: page allocation, address-space switching, interrupt
// masking, the context-switch trampoline, and the diagnostic sinks. Every
// type here mirrors a consumed collaborator named in the thread-scheduler
// specification (memory_alloc_page, memory_space_clone, intr_disable,
// the arch-specific _thread_swtch/_thread_setup trampoline, panic/assert/
// trace/debug/kprintf) rather than a concrete subsystem.
package arch

// Page is an opaque handle to one page-sized allocation. It carries no
// guarantee of being dereferenceable; kernel code only ever compares or
// logs it, mirroring memory_alloc_page's treatment as an external
// collaborator in the specification this core implements.
type Page uintptr

// TrapFrame is an opaque handle to a saved user-mode register set, the
// same way Page is an opaque handle to a page-sized allocation. The core
// never dereferences one: fork_to_user only carries the parent's trap
// frame pointer through to the arch-specific finish-fork routine that
// actually knows its layout.
type TrapFrame uintptr

// Memory is the page allocator and address-space subsystem the core is
// specified to consume (memory_alloc_page, memory_free_page,
// memory_space_clone, memory_space_switch, PAGE_SIZE).
type Memory interface {
	// AllocPage reserves one page-sized kernel stack and returns its
	// nominal base address.
	AllocPage() (Page, error)

	// FreePage releases a page previously returned by AllocPage.
	FreePage(Page)

	// PageSize returns the fixed page size used for kernel stacks.
	PageSize() uintptr

	// SpaceClone clones the calling address space, tagging the clone
	// with asid, and returns the new mtag.
	SpaceClone(asid uint16) (mtag uintptr, err error)

	// SpaceSwitch installs mtag as the active address space. It returns
	// false on failure, matching memory_space_switch's
	// nonzero-on-success contract.
	SpaceSwitch(mtag uintptr) bool
}

// State is the saved interrupt-enable flag returned by Disable and
// consumed by Restore.
type State bool

// Interrupts is the interrupt-masking primitive the core is specified to
// consume (intr_disable, intr_restore, intr_enable, intr_enabled). Every
// mutation of a list shared with an ISR is bracketed by Disable/Restore.
type Interrupts interface {
	Disable() State
	Restore(State)
	Enable()
	Enabled() bool
}

// Diagnostics is the set of diagnostic sinks the core is specified to
// consume (panic, assert, trace, debug, kprintf, halt_success).
type Diagnostics interface {
	// Panic halts the system after formatting and logging format/args;
	// it never returns.
	Panic(format string, args ...any)

	// Assert panics with format/args if cond is false.
	Assert(cond bool, format string, args ...any)

	// Tracef logs a trace-level line. Traces are the highest-volume,
	// lowest-severity diagnostic (per-call entry/exit logging).
	Tracef(format string, args ...any)

	// Debugf logs a debug-level line, typically a state transition.
	Debugf(format string, args ...any)

	// Kprintf logs an operator-facing informational line.
	Kprintf(format string, args ...any)

	// HaltSuccess stops the system cleanly; it never returns.
	HaltSuccess()
}

// Switcher is the arch-specific context-switch trampoline the core is
// specified to consume: Setup arranges a thread's first resumption, and
// Switch performs the actual register/stack-pointer swap.
type Switcher interface {
	// Setup prepares ctx so that the first Switch that resumes it lands
	// at start(arg) with sp as its stack pointer.
	Setup(ctx *Context, sp uintptr, start func(arg any), arg any)

	// Bootstrap registers ctx as the context of the thread that is
	// already running when the switcher is constructed (there is no
	// prior Switch call that "switched into" it). It must be called
	// exactly once, before any Switch call, with the context of the
	// initial (MAIN) thread.
	Bootstrap(ctx *Context)

	// Switch saves cur's callee-saved state, installs next's, updates
	// whatever the switcher uses to track "the current context", and
	// returns once cur itself is resumed by a later Switch call. The
	// returned value is the context that performed that later switch
	// into cur — i.e. "the thread that was running before."
	Switch(cur, next *Context) (prev *Context)

	// Current returns the context most recently installed by Switch or
	// Bootstrap. This is the Go analogue of reading the architecture's
	// dedicated current-thread register.
	Current() *Context
}

// UserEntry is the arch-specific "drop into user mode" primitive the core
// is specified to consume (_thread_finish_jump / _thread_finish_fork). On
// real hardware this never returns: it installs a trap frame and issues an
// sret. Nothing in this module runs actual user code, so FinishJump is the
// one primitive a Go implementation can only simulate rather than perform;
// simarch's version logs the transition and returns instead of trapping
// into a nonexistent user program.
type UserEntry interface {
	FinishJump(stackBase, usp, upc uintptr)
}
