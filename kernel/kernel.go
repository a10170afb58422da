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

// Package kernel implements a cooperative, single-hart thread scheduler:
// a fixed thread table, a FIFO ready list, condition variables, parent/
// child join with reparenting, an idle thread, and fork-to-user-mode
// address-space cloning. It owns none of the machinery that would make
// any of that actually run on real hardware or inside a real goroutine
// stack swap — those are consumed through the arch package's interfaces
// (arch.Memory, arch.Interrupts, arch.Switcher, arch.Diagnostics,
// arch.UserEntry), the same boundary the reference kernel draws between
// kern/thread.c and its architecture-specific trampoline.
package kernel

import (
	"fmt"

	"github.com/krish-sahni/Unix-like-OS/arch"
)

// wfi is the idle thread's wait-for-interrupt primitive. It is narrower
// than arch.Memory/Interrupts/Switcher because it models something the
// reference kernel gets for free from a real wfi instruction: something
// to block in rather than spin on.
type wfi interface {
	Sleep() error
	Wake()
}

// Kernel owns one complete thread table and everything that operates on
// it. Its zero value is not usable; construct with New.
type Kernel struct {
	cfg Config

	table *table
	ready threadList

	mem   arch.Memory
	intr  arch.Interrupts
	sw    arch.Switcher
	diag  arch.Diagnostics
	entry arch.UserEntry
	wfi   wfi

	mainID int
	idleID int

	initialized bool
}

// New validates cfg and wires a Kernel to its collaborators. Init must
// be called, from what will become the MAIN thread's own goroutine,
// before any other method.
func New(cfg Config, mem arch.Memory, intr arch.Interrupts, sw arch.Switcher, entry arch.UserEntry, diag arch.Diagnostics, w wfi) (*Kernel, error) {
	if cfg.NThreads < 2 {
		return nil, fmt.Errorf("kernel: NThreads must be >= 2, got %d", cfg.NThreads)
	}
	return &Kernel{
		cfg:    cfg,
		table:  newTable(uint(cfg.NThreads)),
		mem:    mem,
		intr:   intr,
		sw:     sw,
		entry:  entry,
		diag:   diag,
		wfi:    w,
		mainID: 0,
		idleID: cfg.NThreads - 1,
	}, nil
}

// Init constructs the MAIN and IDLE threads. MAIN is bootstrapped as the
// already-running thread (the calling goroutine); IDLE is spawned ready
// to run but not yet switched to. Must be called exactly once.
func (k *Kernel) Init() {
	main := newThread(k.mainID, "main")
	k.setState(main, StateRunning)
	k.table.set(k.mainID, main)
	k.sw.Bootstrap(&main.Context)

	idle := newThread(k.idleID, "idle")
	idle.parent = main
	k.table.set(k.idleID, idle)

	page, err := k.mem.AllocPage()
	k.diag.Assert(err == nil, "Init: idle stack allocation failed: %v", err)
	idle.stackPage = page
	idle.stackBase = uintptr(page) + k.mem.PageSize()
	idle.anchor = &stackAnchor{thread: idle}

	k.sw.Setup(&idle.Context, idle.stackBase, func(any) { k.idleLoop() }, nil)
	k.setState(idle, StateReady)
	k.ready.insert(idle)

	k.initialized = true
}

// Current returns the thread the caller is running as.
func (k *Kernel) Current() *Thread {
	ctx := k.sw.Current()
	k.diag.Assert(ctx != nil, "Current: no context installed (Init not called?)")
	return ctx.Owner.(*Thread)
}

// CurrentID returns the calling thread's table slot.
func (k *Kernel) CurrentID() int { return k.Current().id }

// CurrentStackBase returns the calling thread's stack base.
func (k *Kernel) CurrentStackBase() uintptr { return k.Current().stackBase }

// Name returns the diagnostic name of the thread at slot tid.
func (k *Kernel) Name(tid int) string {
	t := k.table.get(tid)
	k.diag.Assert(t != nil, "Name: no such thread %d", tid)
	return t.name
}

// ProcessOf returns the process associated with the thread at slot tid,
// or nil if none has been set.
func (k *Kernel) ProcessOf(tid int) *Process {
	t := k.table.get(tid)
	k.diag.Assert(t != nil, "ProcessOf: no such thread %d", tid)
	return t.proc
}

// SetProcess associates proc with the thread at slot tid.
func (k *Kernel) SetProcess(tid int, p *Process) {
	t := k.table.get(tid)
	k.diag.Assert(t != nil, "SetProcess: no such thread %d", tid)
	t.proc = p
}

// JumpToUser drops the calling thread into user mode at pc with stack
// pointer sp. On real hardware this never returns; here it logs through
// arch.UserEntry and returns, since there is no user program to trap
// into.
func (k *Kernel) JumpToUser(sp, pc uintptr) {
	cur := k.Current()
	k.entry.FinishJump(cur.stackBase, sp, pc)
}

// setState transitions t to s, logging the change the way the reference
// kernel's set_thread_state debug macro does.
func (k *Kernel) setState(t *Thread, s State) {
	k.diag.Debugf("thread %q: %s -> %s", t.name, t.state, s)
	t.state = s
}

// wakeIdle pings the wfi primitive so a blocked (or future) idle Sleep
// call returns. Called whenever a thread is newly made READY, closing
// the race between idle's emptiness check and its wfi instruction: a
// wake delivered at any point before idle's next Sleep call is never
// lost, exactly as a pending interrupt bit would not be lost on real
// hardware.
func (k *Kernel) wakeIdle() {
	if k.wfi != nil {
		k.wfi.Wake()
	}
}
