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

// Package simarch is the one concrete implementation of the arch package's
// consumed interfaces used by this module's tests and its reference demo.
// Go cannot splice a goroutine's raw stack and register file the way the
// reference kernel's thrasm.s trampoline can, so Switch is built instead on
// the same request/response-over-channel shape the teacher
// (gVisor's systrap subprocess manager) uses to hand a traced OS thread
// back to its caller: each kernel thread owns a goroutine parked on a
// buffered channel, and a "switch" is a signal to resume it.
package simarch

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/krish-sahni/Unix-like-OS/arch"
)

// Switcher implements arch.Switcher by parking and resuming goroutines.
type Switcher struct {
	current atomic.Pointer[arch.Context]
}

// New returns a ready Switcher.
func New() *Switcher {
	return &Switcher{}
}

// Bootstrap implements arch.Switcher.
func (s *Switcher) Bootstrap(ctx *arch.Context) {
	s.current.Store(ctx)
}

// Current implements arch.Switcher.
func (s *Switcher) Current() *arch.Context {
	return s.current.Load()
}

// Setup implements arch.Switcher. The sp argument is accepted for
// interface fidelity with the reference _thread_setup contract but is not
// dereferenced: a goroutine stack is not addressable the way a kernel
// stack is, and nothing in this module's core reads it.
func (s *Switcher) Setup(ctx *arch.Context, sp uintptr, start func(arg any), arg any) {
	_ = sp
	go func() {
		// Park until the first Switch resumes this context, exactly as
		// a freshly set-up kernel thread does not run until the
		// scheduler first switches to it.
		<-ctx.Resume
		start(arg)
	}()
}

// Switch implements arch.Switcher.
func (s *Switcher) Switch(cur, next *arch.Context) *arch.Context {
	if cur == nil || next == nil {
		panic(fmt.Sprintf("simarch: Switch called with nil context (cur=%v next=%v)", cur, next))
	}

	next.CameFrom = cur
	s.current.Store(next)

	select {
	case next.Resume <- struct{}{}:
	default:
		panic("simarch: target context was already resumable (double switch?)")
	}

	<-cur.Resume
	return cur.CameFrom
}

// Memory is an in-process stand-in for the real page allocator and
// address-space subsystem. It hands out monotonically increasing nominal
// page addresses and records which are outstanding, so tests can assert
// that every allocated stack is eventually freed exactly once — the same
// property the scheduler's deferred stack-reclamation step depends on.
type Memory struct {
	mu       sync.Mutex
	pageSize uintptr
	next     uintptr
	live     map[arch.Page]bool
	spaces   map[uintptr]uint16
	nextMtag uintptr
}

// NewMemory returns a Memory with the given nominal page size.
func NewMemory(pageSize uintptr) *Memory {
	return &Memory{
		pageSize: pageSize,
		next:     pageSize, // keep 0 reserved as "no page"
		live:     make(map[arch.Page]bool),
		spaces:   make(map[uintptr]uint16),
		nextMtag: 1,
	}
}

// AllocPage implements arch.Memory.
func (m *Memory) AllocPage() (arch.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := arch.Page(m.next)
	m.next += m.pageSize
	m.live[p] = true
	return p, nil
}

// FreePage implements arch.Memory.
func (m *Memory) FreePage(p arch.Page) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.live[p] {
		panic(fmt.Sprintf("simarch: double free or free of unallocated page %#x", uintptr(p)))
	}
	delete(m.live, p)
}

// PageSize implements arch.Memory.
func (m *Memory) PageSize() uintptr {
	return m.pageSize
}

// SpaceClone implements arch.Memory. Address-space translation is not
// modeled; the returned mtag simply encodes asid in its high bits the way
// the reference kernel's SATP_ASID_MASK does, so ForkToUser's asid
// extraction stays meaningful.
func (m *Memory) SpaceClone(asid uint16) (uintptr, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mtag := m.nextMtag | (uintptr(asid) << 44)
	m.nextMtag++
	m.spaces[mtag] = asid
	return mtag, nil
}

// SpaceSwitch implements arch.Memory.
func (m *Memory) SpaceSwitch(mtag uintptr) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.spaces[mtag]
	return ok
}

// LivePages reports how many pages are currently outstanding, for test
// assertions that the scheduler frees every stack it allocates.
func (m *Memory) LivePages() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}
