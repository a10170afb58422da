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

import "github.com/krish-sahni/Unix-like-OS/arch"

// State is a thread's position in its lifecycle.
type State int

const (
	// StateUninitialized is the zero value: a table slot the thread
	// struct occupies before Spawn or Init finishes populating it.
	StateUninitialized State = iota
	StateStopped
	StateWaiting
	StateRunning
	StateReady
	StateExited
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "UNINITIALIZED"
	case StateStopped:
		return "STOPPED"
	case StateWaiting:
		return "WAITING"
	case StateRunning:
		return "RUNNING"
	case StateReady:
		return "READY"
	case StateExited:
		return "EXITED"
	default:
		return "UNKNOWN"
	}
}

// stackAnchor sits at the base of a thread's allocated stack and points
// back at its owner, the way the reference kernel plants a struct
// stack_anchor there so a trap handler can recover "which thread is
// this" from the stack pointer alone. Nothing in this simulation reads a
// stack pointer to find it, but fork.go's argument-capture fix depends
// on the same "anchor is only valid once its thread field is written"
// ordering the reference implementation's bug violates.
type stackAnchor struct {
	thread *Thread
}

// Thread is one thread-table entry.
type Thread struct {
	// Context is embedded first: the reference kernel's thread_context
	// must be the first member of struct thread so the arch trampoline
	// can treat a *Thread and a *thread_context address interchangeably.
	// arch.Switcher never sees more than &t.Context, but the ordering is
	// kept as a documented layout contract, not an incidental one.
	arch.Context

	id   int
	name string

	stackPage arch.Page
	stackBase uintptr
	stackSize uintptr
	anchor    *stackAnchor

	state State
	proc  *Process

	// waitCond is the condition this thread is parked on. It is valid
	// iff state == StateWaiting: Wait sets it before parking, Broadcast
	// clears it on every thread it wakes.
	waitCond *Condition

	parent   *Thread
	listNext *Thread

	// childExit is this thread's own condition: every child that exits
	// broadcasts on its parent's childExit, never its own.
	childExit *Condition
}

// newThread allocates a Thread record (but does not give it a stack,
// context, or table slot — New/Spawn do that).
func newThread(id int, name string) *Thread {
	t := &Thread{
		id:    id,
		name:  name,
		state: StateUninitialized,
	}
	t.Context = arch.Context{Owner: t, Resume: make(chan struct{}, 1)}
	t.childExit = newCondition(name + ".child_exit")
	return t
}

// ID returns the thread's table slot.
func (t *Thread) ID() int { return t.id }

// Name returns the thread's diagnostic name.
func (t *Thread) Name() string { return t.name }

// State returns the thread's current lifecycle state.
func (t *Thread) State() State { return t.state }
