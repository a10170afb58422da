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

// intrController is the subset of internal/intrmask.Controller this
// package needs for SimulateISR, kept as an interface so tests can swap
// in a fake without importing the concrete mask type.
type intrController interface {
	RunExclusive(fn func())
}

// SimulateISR models an interrupt handler that mutates a condition
// (e.g. a timer tick broadcasting a sleep queue, or a device driver
// waking a blocked reader). It waits for the hart to unmask interrupts,
// runs fn with them masked again — exactly as a real trap handler runs
// with its own interrupts disabled until it returns — and is the one
// place outside foreground kernel code allowed to call Broadcast.
//
// This has no counterpart in the reference kernel, which never models
// the ISR side of the race its idle loop guards against; it exists here
// so that race is actually exercisable by a test rather than merely
// asserted in a comment.
func (k *Kernel) SimulateISR(intr intrController, fn func()) {
	intr.RunExclusive(fn)
}
