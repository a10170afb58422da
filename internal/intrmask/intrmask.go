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

// Package intrmask is the default implementation of arch.Interrupts: a
// single-hart interrupt-enable flag. Disabling takes an internal lock that
// is held until a matching Enable or Restore(enabled); this is what lets
// kernel.SimulateISR model "an ISR waits for the hart to unmask interrupts,
// then runs with them masked again" by contending for the same lock every
// foreground list mutation already takes.
package intrmask

import (
	"sync"

	"github.com/krish-sahni/Unix-like-OS/arch"
)

// State is an alias for arch.State so Controller satisfies arch.
// Interrupts without a conversion at every call site.
type State = arch.State

// Controller is a single-hart interrupt mask.
type Controller struct {
	mu      sync.Mutex
	enabled bool
	held    bool
}

// New returns a Controller with interrupts initially enabled.
func New() *Controller {
	return &Controller{enabled: true}
}

// Disable blocks until interrupts can be masked (i.e. until no other
// goroutine — foreground code or a simulated ISR — is already inside a
// masked section), masks them, and returns the previous state. Callers
// must release with exactly one matching Enable or Restore call; nothing
// in this package's only caller (kernel/) ever calls Disable twice on the
// same goroutine without an intervening release, so reentrant deadlock
// does not arise in practice.
func (c *Controller) Disable() State {
	c.mu.Lock()
	prev := c.enabled
	c.enabled = false
	c.held = true
	return State(prev)
}

// Enable unconditionally unmasks interrupts, releasing the lock if a
// Disable call currently holds it. Which goroutine made that Disable call
// is not tracked.
func (c *Controller) Enable() {
	c.enabled = true
	c.release()
}

// Restore sets the mask back to prev, releasing the lock only if prev
// indicates interrupts were enabled before the corresponding Disable.
func (c *Controller) Restore(prev State) {
	c.enabled = bool(prev)
	if prev {
		c.release()
	}
}

// Enabled reports whether interrupts are currently unmasked.
func (c *Controller) Enabled() bool {
	return c.enabled
}

func (c *Controller) release() {
	if c.held {
		c.held = false
		c.mu.Unlock()
	}
}

// RunExclusive blocks until interrupts are unmasked, then runs fn with
// interrupts masked for fn's duration. This is the primitive
// kernel.SimulateISR uses to model an ISR that must wait for the hart to
// re-enable interrupts before it can touch thread lists, and that itself
// runs with interrupts effectively masked.
func (c *Controller) RunExclusive(fn func()) {
	saved := c.Disable()
	fn()
	c.Restore(saved)
}
