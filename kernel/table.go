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
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// table is the fixed-size thread table, slot 0 reserved for MAIN and the
// last slot reserved for IDLE. Free-slot tracking uses a bitset in place
// of the teacher's gVisor-internal ID pool; allocate still finds the
// lowest free slot with a linear scan over it, like the reference
// kernel's scan of thrtab.
type table struct {
	mu    sync.Mutex
	slots []*Thread
	used  *bitset.BitSet
	n     uint
}

func newTable(n uint) *table {
	return &table{
		slots: make([]*Thread, n),
		used:  bitset.New(n),
		n:     n,
	}
}

// allocate claims the lowest-numbered free slot in the open interval
// (0, n-1), leaving slot 0 (MAIN) and slot n-1 (IDLE) untouched.
func (t *table) allocate() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := uint(1); i < t.n-1; i++ {
		if !t.used.Test(i) {
			t.used.Set(i)
			return int(i), true
		}
	}
	return 0, false
}

// set installs th at slot id, marking it used.
func (t *table) set(id int, th *Thread) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.slots[id] = th
	t.used.Set(uint(id))
}

// get returns the thread at slot id, or nil if id is out of range or
// unoccupied.
func (t *table) get(id int) *Thread {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id < 0 || uint(id) >= t.n {
		return nil
	}
	return t.slots[id]
}

// free releases slot id back to the pool.
func (t *table) free(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.slots[id] = nil
	t.used.Clear(uint(id))
}

// snapshot returns a copy of the live slot slice, safe to range over
// without holding the table's lock.
func (t *table) snapshot() []*Thread {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*Thread, len(t.slots))
	copy(out, t.slots)
	return out
}
