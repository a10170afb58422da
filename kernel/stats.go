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

// ThreadStat is a point-in-time snapshot of one thread-table slot.
type ThreadStat struct {
	ID       int
	Name     string
	State    State
	ParentID int // -1 if no parent (MAIN)
}

// Stats returns a snapshot of every occupied thread-table slot, ordered
// by slot number. The only lock it takes is the table's own, held while
// the slot slice is copied; each thread's name, state and parent are then
// read without any lock or interrupt masking, so a caller running
// concurrently with the scheduler can observe a state mid-transition.
//
// This has no counterpart in the reference kernel, which has no
// equivalent of a "ps" introspection call; it is supplemented here
// because a fixed-size thread table with a free-slot bitset is exactly
// the kind of structure worth being able to inspect live.
func (k *Kernel) Stats() []ThreadStat {
	snap := k.table.snapshot()
	out := make([]ThreadStat, 0, len(snap))
	for _, t := range snap {
		if t == nil {
			continue
		}
		parentID := -1
		if t.parent != nil {
			parentID = t.parent.id
		}
		out = append(out, ThreadStat{
			ID:       t.id,
			Name:     t.name,
			State:    t.state,
			ParentID: parentID,
		})
	}
	return out
}
