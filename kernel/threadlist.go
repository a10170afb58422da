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

// threadList is a singly linked FIFO of *Thread, intrusive on each
// Thread's listNext field so membership costs no allocation. It is not
// interrupt-safe on its own: every caller that shares a list with a
// simulated ISR brackets mutation with the kernel's Interrupts.
type threadList struct {
	head, tail *Thread
}

// clear empties the list without touching the threads it held.
func (l *threadList) clear() {
	l.head = nil
	l.tail = nil
}

// empty reports whether the list holds no threads.
func (l *threadList) empty() bool {
	return l.head == nil
}

// insert appends t to the tail of the list. The nil check runs before t
// is ever dereferenced — insert(nil) is a silent no-op, never a write
// through a nil pointer.
func (l *threadList) insert(t *Thread) {
	if t == nil {
		return
	}
	t.listNext = nil
	if l.tail != nil {
		l.tail.listNext = t
	} else {
		l.head = t
	}
	l.tail = t
}

// remove pops and returns the thread at the head of the list, or nil if
// the list is empty.
func (l *threadList) remove() *Thread {
	t := l.head
	if t == nil {
		return nil
	}
	l.head = t.listNext
	if l.head == nil {
		l.tail = nil
	}
	t.listNext = nil
	return t
}

// append moves every thread in other onto the tail of l, leaving other
// empty.
func (l *threadList) append(other *threadList) {
	if other.head == nil {
		return
	}
	if l.tail != nil {
		l.tail.listNext = other.head
	} else {
		l.head = other.head
	}
	l.tail = other.tail
	other.clear()
}
