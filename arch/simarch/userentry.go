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

package simarch

import "github.com/krish-sahni/Unix-like-OS/arch"

// UserEntry logs the would-be trap into user mode instead of performing
// one, since no real user program exists for this module's simulated
// threads to run. It implements arch.UserEntry.
type UserEntry struct {
	diag arch.Diagnostics
}

// NewUserEntry returns a UserEntry logging through diag.
func NewUserEntry(diag arch.Diagnostics) *UserEntry {
	return &UserEntry{diag: diag}
}

// FinishJump implements arch.UserEntry. Real hardware never returns from
// this; the caller (kernel.ForkToUser's spawned start function) treats the
// return as "the simulated user program ran to completion" and exits the
// thread immediately afterward.
func (u *UserEntry) FinishJump(stackBase, usp, upc uintptr) {
	u.diag.Tracef("finish_jump: stack=%#x usp=%#x upc=%#x (simulated, returning)", stackBase, usp, upc)
}
