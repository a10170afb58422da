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

import "errors"

// ErrInvalidJoin is returned by Join when tid does not name a live child
// of the calling thread.
var ErrInvalidJoin = errors.New("kernel: invalid join target")

// ErrNoChildren is returned by JoinAny when the calling thread has no
// children at all, live or exited.
var ErrNoChildren = errors.New("kernel: no children to join")

// ErrForkFailed is returned by ForkToUser when address-space cloning or
// thread spawning fails.
var ErrForkFailed = errors.New("kernel: fork to user failed")
