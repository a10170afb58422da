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

// Config holds the fixed parameters of a Kernel instance. It is the Go
// analogue of the reference kernel's NTHR compile-time constant: rather
// than a #define baked into the thread table's array size, it is a value
// supplied to New, so a test can build several independently sized
// kernels in the same process.
type Config struct {
	// NThreads is the total number of thread-table slots, including the
	// two reserved slots: 0 (MAIN) and NThreads-1 (IDLE). Must be >= 2.
	NThreads int
}

// DefaultConfig returns the reference kernel's NTHR=16.
func DefaultConfig() Config {
	return Config{NThreads: 16}
}
