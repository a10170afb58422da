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

import "testing"

func TestNewRejectsTooSmallConfig(t *testing.T) {
	_, closeFn, err := newRawKernel(1, "/dev/null")
	if err == nil {
		closeFn()
		t.Fatal("New should reject NThreads < 2")
	}
}

func TestDefaultConfigMatchesReferenceNTHR(t *testing.T) {
	if DefaultConfig().NThreads != 16 {
		t.Fatalf("DefaultConfig().NThreads = %d, want 16", DefaultConfig().NThreads)
	}
}
