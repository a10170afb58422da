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
	"fmt"
	"os"
	"testing"

	"github.com/krish-sahni/Unix-like-OS/arch/simarch"
	"github.com/krish-sahni/Unix-like-OS/internal/intrmask"
	"github.com/krish-sahni/Unix-like-OS/internal/klog"
)

// newTestKernel wires a Kernel against the real simarch/intrmask/klog
// implementations (the only ones this module ships) with a small thread
// table, and calls Init from the calling goroutine, exactly as a real
// embedding program's main() would from what becomes MAIN. It must only
// be called from the goroutine running the test itself: it uses
// t.Fatalf, which the testing package forbids from any other goroutine.
func newTestKernel(t *testing.T, nThreads int) *Kernel {
	t.Helper()

	k, closeFn, err := newRawKernel(nThreads, os.DevNull)
	if err != nil {
		t.Fatalf("newRawKernel: %v", err)
	}
	t.Cleanup(closeFn)
	return k
}

// newRawKernel builds a Kernel the same way newTestKernel does but
// reports failure as a plain error instead of calling any *testing.T
// method, so it is safe to call from a worker goroutine spawned by an
// errgroup (or any other goroutine besides the test's own).
func newRawKernel(nThreads int, logPath string) (*Kernel, func(), error) {
	logFile, err := os.OpenFile(logPath, os.O_WRONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", logPath, err)
	}

	w, err := simarch.NewWFI()
	if err != nil {
		logFile.Close()
		return nil, nil, fmt.Errorf("simarch.NewWFI: %w", err)
	}

	diag := klog.New(logFile)
	k, err := New(
		Config{NThreads: nThreads},
		simarch.NewMemory(4096),
		intrmask.New(),
		simarch.New(),
		simarch.NewUserEntry(diag),
		diag,
		w,
	)
	if err != nil {
		w.Close()
		logFile.Close()
		return nil, nil, fmt.Errorf("kernel.New: %w", err)
	}
	k.Init()

	closeFn := func() {
		_ = w.Close()
		_ = logFile.Close()
	}
	return k, closeFn, nil
}
