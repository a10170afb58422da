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

// Command ksim is a small reference program demonstrating the scheduler:
// MAIN spawns a handful of worker threads that yield, wait on a shared
// condition, and exit; MAIN then joins each of them and halts cleanly.
// It exists to give kernel.Kernel a runnable embedding, the way the
// reference kernel's kmain would, not as a production entry point.
package main

import (
	"fmt"
	"os"

	"github.com/krish-sahni/Unix-like-OS/arch/simarch"
	"github.com/krish-sahni/Unix-like-OS/internal/intrmask"
	"github.com/krish-sahni/Unix-like-OS/internal/klog"
	"github.com/krish-sahni/Unix-like-OS/kernel"
)

func main() {
	os.Exit(run())
}

func run() int {
	diag := klog.New(os.Stdout)

	defer func() {
		if r := recover(); r != nil {
			if klog.IsHaltSuccess(r) {
				return
			}
			panic(r)
		}
	}()

	w, err := simarch.NewWFI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ksim: wfi: %v\n", err)
		return 1
	}
	defer w.Close()

	k, err := kernel.New(
		kernel.DefaultConfig(),
		simarch.NewMemory(4096),
		intrmask.New(),
		simarch.New(),
		simarch.NewUserEntry(diag),
		diag,
		w,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ksim: %v\n", err)
		return 1
	}
	k.Init()

	const nWorkers = 4
	var barrier kernel.Condition
	barrier.Init("ksim.barrier")

	tids := make([]int, 0, nWorkers)
	for i := 0; i < nWorkers; i++ {
		idx := i
		tid, err := k.Spawn(fmt.Sprintf("worker-%d", idx), func(arg any) {
			k.Wait(&barrier)
			diag.Kprintf("worker-%d running", idx)
			k.Yield()
			k.Exit()
		}, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ksim: spawn: %v\n", err)
			return 1
		}
		tids = append(tids, tid)
	}

	k.Yield()
	k.Broadcast(&barrier)

	for range tids {
		if _, err := k.JoinAny(); err != nil {
			fmt.Fprintf(os.Stderr, "ksim: join_any: %v\n", err)
			return 1
		}
	}

	k.Exit() // MAIN exiting halts the system.
	return 0
}
