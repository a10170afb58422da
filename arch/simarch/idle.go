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

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// WFI is a real, interruptible wait-for-interrupt primitive backed by a
// pipe: Sleep blocks in unix.Select on the read end until a byte arrives,
// and Wake writes one. This gives the idle loop something it can actually
// block in (rather than busy-poll), the way the reference kernel's wfi
// instruction halts the hart until the next interrupt, and the teacher's
// own thread.wait blocks in a real blocking syscall (unix.Wait4) rather
// than spinning.
type WFI struct {
	r int
	w int
}

// NewWFI creates a pipe-backed wait-for-interrupt primitive. Callers must
// call Close when done.
func NewWFI() (*WFI, error) {
	fds, err := unix.Pipe2(unix.O_NONBLOCK)
	if err != nil {
		return nil, fmt.Errorf("simarch: pipe2: %w", err)
	}
	return &WFI{r: fds[0], w: fds[1]}, nil
}

// Sleep blocks until Wake is called (or has already been called since the
// last Sleep), consuming exactly one pending wake.
func (w *WFI) Sleep() error {
	for {
		var buf [1]byte
		n, err := unix.Read(w.r, buf[:])
		if n > 0 {
			return nil
		}
		if err == unix.EAGAIN {
			if err := w.selectReadable(); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("simarch: wfi read: %w", err)
		}
	}
}

func (w *WFI) selectReadable() error {
	var rfds unix.FdSet
	rfds.Set(w.r)
	_, err := unix.Select(w.r+1, &rfds, nil, nil, nil)
	if err != nil && err != unix.EINTR {
		return fmt.Errorf("simarch: wfi select: %w", err)
	}
	return nil
}

// Wake causes a blocked (or future) Sleep call to return.
func (w *WFI) Wake() {
	var b [1]byte
	_, _ = unix.Write(w.w, b[:])
}

// Close releases the pipe's file descriptors.
func (w *WFI) Close() error {
	err1 := unix.Close(w.r)
	err2 := unix.Close(w.w)
	if err1 != nil {
		return err1
	}
	return err2
}
