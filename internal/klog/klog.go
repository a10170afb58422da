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

// Package klog is the kernel's diagnostic sink: a thin wrapper over
// zerolog giving the leveled, printf-style, one-line-per-event calling
// convention the teacher's pkg/log uses (Debugf, Warningf, Infof), plus
// the panic/assert/halt primitives the specification's Diagnostics
// interface requires.
package klog

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Logger implements arch.Diagnostics.
type Logger struct {
	z zerolog.Logger
}

// New returns a Logger writing leveled, human-readable lines to w.
func New(w *os.File) *Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}).With().Timestamp().Logger()
	return &Logger{z: zl}
}

// Tracef implements arch.Diagnostics.
func (l *Logger) Tracef(format string, args ...any) {
	l.z.Trace().Msg(fmt.Sprintf(format, args...))
}

// Debugf implements arch.Diagnostics.
func (l *Logger) Debugf(format string, args ...any) {
	l.z.Debug().Msg(fmt.Sprintf(format, args...))
}

// Kprintf implements arch.Diagnostics.
func (l *Logger) Kprintf(format string, args ...any) {
	l.z.Info().Msg(fmt.Sprintf(format, args...))
}

// Panic implements arch.Diagnostics.
func (l *Logger) Panic(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.z.Error().Msg(msg)
	panic(msg)
}

// Assert implements arch.Diagnostics.
func (l *Logger) Assert(cond bool, format string, args ...any) {
	if !cond {
		l.Panic("assertion failed: "+format, args...)
	}
}

// HaltSuccess implements arch.Diagnostics.
func (l *Logger) HaltSuccess() {
	l.z.Info().Msg("system halted: success")
	panic(haltSuccess{})
}

// haltSuccess is the sentinel panic value HaltSuccess uses to unwind
// without being mistaken for a genuine error by a recover() that checks
// for it specifically. cmd/ksim recovers it to exit 0 cleanly.
type haltSuccess struct{}

// IsHaltSuccess reports whether a recovered panic value is the sentinel
// HaltSuccess produced.
func IsHaltSuccess(r any) bool {
	_, ok := r.(haltSuccess)
	return ok
}
