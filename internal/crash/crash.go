/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns panics in the CLI into a logged error plus a
// crash report file instead of a bare stack trace on stderr.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "textimg/internal/log"
	"textimg/internal/version"
)

// exitFn is swapped out in tests so Recover does not kill the test
// process.
var exitFn = os.Exit

// reportDir is the directory crash reports are written to; empty means
// the system temp directory.
var reportDir = ""

// SetReportDir overrides where crash reports are written.
func SetReportDir(dir string) { reportDir = dir }

// Recover captures a panic, logs it with the stack trace, writes an
// error report file and exits with a non-zero code.
//
// Usage: defer crash.Recover()
func Recover() {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		reportPath, err := writeReport(r, stack)
		if err != nil {
			l.Error("write crash report failed", slog.Any("err", err))
		}

		fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath)
		fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
		exitFn(2)
	}
}

func writeReport(r any, stack []byte) (string, error) {
	dir := reportDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "textimg-crash")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("crash-%s.txt", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "textimg crash report\n")
	fmt.Fprintf(&buf, "time: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&buf, "version: %s\n", version.String())
	fmt.Fprintf(&buf, "os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&buf, "panic: %v\n\n", r)
	buf.Write(stack)

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
