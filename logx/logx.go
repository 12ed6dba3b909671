// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides severity-gated logging for the mesh kernel,
// wrapping the standard log/slog package. Operators only log at
// Debug level; hosts control what is visible via [UserLevel].
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the current user-visible logging level. Anything below
// this level is not logged. It defaults to [slog.LevelWarn] so that
// kernel debug traces are silent unless requested.
var UserLevel = slog.LevelWarn

// Debug logs the given message at the debug level, with the given
// key-value pairs, if [UserLevel] permits it.
func Debug(msg string, args ...any) {
	if UserLevel <= slog.LevelDebug {
		slog.Debug(msg, args...)
	}
}

// Warn logs the given message at the warn level, with the given
// key-value pairs, if [UserLevel] permits it.
func Warn(msg string, args ...any) {
	if UserLevel <= slog.LevelWarn {
		slog.Warn(msg, args...)
	}
}

// Error logs the given error at the error level if it is non-nil,
// and returns it unmodified for further handling.
func Error(err error) error {
	if err != nil && UserLevel <= slog.LevelError {
		slog.Error(err.Error())
	}
	return err
}

// Errorf logs a new error formatted with the given format and args,
// and returns it.
func Errorf(format string, args ...any) error {
	return Error(fmt.Errorf(format, args...))
}
