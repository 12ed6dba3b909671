// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides tolerance-aware test assertions
// complementing those of testify.
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// EqualTol asserts that the two values are within the given
// tolerance of each other.
func EqualTol(t assert.TestingT, expected, actual, tolerance float32) bool {
	return assert.InDelta(t, expected, actual, float64(tolerance))
}

// Equal asserts that the two values are within a standard
// tolerance (1e-6) of each other.
func Equal(t assert.TestingT, expected, actual float32) bool {
	return EqualTol(t, expected, actual, 1.0e-6)
}

// EqualTolSlice asserts that the elements of the two slices are within
// the given tolerance of each other.
func EqualTolSlice(t assert.TestingT, expected, actual []float32, tolerance float32) bool {
	if !assert.Equal(t, len(expected), len(actual)) {
		return false
	}
	ok := true
	for i := range expected {
		if !EqualTol(t, expected[i], actual[i], tolerance) {
			ok = false
		}
	}
	return ok
}
