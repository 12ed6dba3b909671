// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import "testing"

func TestEqualTol(t *testing.T) {
	EqualTol(t, 1, 1.0000001, 1e-5)
	Equal(t, 2, 2)
	EqualTolSlice(t, []float32{0, 0.5, 1}, []float32{0, 0.5000001, 1}, 1e-5)
}
