// Copyright (c) 2026, The zmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import "github.com/zos-apps/zmodel/base/iox/tomlx"

// Presets is a named collection of brush settings that hosts can
// persist between sessions.
type Presets map[string]BrushSettings

// DefaultPresets returns the built-in brush presets.
func DefaultPresets() Presets {
	return Presets{
		"grab":    {Type: Grab, Radius: 0.5, Strength: 1, Falloff: FalloffSmooth},
		"smooth":  {Type: Smooth, Radius: 0.5, Strength: 0.5, Falloff: FalloffSmooth},
		"clay":    {Type: Clay, Radius: 0.4, Strength: 0.6, Falloff: FalloffSmooth, AutoSmooth: 0.2},
		"crease":  {Type: Crease, Radius: 0.3, Strength: 0.7, Falloff: FalloffSharp},
		"inflate": {Type: Inflate, Radius: 0.5, Strength: 0.5, Falloff: FalloffSphere},
		"flatten": {Type: Flatten, Radius: 0.6, Strength: 0.8, Falloff: FalloffLinear},
		"pinch":   {Type: Pinch, Radius: 0.3, Strength: 0.6, Falloff: FalloffSharp},
	}
}

// OpenPresets reads brush presets from the given TOML file.
func OpenPresets(filename string) (Presets, error) {
	p := Presets{}
	err := tomlx.Open(&p, filename)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SavePresets writes the given presets to the given TOML file.
func SavePresets(p Presets, filename string) error {
	return tomlx.Save(p, filename)
}
