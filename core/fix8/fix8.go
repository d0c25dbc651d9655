// Package fix8 implements the 24.8 fixed-point coordinate format used at
// the shaping-engine boundary.
//
// The shaping engine communicates advances, offsets and scales as integers
// with 256 sub-units per nominal unit. Every metric crossing the engine
// boundary goes through this package exactly once in each direction.
// Callers must tolerate rounding at 1/256-unit granularity.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
package fix8

import "fmt"

// Position is a coordinate value in 24.8 fixed-point format.
type Position int32

// Scale is the number of fixed-point sub-units per nominal unit.
const Scale = 256

// FromFloat32 converts a floating-point value to fixed-point,
// truncating towards zero.
func FromFloat32(v float32) Position {
	return Position(v * Scale)
}

// ToFloat32 converts a fixed-point value to floating-point.
func ToFloat32(p Position) float32 {
	return float32(p) / Scale
}

// Float32 is a convenience for ToFloat32.
func (p Position) Float32() float32 {
	return ToFloat32(p)
}

// MulDiv computes v * num / den in 64-bit intermediate precision.
// It is the em-scaling primitive: font-unit values are brought into
// fixed-point space by multiplying with a fixed-point scale and dividing
// by the font's units-per-em.
func MulDiv(v int32, num Position, den int32) Position {
	if den == 0 {
		return 0
	}
	return Position(int64(v) * int64(num) / int64(den))
}

// Stringer implementation, e.g. "12+3/256u".
func (p Position) String() string {
	return fmt.Sprintf("%d+%d/256u", p/Scale, p%Scale)
}
