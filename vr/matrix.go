// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vr

// Matrix34 is the runtime's 3x4 rigid transform, rows of [rotation | translation].
type Matrix34 [3][4]float32

// Matrix4 is a row-major 4x4 transform:
//
//	| m[0]  m[1]  m[2]  m[3]  |
//	| m[4]  m[5]  m[6]  m[7]  |
//	| m[8]  m[9]  m[10] m[11] |
//	| m[12] m[13] m[14] m[15] |
type Matrix4 [16]float64

// Identity34 returns the identity transform.
func Identity34() Matrix34 {
	return Matrix34{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

// Identity4 returns the 4x4 identity transform.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4 extends m with an implicit [0 0 0 1] bottom row.
func (m Matrix34) Matrix4() Matrix4 {
	var out Matrix4
	for r := range 3 {
		for c := range 4 {
			out[r*4+c] = float64(m[r][c])
		}
	}
	out[15] = 1
	return out
}

// Matrix34 drops the bottom row of m.
func (m Matrix4) Matrix34() Matrix34 {
	var out Matrix34
	for r := range 3 {
		for c := range 4 {
			out[r][c] = float32(m[r*4+c])
		}
	}
	return out
}

// Translation returns the translation column of m.
func (m Matrix4) Translation() [3]float64 {
	return [3]float64{m[3], m[7], m[11]}
}

// Forward returns the -Z axis of m, the direction a tracked device points.
func (m Matrix4) Forward() [3]float64 {
	return [3]float64{-m[2], -m[6], -m[10]}
}
