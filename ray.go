// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay

import (
	"github.com/gogpu/vroverlay/vr"
)

// Vec3 is a point or direction in the standing tracking universe, in
// meters.
type Vec3 = [3]float64

// Intersection is where a ray hits an overlay.
type Intersection struct {
	// Point is the hit position in the standing universe.
	Point Vec3

	// Normal is the overlay's surface normal at Point.
	Normal Vec3

	// U and V are texture coordinates of the hit, in [0, 1].
	U, V float64

	// Distance is measured from the ray origin to Point.
	Distance float64
}

// ComputeRayIntersection casts a ray from origin along direction in the
// standing universe. ok is false, with a nil error, when the ray misses.
func (s *Session) ComputeRayIntersection(h Handle, origin, direction Vec3) (hit Intersection, ok bool, err error) {
	nh, err := s.native(h)
	if err != nil {
		return Intersection{}, false, err
	}
	params := vr.IntersectionParams{
		Source:    vec32(origin),
		Direction: vec32(direction),
		Origin:    vr.TrackingUniverseStanding,
	}
	res, ok := s.overlay.ComputeIntersection(nh, params)
	if !ok {
		return Intersection{}, false, nil
	}
	return Intersection{
		Point:    vec64(res.Point),
		Normal:   vec64(res.Normal),
		U:        float64(res.UV[0]),
		V:        float64(res.UV[1]),
		Distance: float64(res.Distance),
	}, true, nil
}

// RayFromPose returns the ray a tracked device points along: its position
// and its -Z axis.
func RayFromPose(m Matrix4) (origin, direction Vec3) {
	return m.Translation(), m.Forward()
}

func vec32(v Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func vec64(v [3]float32) Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
