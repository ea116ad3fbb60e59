// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrsim

import (
	"math"
	"os"
	"sync"

	"github.com/gogpu/vroverlay/vr"
)

// Name length limits enforced by CreateOverlay.
const (
	MaxKeyLength  = 255
	MaxNameLength = 127
)

// OverlayState is a snapshot of one simulated overlay.
type OverlayState struct {
	Key     string
	Name    string
	Visible bool

	WidthMeters float32
	Bounds      vr.TextureBounds

	TransformType vr.TransformType
	Origin        vr.TrackingUniverseOrigin
	Device        uint32
	Transform     vr.Matrix34

	// Content as last set by SetFromFile, SetRaw or SetTexture. Pixels is
	// tightly packed RGBA for textures and 4-byte raw buffers.
	FilePath      string
	Pixels        []byte
	Width         uint32
	Height        uint32
	BytesPerPixel uint32
	Texture       vr.Texture

	TextureSubmits int
}

// Overlay is a simulated vr.OverlayAPI.
type Overlay struct {
	mu sync.Mutex

	device *Device
	system *System

	next     vr.OverlayHandle
	overlays map[vr.OverlayHandle]*OverlayState
	keys     map[string]vr.OverlayHandle
	fail     map[string]vr.OverlayError
	calls    map[string]int
}

func newOverlay(device *Device, system *System) *Overlay {
	return &Overlay{
		device:   device,
		system:   system,
		overlays: make(map[vr.OverlayHandle]*OverlayState),
		keys:     make(map[string]vr.OverlayHandle),
		fail:     make(map[string]vr.OverlayError),
		calls:    make(map[string]int),
	}
}

// Fail makes the method named op (for example "SetTexture") return code
// until called again with vr.OverlayErrorNone.
func (o *Overlay) Fail(op string, code vr.OverlayError) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if code == vr.OverlayErrorNone {
		delete(o.fail, op)
		return
	}
	o.fail[op] = code
}

// Calls returns how many times the method named op has been called.
func (o *Overlay) Calls(op string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls[op]
}

// State returns a snapshot of overlay h.
func (o *Overlay) State(h vr.OverlayHandle) (OverlayState, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, ok := o.overlays[h]
	if !ok {
		return OverlayState{}, false
	}
	out := *st
	out.Pixels = append([]byte(nil), st.Pixels...)
	return out, true
}

// Count returns the number of live overlays.
func (o *Overlay) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.overlays)
}

// enter counts a call to op, then returns the overlay and the injected
// failure, if any. Callers must hold o.mu.
func (o *Overlay) enter(op string, h vr.OverlayHandle) (*OverlayState, error) {
	o.calls[op]++
	if code, ok := o.fail[op]; ok {
		return nil, code
	}
	st, ok := o.overlays[h]
	if !ok {
		return nil, vr.OverlayErrorInvalidHandle
	}
	return st, nil
}

// CreateOverlay implements vr.OverlayAPI.
func (o *Overlay) CreateOverlay(key, name string) (vr.OverlayHandle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.calls["CreateOverlay"]++
	if code, ok := o.fail["CreateOverlay"]; ok {
		return vr.InvalidOverlayHandle, code
	}
	switch {
	case len(key) > MaxKeyLength:
		return vr.InvalidOverlayHandle, vr.OverlayErrorKeyTooLong
	case len(name) > MaxNameLength:
		return vr.InvalidOverlayHandle, vr.OverlayErrorNameTooLong
	}
	if _, ok := o.keys[key]; ok {
		return vr.InvalidOverlayHandle, vr.OverlayErrorKeyInUse
	}

	o.next++
	h := o.next
	o.overlays[h] = &OverlayState{
		Key:           key,
		Name:          name,
		WidthMeters:   1,
		Bounds:        vr.TextureBounds{UMax: 1, VMax: 1},
		TransformType: vr.TransformAbsolute,
		Origin:        vr.TrackingUniverseStanding,
		Transform:     vr.Identity34(),
	}
	o.keys[key] = h
	return h, nil
}

// DestroyOverlay implements vr.OverlayAPI.
func (o *Overlay) DestroyOverlay(h vr.OverlayHandle) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("DestroyOverlay", h)
	if err != nil {
		return err
	}
	delete(o.keys, st.Key)
	delete(o.overlays, h)
	return nil
}

// ShowOverlay implements vr.OverlayAPI.
func (o *Overlay) ShowOverlay(h vr.OverlayHandle) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("ShowOverlay", h)
	if err != nil {
		return err
	}
	st.Visible = true
	return nil
}

// HideOverlay implements vr.OverlayAPI.
func (o *Overlay) HideOverlay(h vr.OverlayHandle) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("HideOverlay", h)
	if err != nil {
		return err
	}
	st.Visible = false
	return nil
}

// SetWidthInMeters implements vr.OverlayAPI.
func (o *Overlay) SetWidthInMeters(h vr.OverlayHandle, meters float32) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("SetWidthInMeters", h)
	if err != nil {
		return err
	}
	if meters < 0 || math.IsNaN(float64(meters)) {
		return vr.OverlayErrorInvalidParameter
	}
	st.WidthMeters = meters
	return nil
}

// SetTextureBounds implements vr.OverlayAPI.
func (o *Overlay) SetTextureBounds(h vr.OverlayHandle, bounds vr.TextureBounds) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("SetTextureBounds", h)
	if err != nil {
		return err
	}
	st.Bounds = bounds
	return nil
}

// SetTransformDeviceRelative implements vr.OverlayAPI.
func (o *Overlay) SetTransformDeviceRelative(h vr.OverlayHandle, device uint32, m vr.Matrix34) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("SetTransformDeviceRelative", h)
	if err != nil {
		return err
	}
	if device >= vr.MaxTrackedDeviceCount {
		return vr.OverlayErrorInvalidTrackedDevice
	}
	st.TransformType = vr.TransformTrackedDeviceRelative
	st.Device = device
	st.Transform = m
	return nil
}

// SetTransformAbsolute implements vr.OverlayAPI.
func (o *Overlay) SetTransformAbsolute(h vr.OverlayHandle, origin vr.TrackingUniverseOrigin, m vr.Matrix34) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("SetTransformAbsolute", h)
	if err != nil {
		return err
	}
	st.TransformType = vr.TransformAbsolute
	st.Origin = origin
	st.Transform = m
	return nil
}

// TransformAbsolute implements vr.OverlayAPI.
func (o *Overlay) TransformAbsolute(h vr.OverlayHandle) (vr.TrackingUniverseOrigin, vr.Matrix34, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("TransformAbsolute", h)
	if err != nil {
		return 0, vr.Matrix34{}, err
	}
	if st.TransformType != vr.TransformAbsolute {
		return 0, vr.Matrix34{}, vr.OverlayErrorWrongTransformType
	}
	return st.Origin, st.Transform, nil
}

// TransformDeviceRelative implements vr.OverlayAPI.
func (o *Overlay) TransformDeviceRelative(h vr.OverlayHandle) (uint32, vr.Matrix34, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("TransformDeviceRelative", h)
	if err != nil {
		return 0, vr.Matrix34{}, err
	}
	if st.TransformType != vr.TransformTrackedDeviceRelative {
		return 0, vr.Matrix34{}, vr.OverlayErrorWrongTransformType
	}
	return st.Device, st.Transform, nil
}

// TransformType implements vr.OverlayAPI.
func (o *Overlay) TransformType(h vr.OverlayHandle) (vr.TransformType, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("TransformType", h)
	if err != nil {
		return vr.TransformInvalid, err
	}
	return st.TransformType, nil
}

// SetFromFile implements vr.OverlayAPI. The file must exist; it is not
// decoded.
func (o *Overlay) SetFromFile(h vr.OverlayHandle, path string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("SetFromFile", h)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(path); err != nil || fi.IsDir() {
		return vr.OverlayErrorUnableToLoadFile
	}
	st.FilePath = path
	st.Pixels = nil
	st.Width, st.Height, st.BytesPerPixel = 0, 0, 0
	return nil
}

// SetRaw implements vr.OverlayAPI.
func (o *Overlay) SetRaw(h vr.OverlayHandle, pixels []byte, width, height, bytesPerPixel uint32) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("SetRaw", h)
	if err != nil {
		return err
	}
	if bytesPerPixel < 1 || bytesPerPixel > 4 || width == 0 || height == 0 {
		return vr.OverlayErrorInvalidParameter
	}
	if uint64(len(pixels)) < uint64(width)*uint64(height)*uint64(bytesPerPixel) {
		return vr.OverlayErrorInvalidParameter
	}
	st.FilePath = ""
	st.Pixels = append([]byte(nil), pixels...)
	st.Width, st.Height, st.BytesPerPixel = width, height, bytesPerPixel
	return nil
}

// SetTexture implements vr.OverlayAPI. The handle must name a live texture
// of the runtime's Device; its content is copied at submit time.
func (o *Overlay) SetTexture(h vr.OverlayHandle, tex *vr.Texture) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("SetTexture", h)
	if err != nil {
		return err
	}
	if tex == nil || tex.Handle == 0 {
		return vr.OverlayErrorInvalidTexture
	}
	pixels, w, hgt, ok := o.device.Pixels(tex.Handle)
	if !ok {
		return vr.OverlayErrorInvalidTexture
	}
	st.FilePath = ""
	st.Pixels = pixels
	st.Width, st.Height, st.BytesPerPixel = w, hgt, 4
	st.Texture = *tex
	st.TextureSubmits++
	return nil
}

// ComputeIntersection implements vr.OverlayAPI. The overlay is a
// WidthMeters wide rectangle in its local XY plane facing +Z; its height
// follows the aspect ratio of its content, or is square without content.
func (o *Overlay) ComputeIntersection(h vr.OverlayHandle, params vr.IntersectionParams) (vr.IntersectionResults, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, err := o.enter("ComputeIntersection", h)
	if err != nil || st.WidthMeters <= 0 {
		return vr.IntersectionResults{}, false
	}

	m := st.Transform.Matrix4()
	if st.TransformType == vr.TransformTrackedDeviceRelative {
		pose, ok := o.system.pose(st.Device)
		if !ok || !pose.PoseIsValid {
			return vr.IntersectionResults{}, false
		}
		m = mul4(pose.DeviceToAbsoluteTracking.Matrix4(), m)
	}

	width := float64(st.WidthMeters)
	height := width
	if st.Width > 0 && st.Height > 0 {
		height = width * float64(st.Height) / float64(st.Width)
	}
	return intersectPlane(m, width, height, params)
}

func intersectPlane(m vr.Matrix4, width, height float64, params vr.IntersectionParams) (vr.IntersectionResults, bool) {
	center := m.Translation()
	xAxis := [3]float64{m[0], m[4], m[8]}
	yAxis := [3]float64{m[1], m[5], m[9]}
	normal := [3]float64{m[2], m[6], m[10]}

	src := vec64(params.Source)
	dir := vec64(params.Direction)

	denom := dot(dir, normal)
	if math.Abs(denom) < 1e-9 {
		return vr.IntersectionResults{}, false
	}
	t := dot(sub(center, src), normal) / denom
	if t < 0 {
		return vr.IntersectionResults{}, false
	}

	hit := [3]float64{src[0] + dir[0]*t, src[1] + dir[1]*t, src[2] + dir[2]*t}
	local := sub(hit, center)
	x, y := dot(local, xAxis), dot(local, yAxis)
	if math.Abs(x) > width/2 || math.Abs(y) > height/2 {
		return vr.IntersectionResults{}, false
	}

	return vr.IntersectionResults{
		Point:    [3]float32{float32(hit[0]), float32(hit[1]), float32(hit[2])},
		Normal:   [3]float32{float32(normal[0]), float32(normal[1]), float32(normal[2])},
		UV:       [2]float32{float32(x/width + 0.5), float32(0.5 - y/height)},
		Distance: float32(t * math.Sqrt(dot(dir, dir))),
	}, true
}

func vec64(v [3]float32) [3]float64 {
	return [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// mul4 returns a*b for row-major matrices.
func mul4(a, b vr.Matrix4) vr.Matrix4 {
	var out vr.Matrix4
	for r := range 4 {
		for c := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[r*4+k] * b[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}
