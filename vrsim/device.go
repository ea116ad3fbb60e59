// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrsim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/vroverlay/texture"
	"github.com/gogpu/vroverlay/vr"
)

// DefaultRowPitchAlignment is the row pitch alignment of a new Device.
const DefaultRowPitchAlignment = 256

var (
	errReleased  = errors.New("vrsim: texture released")
	errForeign   = errors.New("vrsim: texture not created by this device")
	errMapped    = errors.New("vrsim: texture already mapped")
	errNotMapped = errors.New("vrsim: texture not mapped")
)

// Device is a software texture.Device. Texture memory is a byte slice whose
// rows are padded to the configured pitch alignment.
type Device struct {
	mu sync.Mutex

	pitchAlign int
	misalign   int
	texType    vr.TextureType
	createErr  error
	mapErr     error
	unmapErr   error

	next     uintptr
	live     map[uintptr]*Texture
	created  int
	released int
	maps     int
	unmaps   int
	lastDesc texture.Descriptor
}

// NewDevice creates a Device with DefaultRowPitchAlignment, aligned mapped
// memory and Vulkan texture handles.
func NewDevice() *Device {
	return &Device{
		pitchAlign: DefaultRowPitchAlignment,
		texType:    vr.TextureTypeVulkan,
		next:       0x1000,
		live:       make(map[uintptr]*Texture),
	}
}

// SetRowPitchAlignment sets the alignment rows are padded to in textures
// created afterwards. Values below 1 mean tightly packed rows.
func (d *Device) SetRowPitchAlignment(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pitchAlign = max(n, 1)
}

// SetMisalignment offsets the mapped base address of textures created
// afterwards by n bytes.
func (d *Device) SetMisalignment(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.misalign = max(n, 0)
}

// SetTextureType sets the type tag returned by TextureType.
func (d *Device) SetTextureType(t vr.TextureType) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texType = t
}

// FailCreate makes CreateTexture return err until called again with nil.
func (d *Device) FailCreate(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.createErr = err
}

// FailMap makes Map return err until called again with nil.
func (d *Device) FailMap(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mapErr = err
}

// FailUnmap makes Unmap return err until called again with nil, as a
// device whose upload fails after the CPU writes.
func (d *Device) FailUnmap(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.unmapErr = err
}

// CreateTexture implements texture.Device.
func (d *Device) CreateTexture(desc *texture.Descriptor) (texture.Texture, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.createErr != nil {
		return nil, d.createErr
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("vrsim: invalid texture size %dx%d", desc.Size.Width, desc.Size.Height)
	}
	if desc.CPUAccess&texture.CPUAccessWrite == 0 {
		return nil, errors.New("vrsim: texture is not CPU writable")
	}

	rowBytes := int(desc.Size.Width) * 4
	pitch := (rowBytes + d.pitchAlign - 1) / d.pitchAlign * d.pitchAlign
	mem := make([]byte, d.misalign+pitch*int(desc.Size.Height))

	d.next += 0x10
	tex := &Texture{
		dev:    d,
		handle: d.next,
		width:  desc.Size.Width,
		height: desc.Size.Height,
		pitch:  pitch,
		data:   mem[d.misalign:],
	}
	d.live[tex.handle] = tex
	d.created++
	d.lastDesc = *desc
	return tex, nil
}

// Map implements texture.Device.
func (d *Device) Map(t texture.Texture) (texture.Mapping, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mapErr != nil {
		return texture.Mapping{}, d.mapErr
	}
	tex, err := d.own(t)
	if err != nil {
		return texture.Mapping{}, err
	}
	if tex.mapped {
		return texture.Mapping{}, errMapped
	}
	tex.mapped = true
	d.maps++
	return texture.Mapping{Data: tex.data, RowPitch: tex.pitch}, nil
}

// Unmap implements texture.Device. An error injected with FailUnmap is
// returned after the texture is unmapped.
func (d *Device) Unmap(t texture.Texture) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	tex, err := d.own(t)
	if err != nil {
		return err
	}
	if !tex.mapped {
		return errNotMapped
	}
	tex.mapped = false
	d.unmaps++
	return d.unmapErr
}

// TextureType implements texture.Device.
func (d *Device) TextureType() vr.TextureType {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.texType
}

func (d *Device) own(t texture.Texture) (*Texture, error) {
	tex, ok := t.(*Texture)
	if !ok || tex.dev != d {
		return nil, errForeign
	}
	if tex.released {
		return nil, errReleased
	}
	return tex, nil
}

// Pixels returns a tightly packed copy of the live texture with the given
// native handle.
func (d *Device) Pixels(handle uintptr) (pixels []byte, width, height uint32, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	tex, ok := d.live[handle]
	if !ok {
		return nil, 0, 0, false
	}
	rowBytes := int(tex.width) * 4
	pixels = make([]byte, rowBytes*int(tex.height))
	for y := range int(tex.height) {
		copy(pixels[y*rowBytes:(y+1)*rowBytes], tex.data[y*tex.pitch:])
	}
	return pixels, tex.width, tex.height, true
}

// Created returns how many textures have been created.
func (d *Device) Created() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.created
}

// Released returns how many textures have been released.
func (d *Device) Released() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.released
}

// Live returns how many textures are allocated and not yet released.
func (d *Device) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.live)
}

// Maps returns how many times a texture has been mapped.
func (d *Device) Maps() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.maps
}

// Unmaps returns how many times a mapped texture has been unmapped.
func (d *Device) Unmaps() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.unmaps
}

// LastDescriptor returns the descriptor of the most recent successful
// CreateTexture.
func (d *Device) LastDescriptor() texture.Descriptor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastDesc
}

// Texture is a texture created by a Device.
type Texture struct {
	dev      *Device
	handle   uintptr
	width    uint32
	height   uint32
	pitch    int
	data     []byte
	mapped   bool
	released bool
}

// Width implements texture.Texture.
func (t *Texture) Width() uint32 { return t.width }

// Height implements texture.Texture.
func (t *Texture) Height() uint32 { return t.height }

// NativeHandle implements texture.Texture.
func (t *Texture) NativeHandle() uintptr { return t.handle }

// RowPitch returns the byte distance between rows.
func (t *Texture) RowPitch() int { return t.pitch }

// Release implements texture.Texture. Releasing twice is a no-op.
func (t *Texture) Release() {
	d := t.dev
	d.mu.Lock()
	defer d.mu.Unlock()
	if t.released {
		return
	}
	t.released = true
	delete(d.live, t.handle)
	d.released++
}
