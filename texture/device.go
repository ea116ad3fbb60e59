// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vroverlay/vr"
)

// CPUAccess specifies how the CPU may touch a texture's memory.
type CPUAccess uint32

const (
	// CPUAccessWrite allows the texture to be mapped for writing.
	CPUAccessWrite CPUAccess = 1 << iota

	// CPUAccessRead allows the texture to be mapped for reading.
	CPUAccessRead
)

// Descriptor describes a texture to create.
type Descriptor struct {
	// Label is an optional debug name.
	Label string

	// Size is the texture extent. DepthOrArrayLayers is the array slice count.
	Size gputypes.Extent3D

	// MipLevelCount is the number of mip levels.
	MipLevelCount uint32

	// SampleCount is the number of samples per pixel.
	SampleCount uint32

	// Dimension is the texture dimension.
	Dimension gputypes.TextureDimension

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the GPU will use the texture.
	Usage gputypes.TextureUsage

	// CPUAccess specifies how the CPU will use the texture.
	CPUAccess CPUAccess

	// Dynamic marks a texture rewritten by the CPU every frame.
	Dynamic bool
}

// UploadDescriptor returns the descriptor of the overlay upload texture:
// width x height, one mip level, one array slice, RGBA8, CPU-writable.
func UploadDescriptor(width, height uint32) Descriptor {
	return Descriptor{
		Label: "vroverlay_upload",
		Size: gputypes.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		CPUAccess:     CPUAccessWrite,
		Dynamic:       true,
	}
}

// Texture is a device texture owned by an Uploader.
type Texture interface {
	Width() uint32
	Height() uint32

	// NativeHandle is the handle the compositor imports.
	NativeHandle() uintptr

	// Release frees the GPU resources. The texture must not be used after.
	Release()
}

// Mapping is CPU-visible texture memory returned by Device.Map.
// Row y starts at Data[y*RowPitch]; RowPitch may exceed width*4.
type Mapping struct {
	Data     []byte
	RowPitch int
}

// Device is the GPU device capability the upload pipeline needs.
type Device interface {
	CreateTexture(desc *Descriptor) (Texture, error)

	// Map gives exclusive CPU write access to the whole texture. Previous
	// contents are discarded.
	Map(tex Texture) (Mapping, error)

	// Unmap ends CPU access and makes the written contents visible to the
	// GPU. An error means the texture content is undefined.
	Unmap(tex Texture) error

	// TextureType tags native handles for the compositor.
	TextureType() vr.TextureType
}

// Submitter hands an imported texture to the compositor for one overlay.
// vr.OverlayAPI satisfies it.
type Submitter interface {
	SetTexture(h vr.OverlayHandle, tex *vr.Texture) error
}
