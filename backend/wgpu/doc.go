// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements texture.Device on top of gogpu/wgpu's HAL.
//
// The device either wraps an explicit hal.Device and hal.Queue, or borrows
// them from a host application through a gpucontext.DeviceProvider that
// also exposes HalDevice() and HalQueue():
//
//	dev, err := wgpu.FromProvider(app, vr.TextureTypeVulkan)
//	if err != nil {
//		return err
//	}
//	session, err := vroverlay.New(vroverlay.WithRuntime(rt), vroverlay.WithDevice(dev))
//
// HAL textures are not CPU-mappable, so Map hands out a staging buffer with
// 256-byte aligned rows and Unmap copies it into the texture with
// hal.Queue.WriteTexture.
package wgpu
