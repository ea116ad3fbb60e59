// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FromImage scales img to width x height and returns it as a tight BGRA
// buffer, the layout Uploader.Update expects.
//
// An image already of the requested size is copied without resampling.
// Returns nil when width or height is not positive.
func FromImage(img image.Image, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	src := img.Bounds()
	if src.Dx() == width && src.Dy() == height {
		xdraw.Draw(dst, dst.Bounds(), img, src.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	}

	out := make([]byte, width*height*bytesPerPixel)
	SwapRedBlue(out, width*bytesPerPixel, dst.Pix, dst.Stride, width, height)
	return out
}
