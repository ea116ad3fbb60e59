// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"encoding/binary"
	"unsafe"
)

const bytesPerPixel = 4

// SwapRedBlue copies width x height pixels from src to dst, converting
// B,G,R,A byte order to R,G,B,A (and back; the swap is symmetric).
//
// Rows start every srcPitch bytes in src and every dstPitch bytes in dst;
// both pitches must be at least width*4 and the slices long enough for
// height rows. When both base addresses and both pitches are 4-byte aligned
// each pixel is converted with one masked 32-bit operation; otherwise it
// falls back to a byte-wise copy. Both produce identical output.
func SwapRedBlue(dst []byte, dstPitch int, src []byte, srcPitch int, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if wordAligned(dst, dstPitch) && wordAligned(src, srcPitch) {
		swapRowsFast(dst, dstPitch, src, srcPitch, width, height)
		return
	}
	swapRowsBytewise(dst, dstPitch, src, srcPitch, width, height)
}

// wordAligned reports whether b starts on a 4-byte boundary and pitch is a
// multiple of 4.
func wordAligned(b []byte, pitch int) bool {
	if pitch%bytesPerPixel != 0 || len(b) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%bytesPerPixel == 0
}

// swapPixel swaps bytes 0 and 2 of a little-endian BGRA word.
func swapPixel(v uint32) uint32 {
	return (v & 0xFF00FF00) | ((v & 0x00FF0000) >> 16) | ((v & 0x000000FF) << 16)
}

func swapRowsFast(dst []byte, dstPitch int, src []byte, srcPitch int, width, height int) {
	rowBytes := width * bytesPerPixel
	for y := range height {
		s := src[y*srcPitch : y*srcPitch+rowBytes]
		d := dst[y*dstPitch : y*dstPitch+rowBytes]
		for x := 0; x < rowBytes; x += bytesPerPixel {
			binary.LittleEndian.PutUint32(d[x:x+4], swapPixel(binary.LittleEndian.Uint32(s[x:x+4])))
		}
	}
}

func swapRowsBytewise(dst []byte, dstPitch int, src []byte, srcPitch int, width, height int) {
	rowBytes := width * bytesPerPixel
	for y := range height {
		s := src[y*srcPitch : y*srcPitch+rowBytes]
		d := dst[y*dstPitch : y*dstPitch+rowBytes]
		for x := 0; x < rowBytes; x += bytesPerPixel {
			d[x+0] = s[x+2]
			d[x+1] = s[x+1]
			d[x+2] = s[x+0]
			d[x+3] = s[x+3]
		}
	}
}
