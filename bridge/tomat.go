// Copyright 2026 go-imgbridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bridge

import (
	"github.com/ajroetker/go-imgbridge/bridge/encodings"
	"github.com/ajroetker/go-imgbridge/bridge/mat"
)

// ToMat converts img into a matrix in host byte order.
//
// The result borrows img.Data when no reordering is needed (same byte order
// as the host, or single-byte elements); see the package documentation for
// the lifetime rules. Otherwise it is an owned copy.
//
// It returns a *MalformedBufferError if the step or data length disagree
// with the encoding, and an *encodings.UnrecognizedEncodingError for
// unknown tags. On error no matrix is returned.
func ToMat(img *Image) (*mat.Mat, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	switch img.Encoding {
	case encodings.MONO16:
		return depthToMat(img)
	case encodings.BGRA8:
		return bgraToBGR(img)
	}

	pf, err := encodings.Resolve(img.Encoding)
	if err != nil {
		return nil, err
	}
	if err := img.validate(pf); err != nil {
		return nil, err
	}

	view, err := mat.View(int(img.Height), int(img.Width), pf.Type(), img.Data, int(img.Step))
	if err != nil {
		return nil, err
	}
	if !img.needsSwap() || pf.BytesPerChannel() == 1 {
		return view, nil
	}
	return mat.SwapChannelBytes(view)
}

// depthToMat handles mono16 depth images: always an owned, tightly packed
// copy, swapped in place when the byte order differs from the host.
func depthToMat(img *Image) (*mat.Mat, error) {
	pf := encodings.PixelFormat{Channels: 1, Depth: mat.Depth16U}
	if err := img.validate(pf); err != nil {
		return nil, err
	}

	out := mat.New(int(img.Height), int(img.Width), pf.Type())
	rowBytes := int(img.Width) * 2
	for y := range out.Rows() {
		start := y * int(img.Step)
		copy(out.RowSlice(y), img.Data[start:start+rowBytes])
	}

	if img.needsSwap() {
		if err := mat.SwapBytes16(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// bgraToBGR handles bgra8: the alpha channel is dropped into an owned
// 3-channel matrix. Byte order is irrelevant for 8-bit channels.
func bgraToBGR(img *Image) (*mat.Mat, error) {
	pf := encodings.PixelFormat{Channels: 4, Depth: mat.Depth8U}
	if err := img.validate(pf); err != nil {
		return nil, err
	}

	bgra, err := mat.View(int(img.Height), int(img.Width), pf.Type(), img.Data, int(img.Step))
	if err != nil {
		return nil, err
	}
	return mat.CvtBGRA2BGR(bgra)
}
