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

// Package mat provides a dense 2D typed pixel buffer.
//
// A Mat is a rows x cols grid of pixels stored as raw bytes in host byte
// order. Each pixel holds Type.Channels channels of Type.Depth. Rows are
// Step bytes apart, so padded rows are represented directly.
//
// # Ownership
//
// A Mat either owns its bytes or borrows them from a caller:
//
//	m := mat.New(480, 640, mat.Type8UC3)             // Owned
//	v, err := mat.View(480, 640, mat.Type8UC3, b, s) // Borrowed, aliases b
//
// A borrowed Mat is only valid while the buffer it aliases is alive and
// unmodified, and it must be treated as read-only. Operations that write
// in place (SwapBytes16, MixChannels destinations) refuse borrowed matrices
// with ErrBorrowed. Clone always returns an owned copy.
//
// # Element Access
//
// Typed access is generic over the element types matching each Depth:
//
//	v := mat.At[uint16](m, x, y, 0)
//	row := mat.RowOf[float32](m, y)
//
// # Channel Operations
//
//	MixChannels(src, dst, fromTo) // copy channel src[i] into dst[j] per pixel
//	CvtBGRA2BGR(src)              // drop the alpha channel
//	SwapChannelBytes(src)         // reverse the byte order of every element
package mat
