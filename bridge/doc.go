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

// Package bridge converts self-describing raw image buffers into typed
// matrices.
//
// An Image carries its dimensions, row step, byte order and an encoding tag
// (see package encodings). ToMat resolves the tag and returns a *mat.Mat:
//
//	m, err := bridge.ToMat(&bridge.Image{
//	    Width: 640, Height: 480, Step: 640 * 3,
//	    Encoding: encodings.BGR8,
//	    Data: buf,
//	})
//
// # Zero Copy
//
// When the producer's byte order matches the host, or elements are single
// bytes, the returned matrix is Borrowed: it aliases Image.Data directly.
// Callers must keep Data alive and unmodified while the matrix is in use,
// and must not write through it. Call Clone for an independent copy.
//
// Otherwise the bytes of every channel element are reversed into a new
// Owned matrix. Two encodings always produce owned copies: mono16 (depth
// cameras), and bgra8, which is reduced to three channels.
//
// ToMat and FromMat are synchronous and safe to call concurrently on
// distinct images.
package bridge
