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

package mat

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Elem is a constraint for the Go types that match a Depth.
type Elem interface {
	uint8 | int8 | uint16 | int16 | int32 | float32 | float64
}

// DepthOf returns the Depth whose elements are stored as T.
func DepthOf[T Elem]() Depth {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Depth8U
	case int8:
		return Depth8S
	case uint16:
		return Depth16U
	case int16:
		return Depth16S
	case int32:
		return Depth32S
	case float32:
		return Depth32F
	default:
		return Depth64F
	}
}

// offset returns the byte offset of channel c of pixel (x, y), or -1.
func (m *Mat) offset(x, y, c int) int {
	if x < 0 || x >= m.cols || y < 0 || y >= m.rows || c < 0 || c >= m.typ.Channels || m.data == nil {
		return -1
	}
	return y*m.step + (x*m.typ.Channels+c)*m.typ.ElemSize1()
}

// At returns channel c of the pixel at (x, y).
// Out-of-range coordinates or a T not matching the depth return zero.
func At[T Elem](m *Mat, x, y, c int) T {
	var v T
	if DepthOf[T]() != m.typ.Depth {
		return v
	}
	off := m.offset(x, y, c)
	if off < 0 {
		return v
	}
	b := m.data[off:]
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[0]
	case *int8:
		*p = int8(b[0])
	case *uint16:
		*p = binary.NativeEndian.Uint16(b)
	case *int16:
		*p = int16(binary.NativeEndian.Uint16(b))
	case *int32:
		*p = int32(binary.NativeEndian.Uint32(b))
	case *float32:
		*p = math.Float32frombits(binary.NativeEndian.Uint32(b))
	case *float64:
		*p = math.Float64frombits(binary.NativeEndian.Uint64(b))
	}
	return v
}

// Set stores v into channel c of the pixel at (x, y).
// It is a no-op for borrowed matrices, out-of-range coordinates,
// or a T not matching the depth.
func Set[T Elem](m *Mat, x, y, c int, v T) {
	if m.owner == Borrowed || DepthOf[T]() != m.typ.Depth {
		return
	}
	off := m.offset(x, y, c)
	if off < 0 {
		return
	}
	b := m.data[off:]
	switch p := any(v).(type) {
	case uint8:
		b[0] = p
	case int8:
		b[0] = uint8(p)
	case uint16:
		binary.NativeEndian.PutUint16(b, p)
	case int16:
		binary.NativeEndian.PutUint16(b, uint16(p))
	case int32:
		binary.NativeEndian.PutUint32(b, uint32(p))
	case float32:
		binary.NativeEndian.PutUint32(b, math.Float32bits(p))
	case float64:
		binary.NativeEndian.PutUint64(b, math.Float64bits(p))
	}
}

// RowOf returns row y reinterpreted as Cols*Channels elements of T,
// sharing memory with the matrix.
// It returns nil if T does not match the depth or the row is not
// aligned for T (possible with odd steps on borrowed views).
func RowOf[T Elem](m *Mat, y int) []T {
	if DepthOf[T]() != m.typ.Depth {
		return nil
	}
	row := m.RowSlice(y)
	if len(row) == 0 {
		return nil
	}
	var zero T
	ptr := unsafe.Pointer(&row[0])
	if uintptr(ptr)%unsafe.Alignof(zero) != 0 {
		return nil
	}
	return unsafe.Slice((*T)(ptr), len(row)/int(unsafe.Sizeof(zero)))
}
