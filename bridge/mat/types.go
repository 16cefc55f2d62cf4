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

import "strconv"

// Kind is the numeric class of a channel element.
type Kind uint8

const (
	// KindUnsigned is an unsigned integer element.
	KindUnsigned Kind = iota

	// KindSigned is a two's complement signed integer element.
	KindSigned

	// KindFloat is an IEEE 754 floating-point element.
	KindFloat
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Depth is the per-channel element type of a Mat.
// The numeric values match the depth codes used by OpenCV.
type Depth uint8

const (
	Depth8U Depth = iota
	Depth8S
	Depth16U
	Depth16S
	Depth32S
	Depth32F
	Depth64F

	depthCount
)

type depthInfo struct {
	name string
	size int
	kind Kind
}

var depthTable = [depthCount]depthInfo{
	Depth8U:  {"8U", 1, KindUnsigned},
	Depth8S:  {"8S", 1, KindSigned},
	Depth16U: {"16U", 2, KindUnsigned},
	Depth16S: {"16S", 2, KindSigned},
	Depth32S: {"32S", 4, KindSigned},
	Depth32F: {"32F", 4, KindFloat},
	Depth64F: {"64F", 8, KindFloat},
}

// Valid reports whether d is one of the defined depths.
func (d Depth) Valid() bool {
	return d < depthCount
}

// Size returns the number of bytes of one element, or 0 for an invalid depth.
func (d Depth) Size() int {
	if !d.Valid() {
		return 0
	}
	return depthTable[d].size
}

// Kind returns the numeric class of the depth.
func (d Depth) Kind() Kind {
	if !d.Valid() {
		return KindUnsigned
	}
	return depthTable[d].kind
}

// String returns the depth token, e.g. "16U".
func (d Depth) String() string {
	if !d.Valid() {
		return "Depth(" + strconv.Itoa(int(d)) + ")"
	}
	return depthTable[d].name
}

// ParseDepth maps a depth token such as "32F" to its Depth.
// Tokens are case sensitive.
func ParseDepth(s string) (Depth, bool) {
	for d := range depthCount {
		if depthTable[d].name == s {
			return d, true
		}
	}
	return 0, false
}

// Type describes a pixel: its channel count and per-channel depth.
type Type struct {
	Depth    Depth
	Channels int
}

// Commonly used pixel types.
var (
	Type8UC1  = Type{Depth8U, 1}
	Type8UC2  = Type{Depth8U, 2}
	Type8UC3  = Type{Depth8U, 3}
	Type8UC4  = Type{Depth8U, 4}
	Type16UC1 = Type{Depth16U, 1}
	Type16UC3 = Type{Depth16U, 3}
	Type16UC4 = Type{Depth16U, 4}
	Type32FC1 = Type{Depth32F, 1}
)

// MakeType returns the pixel type with the given depth and channel count.
func MakeType(d Depth, channels int) Type {
	return Type{Depth: d, Channels: channels}
}

// Valid reports whether the type has a defined depth and at least one channel.
func (t Type) Valid() bool {
	return t.Depth.Valid() && t.Channels > 0
}

// ElemSize1 returns the size of one channel element in bytes.
func (t Type) ElemSize1() int {
	return t.Depth.Size()
}

// ElemSize returns the size of one pixel in bytes.
func (t Type) ElemSize() int {
	return t.Depth.Size() * t.Channels
}

// Code returns the OpenCV type code (depth + (channels-1) << 3).
// Only meaningful for channel counts up to 512.
func (t Type) Code() int {
	return int(t.Depth) + (t.Channels-1)<<3
}

// String returns the generic encoding of the type, e.g. "16UC3".
func (t Type) String() string {
	return t.Depth.String() + "C" + strconv.Itoa(t.Channels)
}
