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

// Package encodings maps image encoding tags to pixel formats.
//
// Producers label raw image buffers with a string tag. Well-known tags such
// as "bgr8" or "mono16" are looked up in a fixed table; anything else must
// follow the generic grammar
//
//	DEPTH [ "C" CHANNELS ]
//
// where DEPTH is one of 8U, 8S, 16U, 16S, 32S, 32F, 64F and CHANNELS is a
// decimal channel count in [1, MaxChannels]. A missing channel suffix
// means one channel:
//
//	pf, _ := encodings.Resolve("32FC3") // 3 channels of float32
//	pf, _ = encodings.Resolve("16U")    // 1 channel of uint16
package encodings

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/ajroetker/go-imgbridge/bridge/mat"
)

// Known encoding tags.
const (
	RGB8   = "rgb8"
	RGBA8  = "rgba8"
	RGB16  = "rgb16"
	RGBA16 = "rgba16"
	BGR8   = "bgr8"
	BGRA8  = "bgra8"
	BGR16  = "bgr16"
	BGRA16 = "bgra16"
	MONO8  = "mono8"
	MONO16 = "mono16"

	BayerRGGB8  = "bayer_rggb8"
	BayerBGGR8  = "bayer_bggr8"
	BayerGBRG8  = "bayer_gbrg8"
	BayerGRBG8  = "bayer_grbg8"
	BayerRGGB16 = "bayer_rggb16"
	BayerBGGR16 = "bayer_bggr16"
	BayerGBRG16 = "bayer_gbrg16"
	BayerGRBG16 = "bayer_grbg16"

	YUV422     = "yuv422"
	YUV422YUY2 = "yuv422_yuy2"
)

// MaxChannels is the largest channel count accepted by the generic grammar.
const MaxChannels = 512

// ErrUnrecognizedEncoding is matched by every *UnrecognizedEncodingError.
var ErrUnrecognizedEncoding = errors.New("unrecognized image encoding")

// UnrecognizedEncodingError reports a tag that is neither known nor generic.
type UnrecognizedEncodingError struct {
	Tag string
}

func (e *UnrecognizedEncodingError) Error() string {
	return "unrecognized image encoding [" + e.Tag + "]"
}

// Is reports whether target is ErrUnrecognizedEncoding.
func (e *UnrecognizedEncodingError) Is(target error) bool {
	return target == ErrUnrecognizedEncoding
}

// PixelFormat describes the layout of one pixel.
type PixelFormat struct {
	Channels int
	Depth    mat.Depth
}

// BytesPerChannel returns the size of one channel element in bytes.
func (f PixelFormat) BytesPerChannel() int {
	return f.Depth.Size()
}

// Kind returns the numeric class of the channel elements.
func (f PixelFormat) Kind() mat.Kind {
	return f.Depth.Kind()
}

// Type returns the matrix type holding pixels of this format.
func (f PixelFormat) Type() mat.Type {
	return mat.MakeType(f.Depth, f.Channels)
}

// String returns the generic encoding of the format, e.g. "16UC3".
func (f PixelFormat) String() string {
	return f.Type().String()
}

// known is never written after package initialization.
var known = map[string]PixelFormat{
	BGR8:   {3, mat.Depth8U},
	MONO8:  {1, mat.Depth8U},
	RGB8:   {3, mat.Depth8U},
	MONO16: {1, mat.Depth16U},
	BGR16:  {3, mat.Depth16U},
	RGB16:  {3, mat.Depth16U},
	BGRA8:  {4, mat.Depth8U},
	RGBA8:  {4, mat.Depth8U},
	BGRA16: {4, mat.Depth16U},
	RGBA16: {4, mat.Depth16U},

	// Bayer mosaics carry one sample per pixel.
	BayerRGGB8:  {1, mat.Depth8U},
	BayerBGGR8:  {1, mat.Depth8U},
	BayerGBRG8:  {1, mat.Depth8U},
	BayerGRBG8:  {1, mat.Depth8U},
	BayerRGGB16: {1, mat.Depth16U},
	BayerBGGR16: {1, mat.Depth16U},
	BayerGBRG16: {1, mat.Depth16U},
	BayerGRBG16: {1, mat.Depth16U},

	YUV422:     {2, mat.Depth8U},
	YUV422YUY2: {2, mat.Depth8U},
}

// Resolve returns the pixel format named by tag.
// Known tags are looked up first, then the generic grammar is tried.
func Resolve(tag string) (PixelFormat, error) {
	if pf, ok := known[tag]; ok {
		return pf, nil
	}
	if pf, ok := parseGeneric(tag); ok {
		return pf, nil
	}
	return PixelFormat{}, &UnrecognizedEncodingError{Tag: tag}
}

// parseGeneric parses DEPTH "C" CHANNELS or a bare DEPTH.
// No depth token contains 'C', so the first 'C' splits the two parts.
func parseGeneric(tag string) (PixelFormat, bool) {
	depthTok, channelTok, hasChannels := strings.Cut(tag, "C")

	depth, ok := mat.ParseDepth(depthTok)
	if !ok {
		// Depth tokens outside the enumeration are rejected, not mapped
		// to a fallback depth.
		return PixelFormat{}, false
	}
	if !hasChannels {
		return PixelFormat{Channels: 1, Depth: depth}, true
	}

	channels, ok := parseChannels(channelTok)
	if !ok {
		return PixelFormat{}, false
	}
	return PixelFormat{Channels: channels, Depth: depth}, true
}

// parseChannels accepts one or more ASCII digits with a value in
// [1, MaxChannels]. Signs and spaces are rejected.
func parseChannels(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxChannels {
		return 0, false
	}
	return n, true
}

// Known returns the table of well-known tags in sorted order.
func Known() []string {
	tags := make([]string, 0, len(known))
	for tag := range known {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// IsKnown reports whether tag is in the well-known table.
func IsKnown(tag string) bool {
	_, ok := known[tag]
	return ok
}
