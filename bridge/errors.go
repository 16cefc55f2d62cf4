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
	"errors"
	"fmt"

	"github.com/ajroetker/go-imgbridge/bridge/encodings"
)

var (
	// ErrMalformedBuffer is matched by every *MalformedBufferError.
	ErrMalformedBuffer = errors.New("malformed image buffer")

	// ErrUnrecognizedEncoding is returned, wrapped in an
	// *encodings.UnrecognizedEncodingError, for unknown tags.
	ErrUnrecognizedEncoding = encodings.ErrUnrecognizedEncoding

	// ErrTypeMismatch is returned by FromMat when the encoding does not
	// describe the matrix type.
	ErrTypeMismatch = errors.New("encoding does not match matrix type")

	// ErrNilImage is returned when ToMat is given a nil image.
	ErrNilImage = errors.New("nil image")

	// ErrNilMat is returned when FromMat is given a nil matrix.
	ErrNilMat = errors.New("nil matrix")
)

// Check names the structural check a buffer failed.
type Check uint8

const (
	// CheckStep: the row step is smaller than width * byte depth * channels.
	CheckStep Check = iota + 1

	// CheckSize: the data length differs from height * step.
	CheckSize
)

// String returns a short name for the check.
func (c Check) String() string {
	switch c {
	case CheckStep:
		return "step"
	case CheckSize:
		return "size"
	default:
		return "unknown"
	}
}

// MalformedBufferError reports an image whose header disagrees with its data.
type MalformedBufferError struct {
	Check Check

	// Expected is the minimum step (CheckStep) or the exact data length
	// (CheckSize); Actual is the value found in the image.
	Expected uint64
	Actual   uint64

	// Detail shows the factors Expected was computed from.
	Detail string
}

func (e *MalformedBufferError) Error() string {
	switch e.Check {
	case CheckStep:
		return fmt.Sprintf("malformed image buffer: step %d < width * byte_depth * num_channels = %d (%s)",
			e.Actual, e.Expected, e.Detail)
	case CheckSize:
		return fmt.Sprintf("malformed image buffer: height * step = %d (%s) != data size %d",
			e.Expected, e.Detail, e.Actual)
	default:
		return "malformed image buffer: " + e.Detail
	}
}

// Is reports whether target is ErrMalformedBuffer.
func (e *MalformedBufferError) Is(target error) bool {
	return target == ErrMalformedBuffer
}
