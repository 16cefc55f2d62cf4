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
	"fmt"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-imgbridge/bridge/encodings"
)

// Image is a raw image buffer as delivered by a transport.
// It mirrors the fields of a ROS sensor_msgs/Image message.
type Image struct {
	Height      uint32
	Width       uint32
	Encoding    string
	IsBigEndian bool
	Step        uint32 // bytes per row
	Data        []byte // Height * Step bytes
}

// HostBigEndian reports whether the host stores multi-byte values
// most significant byte first.
func HostBigEndian() bool {
	return cpu.IsBigEndian
}

// needsSwap reports whether multi-byte elements of img are in the
// opposite order to the host.
func (img *Image) needsSwap() bool {
	return img.IsBigEndian != HostBigEndian()
}

// validate checks the step and data length against the pixel format.
// Products are computed in 64 bits so large headers cannot wrap.
func (img *Image) validate(pf encodings.PixelFormat) error {
	byteDepth := uint64(pf.BytesPerChannel())
	channels := uint64(pf.Channels)
	minStep := uint64(img.Width) * byteDepth * channels
	if uint64(img.Step) < minStep {
		return &MalformedBufferError{
			Check:    CheckStep,
			Expected: minStep,
			Actual:   uint64(img.Step),
			Detail:   fmt.Sprintf("%d * %d * %d", img.Width, byteDepth, channels),
		}
	}

	size := uint64(img.Height) * uint64(img.Step)
	if size != uint64(len(img.Data)) {
		return &MalformedBufferError{
			Check:    CheckSize,
			Expected: size,
			Actual:   uint64(len(img.Data)),
			Detail:   fmt.Sprintf("%d * %d", img.Height, img.Step),
		}
	}
	return nil
}
