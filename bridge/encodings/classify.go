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

package encodings

// NumChannels returns the channel count of the encoding.
func NumChannels(tag string) (int, error) {
	pf, err := Resolve(tag)
	if err != nil {
		return 0, err
	}
	return pf.Channels, nil
}

// BitDepth returns the number of bits per channel of the encoding.
func BitDepth(tag string) (int, error) {
	pf, err := Resolve(tag)
	if err != nil {
		return 0, err
	}
	return pf.BytesPerChannel() * 8, nil
}

// IsColor reports whether tag is one of the RGB/BGR tags, with or without alpha.
func IsColor(tag string) bool {
	switch tag {
	case RGB8, BGR8, RGBA8, BGRA8, RGB16, BGR16, RGBA16, BGRA16:
		return true
	}
	return false
}

// IsMono reports whether tag is mono8 or mono16.
func IsMono(tag string) bool {
	return tag == MONO8 || tag == MONO16
}

// IsBayer reports whether tag is one of the Bayer mosaic tags.
func IsBayer(tag string) bool {
	switch tag {
	case BayerRGGB8, BayerBGGR8, BayerGBRG8, BayerGRBG8,
		BayerRGGB16, BayerBGGR16, BayerGBRG16, BayerGRBG16:
		return true
	}
	return false
}

// HasAlpha reports whether tag carries an alpha channel.
func HasAlpha(tag string) bool {
	switch tag {
	case RGBA8, BGRA8, RGBA16, BGRA16:
		return true
	}
	return false
}
