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
	"math"

	"github.com/ajroetker/go-imgbridge/bridge/encodings"
	"github.com/ajroetker/go-imgbridge/bridge/mat"
)

// FromMat packs m into a new Image labelled with encoding.
//
// The data is copied without row padding and tagged with the host byte
// order. The encoding must describe m's type exactly, e.g. "bgr8" or
// "8UC3" for an 8UC3 matrix; otherwise ErrTypeMismatch is returned.
func FromMat(m *mat.Mat, encoding string) (*Image, error) {
	if m == nil {
		return nil, ErrNilMat
	}
	pf, err := encodings.Resolve(encoding)
	if err != nil {
		return nil, err
	}
	if pf.Type() != m.Type() {
		return nil, fmt.Errorf("%w: %q is %v, matrix is %v", ErrTypeMismatch, encoding, pf.Type(), m.Type())
	}

	step := m.Cols() * m.Type().ElemSize()
	if uint64(m.Rows()) > math.MaxUint32 || uint64(step) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d matrix does not fit an image header", ErrMalformedBuffer, m.Cols(), m.Rows())
	}

	data := make([]byte, m.Rows()*step)
	for y := range m.Rows() {
		copy(data[y*step:], m.RowSlice(y))
	}

	return &Image{
		Height:      uint32(m.Rows()),
		Width:       uint32(m.Cols()),
		Encoding:    encoding,
		IsBigEndian: HostBigEndian(),
		Step:        uint32(step),
		Data:        data,
	}, nil
}
