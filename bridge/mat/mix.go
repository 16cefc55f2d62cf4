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

import "fmt"

// MixChannels copies channels from src to dst pixel by pixel.
//
// fromTo holds index pairs: channel fromTo[2k] of every src pixel is copied
// to channel fromTo[2k+1] of the dst pixel at the same position. Both
// matrices must have the same size and depth; dst must be owned. Channels
// of dst not named in fromTo are left unchanged.
func MixChannels(src, dst *Mat, fromTo []int) error {
	if dst.owner == Borrowed {
		return ErrBorrowed
	}
	if !SameSize(src, dst) {
		return fmt.Errorf("%w: mix %dx%d into %dx%d", ErrShape, src.cols, src.rows, dst.cols, dst.rows)
	}
	if src.typ.Depth != dst.typ.Depth {
		return fmt.Errorf("%w: mix %v into %v", ErrShape, src.typ, dst.typ)
	}
	if len(fromTo)%2 != 0 {
		return fmt.Errorf("%w: odd channel pair list of length %d", ErrShape, len(fromTo))
	}
	for k := 0; k < len(fromTo); k += 2 {
		if fromTo[k] < 0 || fromTo[k] >= src.typ.Channels || fromTo[k+1] < 0 || fromTo[k+1] >= dst.typ.Channels {
			return fmt.Errorf("%w: channel pair %d->%d out of range for %v->%v",
				ErrShape, fromTo[k], fromTo[k+1], src.typ, dst.typ)
		}
	}

	size := src.typ.ElemSize1()
	srcPix := src.typ.ElemSize()
	dstPix := dst.typ.ElemSize()

	// Byte offsets within a pixel, computed once.
	offs := make([]int, len(fromTo))
	for k, ch := range fromTo {
		offs[k] = ch * size
	}

	for y := range src.rows {
		srcRow := src.RowSlice(y)
		dstRow := dst.RowSlice(y)
		for x := range src.cols {
			s := srcRow[x*srcPix : (x+1)*srcPix]
			d := dstRow[x*dstPix : (x+1)*dstPix]
			for k := 0; k < len(offs); k += 2 {
				copy(d[offs[k+1]:offs[k+1]+size], s[offs[k]:offs[k]+size])
			}
		}
	}
	return nil
}

// CvtBGRA2BGR returns an owned 3-channel copy of a 4-channel matrix with
// the fourth channel of every pixel dropped.
func CvtBGRA2BGR(src *Mat) (*Mat, error) {
	if src.typ.Channels != 4 {
		return nil, fmt.Errorf("%w: BGRA to BGR needs 4 channels, got %v", ErrShape, src.typ)
	}
	dst := New(src.rows, src.cols, MakeType(src.typ.Depth, 3))
	if err := MixChannels(src, dst, []int{0, 0, 1, 1, 2, 2}); err != nil {
		return nil, err
	}
	return dst, nil
}

// SwapBytes16 reverses the two bytes of every 16-bit element in place.
func SwapBytes16(m *Mat) error {
	if m.owner == Borrowed {
		return ErrBorrowed
	}
	if m.typ.ElemSize1() != 2 {
		return fmt.Errorf("%w: 16-bit swap on %v", ErrShape, m.typ)
	}
	for y := range m.rows {
		row := m.RowSlice(y)
		for i := 0; i+1 < len(row); i += 2 {
			row[i], row[i+1] = row[i+1], row[i]
		}
	}
	return nil
}

// SwapChannelBytes returns an owned copy of src with the byte order of every
// channel element reversed. The source is viewed as Channels*ElemSize1 byte
// lanes per pixel; byte j of channel i moves to lane
// ElemSize1*i + (ElemSize1-1-j). Applying it twice restores the input.
func SwapChannelBytes(src *Mat) (*Mat, error) {
	size := src.typ.ElemSize1()
	cn := src.typ.Channels
	if !src.typ.Valid() {
		return nil, fmt.Errorf("%w: invalid type %v", ErrShape, src.typ)
	}

	lanes, err := src.Reinterpret(MakeType(Depth8U, cn*size))
	if err != nil {
		return nil, err
	}
	swapped := New(src.rows, src.cols, lanes.typ)

	fromTo := make([]int, 0, 2*cn*size)
	for i := range cn {
		for j := range size {
			fromTo = append(fromTo, size*i+j, size*i+size-1-j)
		}
	}
	if err := MixChannels(lanes, swapped, fromTo); err != nil {
		return nil, err
	}
	return swapped.Reinterpret(src.typ)
}
