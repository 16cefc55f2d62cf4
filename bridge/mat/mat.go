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
	"errors"
	"fmt"
	"image"
)

var (
	// ErrBorrowed is returned when an operation would write into a borrowed Mat.
	ErrBorrowed = errors.New("mat: matrix borrows caller memory")

	// ErrShape is returned when dimensions, steps or types are inconsistent.
	ErrShape = errors.New("mat: inconsistent shape")
)

// Ownership tells whether a Mat owns its bytes or aliases a caller's buffer.
type Ownership uint8

const (
	// Owned matrices hold memory no one else references.
	Owned Ownership = iota

	// Borrowed matrices alias memory owned by the caller. They are valid only
	// while that memory is alive and must not be written through.
	Borrowed
)

// String returns "owned" or "borrowed".
func (o Ownership) String() string {
	if o == Borrowed {
		return "borrowed"
	}
	return "owned"
}

// Mat is a dense 2D array of pixels with a byte row step.
type Mat struct {
	data  []byte
	rows  int
	cols  int
	step  int // bytes per row (includes padding)
	typ   Type
	owner Ownership
}

// New allocates an owned, tightly packed matrix.
// Non-positive dimensions yield an empty matrix of the given type.
func New(rows, cols int, t Type) *Mat {
	if rows <= 0 || cols <= 0 {
		return &Mat{typ: t}
	}
	step := cols * t.ElemSize()
	return &Mat{
		data: make([]byte, rows*step),
		rows: rows,
		cols: cols,
		step: step,
		typ:  t,
	}
}

// View returns a borrowed matrix over data without copying.
// The last row may be shorter than step as long as it holds cols pixels.
func View(rows, cols int, t Type, data []byte, step int) (*Mat, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: invalid type %v", ErrShape, t)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrShape, cols, rows)
	}
	rowBytes := cols * t.ElemSize()
	if step < rowBytes {
		return nil, fmt.Errorf("%w: step %d < row size %d", ErrShape, step, rowBytes)
	}
	if rows > 0 && len(data) < (rows-1)*step+rowBytes {
		return nil, fmt.Errorf("%w: %d bytes cannot hold %d rows of step %d", ErrShape, len(data), rows, step)
	}
	return &Mat{
		data:  data,
		rows:  rows,
		cols:  cols,
		step:  step,
		typ:   t,
		owner: Borrowed,
	}, nil
}

// Rows returns the number of rows (image height).
func (m *Mat) Rows() int {
	return m.rows
}

// Cols returns the number of columns (image width).
func (m *Mat) Cols() int {
	return m.cols
}

// Step returns the distance in bytes between the starts of consecutive rows.
func (m *Mat) Step() int {
	return m.step
}

// Type returns the pixel type.
func (m *Mat) Type() Type {
	return m.typ
}

// Ownership reports whether the matrix owns or borrows its bytes.
func (m *Mat) Ownership() Ownership {
	return m.owner
}

// Borrowed is shorthand for m.Ownership() == Borrowed.
func (m *Mat) Borrowed() bool {
	return m.owner == Borrowed
}

// Empty reports whether the matrix has no pixels.
func (m *Mat) Empty() bool {
	return m.rows == 0 || m.cols == 0
}

// IsContinuous reports whether rows are stored without padding.
func (m *Mat) IsContinuous() bool {
	return m.step == m.cols*m.typ.ElemSize()
}

// Data returns the raw bytes backing the matrix, row padding included.
// For a borrowed matrix this is the caller's memory and must not be modified.
func (m *Mat) Data() []byte {
	return m.data
}

// Row returns the bytes of row y including any padding.
// The last row of a borrowed view may be shorter than Step.
func (m *Mat) Row(y int) []byte {
	if y < 0 || y >= m.rows || m.data == nil {
		return nil
	}
	start := y * m.step
	return m.data[start:min(start+m.step, len(m.data))]
}

// RowSlice returns the bytes of row y limited to Cols pixels.
func (m *Mat) RowSlice(y int) []byte {
	if y < 0 || y >= m.rows || m.data == nil {
		return nil
	}
	start := y * m.step
	return m.data[start : start+m.cols*m.typ.ElemSize()]
}

// Bounds returns the rectangle covering the matrix.
func (m *Mat) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.cols, m.rows)
}

// SameSize reports whether both matrices have the same dimensions.
func SameSize(a, b *Mat) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Clone returns an owned, tightly packed deep copy.
func (m *Mat) Clone() *Mat {
	clone := New(m.rows, m.cols, m.typ)
	for y := range m.rows {
		copy(clone.RowSlice(y), m.RowSlice(y))
	}
	return clone
}

// Reinterpret returns a matrix sharing m's bytes and ownership with a
// different pixel type of the same byte size.
func (m *Mat) Reinterpret(t Type) (*Mat, error) {
	if !t.Valid() || t.ElemSize() != m.typ.ElemSize() {
		return nil, fmt.Errorf("%w: cannot reinterpret %v as %v", ErrShape, m.typ, t)
	}
	out := *m
	out.typ = t
	return &out, nil
}

// Fill sets every pixel to the given raw pixel bytes, which must be
// Type().ElemSize() long. Borrowed matrices are left untouched.
func (m *Mat) Fill(pixel []byte) {
	if m.owner == Borrowed || len(pixel) != m.typ.ElemSize() {
		return
	}
	for y := range m.rows {
		row := m.RowSlice(y)
		for x := 0; x < len(row); x += len(pixel) {
			copy(row[x:], pixel)
		}
	}
}
