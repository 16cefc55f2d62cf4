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
	"image"
	"testing"
)

func TestNew(t *testing.T) {
	m := New(50, 100, Type16UC3)

	if m.Cols() != 100 {
		t.Errorf("Cols: got %d, want 100", m.Cols())
	}
	if m.Rows() != 50 {
		t.Errorf("Rows: got %d, want 50", m.Rows())
	}
	if m.Step() != 100*6 {
		t.Errorf("Step: got %d, want %d", m.Step(), 100*6)
	}
	if len(m.Data()) != 50*100*6 {
		t.Errorf("len(Data): got %d, want %d", len(m.Data()), 50*100*6)
	}
	if m.Borrowed() {
		t.Error("New should return an owned matrix")
	}
	if !m.IsContinuous() {
		t.Error("New should return a continuous matrix")
	}
}

func TestNew_ZeroDimensions(t *testing.T) {
	m := New(0, 0, Type8UC1)
	if !m.Empty() {
		t.Errorf("Zero dimensions: got %dx%d, want empty", m.Cols(), m.Rows())
	}

	m = New(10, -1, Type8UC1)
	if m.Rows() != 0 || m.Cols() != 0 {
		t.Errorf("Negative cols: got %dx%d, want 0x0", m.Cols(), m.Rows())
	}
	if m.Row(0) != nil {
		t.Error("Row(0) of empty matrix should be nil")
	}
}

func TestView(t *testing.T) {
	data := make([]byte, 3*8)
	for i := range data {
		data[i] = byte(i)
	}

	m, err := View(3, 2, Type8UC3, data, 8)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !m.Borrowed() {
		t.Error("View should return a borrowed matrix")
	}
	if m.IsContinuous() {
		t.Error("padded view should not be continuous")
	}
	if &m.Data()[0] != &data[0] {
		t.Error("View should alias the input bytes")
	}

	row := m.Row(1)
	if len(row) != 8 || row[0] != 8 {
		t.Errorf("Row(1): got len %d first %d, want len 8 first 8", len(row), row[0])
	}
	slice := m.RowSlice(2)
	if len(slice) != 6 || slice[0] != 16 {
		t.Errorf("RowSlice(2): got len %d first %d, want len 6 first 16", len(slice), slice[0])
	}
}

func TestView_ShortLastRow(t *testing.T) {
	// Two rows of step 8, the last holding only its 6 pixel bytes.
	data := make([]byte, 14)
	m, err := View(2, 2, Type8UC3, data, 8)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if got := len(m.Row(1)); got != 6 {
		t.Errorf("len(Row(1)): got %d, want 6", got)
	}
}

func TestView_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
		typ  Type
		size int
		step int
	}{
		{"invalid_type", 1, 1, Type{Depth: depthCount, Channels: 1}, 1, 1},
		{"zero_channels", 1, 1, Type{Depth: Depth8U}, 1, 1},
		{"negative_rows", -1, 1, Type8UC1, 1, 1},
		{"step_too_small", 1, 4, Type16UC1, 8, 7},
		{"data_too_short", 2, 4, Type8UC1, 7, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := View(tc.rows, tc.cols, tc.typ, make([]byte, tc.size), tc.step)
			if !errors.Is(err, ErrShape) {
				t.Errorf("View: got %v, want ErrShape", err)
			}
		})
	}
}

func TestMat_RowOutOfRange(t *testing.T) {
	m := New(5, 10, Type8UC1)
	if m.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if m.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
	if m.RowSlice(5) != nil {
		t.Error("RowSlice(5) should return nil")
	}
}

func TestMat_Clone(t *testing.T) {
	data := []byte{
		1, 2, 3, 0xEE,
		4, 5, 6, 0xEE,
	}
	v, err := View(2, 3, Type8UC1, data, 4)
	if err != nil {
		t.Fatalf("View: %v", err)
	}

	clone := v.Clone()
	if clone.Borrowed() {
		t.Error("Clone should be owned")
	}
	if clone.Step() != 3 {
		t.Errorf("Clone step: got %d, want 3", clone.Step())
	}
	want := []byte{1, 2, 3, 4, 5, 6}
	for i, b := range clone.Data() {
		if b != want[i] {
			t.Errorf("Clone data[%d]: got %d, want %d", i, b, want[i])
		}
	}

	// Clone must be independent of the source.
	data[0] = 99
	if clone.Data()[0] != 1 {
		t.Error("Clone should not alias the source")
	}
}

func TestMat_Reinterpret(t *testing.T) {
	m := New(2, 2, Type16UC3)
	lanes, err := m.Reinterpret(MakeType(Depth8U, 6))
	if err != nil {
		t.Fatalf("Reinterpret: %v", err)
	}
	if lanes.Type() != MakeType(Depth8U, 6) {
		t.Errorf("Type: got %v, want 8UC6", lanes.Type())
	}
	if &lanes.Data()[0] != &m.Data()[0] {
		t.Error("Reinterpret should share storage")
	}
	if lanes.Ownership() != m.Ownership() {
		t.Error("Reinterpret should keep ownership")
	}

	if _, err := m.Reinterpret(Type8UC4); !errors.Is(err, ErrShape) {
		t.Errorf("Reinterpret to different pixel size: got %v, want ErrShape", err)
	}
}

func TestMat_Bounds(t *testing.T) {
	m := New(480, 640, Type8UC3)
	if got, want := m.Bounds(), image.Rect(0, 0, 640, 480); got != want {
		t.Errorf("Bounds: got %v, want %v", got, want)
	}
}

func TestMat_Fill(t *testing.T) {
	m := New(2, 3, Type8UC3)
	m.Fill([]byte{1, 2, 3})
	for y := range m.Rows() {
		for x := range m.Cols() {
			for c := range 3 {
				if got := At[uint8](m, x, y, c); got != uint8(c+1) {
					t.Errorf("at (%d,%d,%d): got %d, want %d", x, y, c, got, c+1)
				}
			}
		}
	}

	data := make([]byte, 3)
	v, _ := View(1, 1, Type8UC3, data, 3)
	v.Fill([]byte{7, 7, 7})
	if data[0] != 0 {
		t.Error("Fill should not write into a borrowed matrix")
	}
}
