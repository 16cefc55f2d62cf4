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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/go-imgbridge/bridge/mat"
)

const zstdExt = ".zst"

// Encoders and decoders are safe for concurrent EncodeAll/DecodeAll,
// but pooling keeps their internal buffers bounded under many workers.
var (
	zstdEncPool = sync.Pool{New: func() any { return mustNewZstdEncoder() }}
	zstdDecPool = sync.Pool{New: func() any { return mustNewZstdDecoder() }}
)

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

func compressZstd(data []byte) []byte {
	enc := zstdEncPool.Get().(*zstd.Encoder)
	defer zstdEncPool.Put(enc)
	return enc.EncodeAll(data, nil)
}

func decompressZstd(data []byte) ([]byte, error) {
	dec := zstdDecPool.Get().(*zstd.Decoder)
	defer zstdDecPool.Put(dec)
	return dec.DecodeAll(data, nil)
}

// readRaw reads a raw buffer dump, decompressing .zst files.
func readRaw(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, zstdExt) {
		return data, nil
	}
	raw, err := decompressZstd(data)
	if err != nil {
		return nil, fmt.Errorf("zstd decode %s: %w", path, err)
	}
	return raw, nil
}

// outputStem is the part of an input name kept in its output name:
// "cam1/frame.raw.zst" -> "frame".
func outputStem(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), zstdExt)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// checkOutputNames fails if two inputs would write the same output file.
func checkOutputNames(inputs []string) error {
	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		stem := outputStem(input)
		if prev, ok := seen[stem]; ok {
			return fmt.Errorf("inputs %s and %s both map to output %q", prev, input, stem)
		}
		seen[stem] = input
	}
	return nil
}

// outputPath names the converted dump of input inside dir, e.g.
// "frame.raw.zst" -> "dir/frame.16UC1.raw".
func outputPath(dir, input string, t mat.Type, compress bool) string {
	name := outputStem(input) + "." + t.String() + ".raw"
	if compress {
		name += zstdExt
	}
	return filepath.Join(dir, name)
}

// writeMat writes m's pixels without row padding.
func writeMat(path string, m *mat.Mat, compress bool) error {
	data := m.Data()
	if !m.IsContinuous() {
		data = m.Clone().Data()
	}
	if compress {
		data = compressZstd(data)
	}
	return os.WriteFile(path, data, 0o644)
}
