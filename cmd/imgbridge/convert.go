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
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-imgbridge/bridge"
	"github.com/ajroetker/go-imgbridge/bridge/contrib/batch"
	"github.com/ajroetker/go-imgbridge/bridge/encodings"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file...",
	Short: "Convert raw image dumps into host-order matrices",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().Uint32("width", 0, "Image width in pixels")
	convertCmd.Flags().Uint32("height", 0, "Image height in pixels")
	convertCmd.Flags().Uint32("step", 0, "Bytes per row (default: width * pixel size)")
	convertCmd.Flags().StringP("encoding", "e", "", "Encoding tag, e.g. bgr8, mono16, 32FC1")
	convertCmd.Flags().Bool("big-endian", false, "Dumps store multi-byte values big-endian")
	convertCmd.Flags().StringP("out-dir", "o", "", "Write converted matrices to this directory")
	convertCmd.Flags().Bool("compress", false, "Compress written matrices with zstd")
	convertCmd.Flags().Int("workers", envWorkers(), "Conversion workers (default: GOMAXPROCS, env IMGBRIDGE_WORKERS)")
	convertCmd.MarkFlagRequired("width")
	convertCmd.MarkFlagRequired("height")
	convertCmd.MarkFlagRequired("encoding")
	rootCmd.AddCommand(convertCmd)
}

// envWorkers reads IMGBRIDGE_WORKERS; 0 means one worker per CPU.
func envWorkers() int {
	if v := os.Getenv("IMGBRIDGE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func runConvert(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetUint32("width")
	height, _ := cmd.Flags().GetUint32("height")
	step, _ := cmd.Flags().GetUint32("step")
	encoding, _ := cmd.Flags().GetString("encoding")
	bigEndian, _ := cmd.Flags().GetBool("big-endian")
	outDir, _ := cmd.Flags().GetString("out-dir")
	compress, _ := cmd.Flags().GetBool("compress")
	workers, _ := cmd.Flags().GetInt("workers")

	pf, err := encodings.Resolve(encoding)
	if err != nil {
		return err
	}
	if outDir != "" {
		if err := checkOutputNames(args); err != nil {
			return err
		}
	}
	if step == 0 {
		step = width * uint32(pf.Type().ElemSize())
	}

	imgs := make([]*bridge.Image, len(args))
	for i, path := range args {
		data, err := readRaw(path)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		imgs[i] = &bridge.Image{
			Height:      height,
			Width:       width,
			Encoding:    encoding,
			IsBigEndian: bigEndian,
			Step:        step,
			Data:        data,
		}
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	pool := batch.NewPool(workers)
	defer pool.Close()
	logger.Debug("converting",
		zap.Int("files", len(args)),
		zap.Int("workers", pool.NumWorkers()),
		zap.Stringer("format", pf),
		zap.Bool("host_big_endian", bridge.HostBigEndian()))

	mats, convErr := batch.ToMats(pool, imgs)
	for i, m := range mats {
		if m == nil {
			continue
		}
		fields := []zap.Field{
			zap.String("file", args[i]),
			zap.Stringer("type", m.Type()),
			zap.Int("width", m.Cols()),
			zap.Int("height", m.Rows()),
			zap.Int("step", m.Step()),
			zap.Stringer("ownership", m.Ownership()),
		}
		if outDir != "" {
			out := outputPath(outDir, args[i], m.Type(), compress)
			if err := writeMat(out, m, compress); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			fields = append(fields, zap.String("output", out))
		}
		logger.Info("converted", fields...)
	}
	if convErr != nil {
		return fmt.Errorf("conversion: %w", convErr)
	}
	return nil
}
