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

// Command imgbridge inspects encoding tags and converts raw image dumps.
//
// Usage:
//
//	imgbridge resolve                    # print the well-known tag table
//	imgbridge resolve 16UC3 bayer_rggb8  # print the format of given tags
//	imgbridge convert --width 640 --height 480 --encoding mono16 --big-endian \
//	    --out-dir out/ frame1.raw frame2.raw.zst
//
// Raw dumps are the Data field of an image message written verbatim.
// Inputs ending in .zst are decompressed first. convert writes each matrix
// tightly packed in host byte order, compressed with zstd if --compress is
// set. The IMGBRIDGE_WORKERS environment variable sets the default
// number of conversion workers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "imgbridge",
	Short:         "Inspect image encodings and convert raw image buffers",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		return setupLogger(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
