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
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-imgbridge/bridge/encodings"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [tag...]",
	Short: "Print the pixel format of encoding tags (all well-known tags if none given)",
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	tags := args
	if len(tags) == 0 {
		tags = encodings.Known()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tCHANNELS\tBYTES\tKIND\tTYPE")

	var errs []error
	for _, tag := range tags {
		pf, err := encodings.Resolve(tag)
		if err != nil {
			logger.Debug("resolve failed", zap.String("tag", tag))
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", tag, pf.Channels, pf.BytesPerChannel(), pf.Kind(), pf.Type())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
