// Copyright 2026 The go-imgbridge Authors. SPDX-License-Identifier: Apache-2.0

// Package batch converts many raw images concurrently.
//
// Each image is converted by exactly one worker with bridge.ToMat, so the
// per-image guarantees of package bridge carry over unchanged: borrowed
// results alias their own image's Data and nothing else.
//
//	pool := batch.NewPool(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for frames := range source {
//	    mats, err := batch.ToMats(pool, frames)
//	    ...
//	}
package batch

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-imgbridge/bridge"
	"github.com/ajroetker/go-imgbridge/bridge/mat"
)

// ToMats converts every image with bridge.ToMat.
//
// mats[i] is nil exactly when image i failed. The returned error joins
// one error per failed image, each prefixed with its index, and is nil if
// all succeeded. A nil pool converts sequentially.
func ToMats(pool *Pool, imgs []*bridge.Image) ([]*mat.Mat, error) {
	mats := make([]*mat.Mat, len(imgs))
	errs := make([]error, len(imgs))

	convert := func(i int) {
		m, err := bridge.ToMat(imgs[i])
		if err != nil {
			errs[i] = fmt.Errorf("image %d: %w", i, err)
			return
		}
		mats[i] = m
	}

	if pool == nil {
		for i := range imgs {
			convert(i)
		}
	} else {
		pool.Each(len(imgs), convert)
	}
	return mats, errors.Join(errs...)
}
