// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nwk

import "errors"

// error kinds shared by all packages; wrap them with %w so callers can use errors.Is
var (
	// ErrConfig indicates an invalid parameter or option
	ErrConfig = errors.New("configuration error")

	// ErrGeometry indicates physically invalid input producing undefined results
	ErrGeometry = errors.New("geometry error")

	// ErrDataMissing indicates that a required property array is absent
	ErrDataMissing = errors.New("data missing")
)
