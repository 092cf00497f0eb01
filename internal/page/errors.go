// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import "errors"

var (
	ErrNoSelection     = errors.New("nothing is selected on the page")
	ErrNotGamingSite   = errors.New("selection checks are offered on gaming sites only")
	ErrCoordinatorGone = errors.New("could not reach the coordinator")
)
