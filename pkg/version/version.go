// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridden at release time via -ldflags.
var Version = "0.1.0"
