// Qtizer - a colour palette quantizer
//
// Qtizer reduces an image to a small set of representative colours
// using k-means clustering and prints them as hex or rgb colour codes,
// or rewrites the image limited to its quantized palette.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/qtizer/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
