//go:build !js

// Command mipgen writes the mip chain of an image as one PNG per level.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
)

var (
	inPath               = flag.String("in", "", "image to build the mip chain of (png, jpeg, gif, bmp or webp)")
	outDir               = flag.String("out_dir", ".", "directory to write level_<n>_<w>x<h>.png files to")
	backend              = flag.String("backend", "gpu", "where to generate the levels: gpu or cpu")
	format               = flag.String("format", "rgba8unorm", "GPU texture format: rgba8unorm or rgba8unorm-srgb")
	forceFallbackAdapter = flag.Bool("force_fallback_adapter", false, "use a software GPU adapter")
)

func main() {
	flag.Parse()

	if *inPath == "" {
		log.Fatalf("-in is required")
	}
	cfg := config{
		inPath:               *inPath,
		outDir:               *outDir,
		backend:              *backend,
		format:               *format,
		forceFallbackAdapter: *forceFallbackAdapter,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.Fatalf("mipgen: %v", err)
	}
}
