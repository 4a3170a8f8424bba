//go:build !js

package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hulkholden/webgpu-lessons/common/gpu"
	"github.com/hulkholden/webgpu-lessons/common/mipchain"
	"github.com/hulkholden/webgpu-lessons/common/mipmap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

type config struct {
	inPath               string
	outDir               string
	backend              string
	format               string
	forceFallbackAdapter bool
}

var formats = map[string]mipmap.TextureFormat{
	"rgba8unorm":      mipmap.TextureFormatRGBA8Unorm,
	"rgba8unorm-srgb": mipmap.TextureFormatRGBA8UnormSRGB,
}

func run(ctx context.Context, cfg config) error {
	format, ok := formats[cfg.format]
	if !ok {
		return fmt.Errorf("unsupported format %q", cfg.format)
	}

	img, err := decodeImage(cfg.inPath)
	if err != nil {
		return err
	}
	b := img.Bounds()
	log.Printf("Loaded %s: %dx%d, %d levels", cfg.inPath, b.Dx(), b.Dy(), mipchain.NumLevels(b.Dx(), b.Dy()))

	var levels []*image.RGBA
	switch cfg.backend {
	case "cpu":
		levels = mipchain.Generate(img)
	case "gpu":
		levels, err = generateGPU(ctx, toRGBA(img), format, gpu.Options{ForceFallbackAdapter: cfg.forceFallbackAdapter})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown backend %q", cfg.backend)
	}

	paths, err := writeLevels(cfg.outDir, levels)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Printf("Wrote %s", p)
	}
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)
	return rgba
}

// generateGPU uploads img as level 0, fills the chain with mipmap.Generate
// and reads every level back.
func generateGPU(ctx context.Context, img *image.RGBA, format mipmap.TextureFormat, opts gpu.Options) ([]*image.RGBA, error) {
	device, err := gpu.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer device.Close()

	w, h := img.Rect.Dx(), img.Rect.Dy()
	n := mipchain.NumLevels(w, h)
	tex, err := device.CreateTexture("mipgen", w, h, n, format)
	if err != nil {
		return nil, err
	}
	defer tex.Release()

	if err := tex.Upload(img); err != nil {
		return nil, err
	}
	if err := mipmap.Generate(device, tex); err != nil {
		return nil, fmt.Errorf("generating mipmaps: %w", err)
	}

	levels := make([]*image.RGBA, n)
	for level := range levels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if levels[level], err = tex.ReadLevel(level); err != nil {
			return nil, fmt.Errorf("reading level %d: %w", level, err)
		}
	}
	return levels, nil
}

func levelFileName(level int, img image.Image) string {
	b := img.Bounds()
	return fmt.Sprintf("level_%d_%dx%d.png", level, b.Dx(), b.Dy())
}

// writeLevels writes each level to dir and returns the paths written.
func writeLevels(dir string, levels []*image.RGBA) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(levels))
	for level, img := range levels {
		p := filepath.Join(dir, levelFileName(level, img))
		if err := writePNG(p, img); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
