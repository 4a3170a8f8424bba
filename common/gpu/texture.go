package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hulkholden/webgpu-lessons/common/mipchain"
	"github.com/hulkholden/webgpu-lessons/common/mipmap"
)

var textureFormats = map[mipmap.TextureFormat]wgpu.TextureFormat{
	mipmap.TextureFormatRGBA8Unorm:     wgpu.TextureFormatRGBA8Unorm,
	mipmap.TextureFormatRGBA8UnormSRGB: wgpu.TextureFormatRGBA8UnormSrgb,
	mipmap.TextureFormatBGRA8Unorm:     wgpu.TextureFormatBGRA8Unorm,
	mipmap.TextureFormatBGRA8UnormSRGB: wgpu.TextureFormatBGRA8UnormSrgb,
	mipmap.TextureFormatRGBA16Float:    wgpu.TextureFormatRGBA16Float,
	mipmap.TextureFormatRGBA32Float:    wgpu.TextureFormatRGBA32Float,
}

func textureFormat(f mipmap.TextureFormat) (wgpu.TextureFormat, error) {
	format, ok := textureFormats[f]
	if !ok {
		return wgpu.TextureFormatUndefined, fmt.Errorf("unsupported texture format %q", f)
	}
	return format, nil
}

// rgba8 reports whether f stores one byte per channel, which is what Upload
// and ReadLevel exchange. bgra reports whether red and blue are swapped.
func rgba8(f mipmap.TextureFormat) (ok, bgra bool) {
	switch f {
	case mipmap.TextureFormatRGBA8Unorm, mipmap.TextureFormatRGBA8UnormSRGB:
		return true, false
	case mipmap.TextureFormatBGRA8Unorm, mipmap.TextureFormatBGRA8UnormSRGB:
		return true, true
	}
	return false, false
}

// Texture is a 2D texture usable by mipmap.Generate. It implements
// mipmap.Texture.
type Texture struct {
	mipmap.TextureCache

	device  *Device
	texture *wgpu.Texture
	format  mipmap.TextureFormat
	wformat wgpu.TextureFormat

	width, height int
	levels        int
}

// CreateTexture creates a width x height texture with the given number of
// mip levels. It can be rendered to, sampled and copied in both directions.
func (d *Device) CreateTexture(label string, width, height, levels int, format mipmap.TextureFormat) (*Texture, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	if max := mipchain.NumLevels(width, height); levels < 1 || levels > max {
		return nil, fmt.Errorf("%dx%d texture cannot have %d levels (max %d)", width, height, levels, max)
	}
	wformat, err := textureFormat(format)
	if err != nil {
		return nil, err
	}
	t, err := d.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     label,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		Format:        wformat,
		MipLevelCount: uint32(levels),
		SampleCount:   1,
		Usage: wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageRenderAttachment |
			wgpu.TextureUsageCopyDst |
			wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("creating texture %q: %w", label, err)
	}
	return &Texture{
		device:  d,
		texture: t,
		format:  format,
		wformat: wformat,
		width:   width,
		height:  height,
		levels:  levels,
	}, nil
}

func (t *Texture) Format() mipmap.TextureFormat { return t.format }
func (t *Texture) MipLevelCount() int           { return t.levels }
func (t *Texture) Width() int                   { return t.width }
func (t *Texture) Height() int                  { return t.height }

// WGPU returns the underlying texture.
func (t *Texture) WGPU() *wgpu.Texture { return t.texture }

// View returns a view of every level, for sampling the texture with a
// mipmap filter.
func (t *Texture) View(label string) (*wgpu.TextureView, error) {
	return t.texture.CreateView(&wgpu.TextureViewDescriptor{
		Label:           label,
		Format:          t.wformat,
		Dimension:       wgpu.TextureViewDimension2D,
		BaseMipLevel:    0,
		MipLevelCount:   uint32(t.levels),
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
		Aspect:          wgpu.TextureAspectAll,
	})
}

func (t *Texture) CreateMipView(label string, level int) (mipmap.TextureView, error) {
	return t.texture.CreateView(&wgpu.TextureViewDescriptor{
		Label:           label,
		Format:          t.wformat,
		Dimension:       wgpu.TextureViewDimension2D,
		BaseMipLevel:    uint32(level),
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
		Aspect:          wgpu.TextureAspectAll,
	})
}

// Upload writes img into level 0. img must have the size of the texture,
// whose format must have 8 bit channels.
func (t *Texture) Upload(img *image.RGBA) error {
	ok, bgra := rgba8(t.format)
	if !ok {
		return fmt.Errorf("cannot upload RGBA pixels to a %s texture", t.format)
	}
	b := img.Bounds()
	if b.Dx() != t.width || b.Dy() != t.height {
		return fmt.Errorf("image is %dx%d, texture is %dx%d", b.Dx(), b.Dy(), t.width, t.height)
	}

	rowBytes := 4 * t.width
	pix := make([]byte, rowBytes*t.height)
	for y := 0; y < t.height; y++ {
		copy(pix[y*rowBytes:(y+1)*rowBytes], img.Pix[y*img.Stride:])
	}
	if bgra {
		swapRedBlue(pix)
	}

	return t.device.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  t.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(rowBytes),
			RowsPerImage: uint32(t.height),
		},
		&wgpu.Extent3D{
			Width:              uint32(t.width),
			Height:             uint32(t.height),
			DepthOrArrayLayers: 1,
		},
	)
}

// ReadLevel copies a mip level back to the host, waiting for the GPU to
// finish all work submitted before it. In the browser it waits on a JS
// promise, so it must not be called from a JS callback.
func (t *Texture) ReadLevel(level int) (*image.RGBA, error) {
	ok, bgra := rgba8(t.format)
	if !ok {
		return nil, fmt.Errorf("cannot read RGBA pixels from a %s texture", t.format)
	}
	if level < 0 || level >= t.levels {
		return nil, fmt.Errorf("level %d out of range [0, %d)", level, t.levels)
	}
	w, h := mipchain.LevelSize(t.width, t.height, level)
	rowBytes := 4 * w
	paddedRowBytes := alignUp(rowBytes, int(wgpu.CopyBytesPerRowAlignment))
	size := uint64(paddedRowBytes * h)

	d := t.device
	buf, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: fmt.Sprintf("readback of level %d", level),
		Size:  size,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("creating readback buffer: %w", err)
	}
	defer buf.Release()

	enc, err := d.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "readback encoder"})
	if err != nil {
		return nil, fmt.Errorf("creating command encoder: %w", err)
	}
	enc.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture:  t.texture,
			MipLevel: uint32(level),
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyBuffer{
			Buffer: buf,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(paddedRowBytes),
				RowsPerImage: uint32(h),
			},
		},
		&wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
	cb, err := enc.Finish(nil)
	enc.Release()
	if err != nil {
		return nil, fmt.Errorf("finishing readback: %w", err)
	}
	d.queue.Submit(cb)
	cb.Release()

	var status wgpu.BufferMapAsyncStatus
	mapped := false
	err = buf.MapAsync(wgpu.MapModeRead, 0, size, func(s wgpu.BufferMapAsyncStatus) {
		status = s
		mapped = true
	})
	if err != nil {
		return nil, fmt.Errorf("mapping readback buffer: %w", err)
	}
	for !mapped {
		d.wait()
	}
	if status != wgpu.BufferMapAsyncStatusSuccess {
		return nil, fmt.Errorf("mapping readback buffer: status %v", status)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	data := buf.GetMappedRange(0, uint(size))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+rowBytes], data[y*paddedRowBytes:])
	}
	buf.Unmap()
	if bgra {
		swapRedBlue(img.Pix)
	}
	return img, nil
}

// Release frees the texture and the mipmap resources cached for it.
func (t *Texture) Release() {
	mipmap.Forget(t)
	t.texture.Release()
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

func swapRedBlue(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}
