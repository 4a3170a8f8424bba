package mipmaps

import (
	_ "embed"
	"image"
	"image/color"

	"github.com/hulkholden/webgpu-lessons/common/camera"
	"github.com/hulkholden/webgpu-lessons/common/mat3"
	"github.com/hulkholden/webgpu-lessons/common/mat4"
	"github.com/hulkholden/webgpu-lessons/common/math32"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
	"golang.org/x/image/vector"
)

//go:embed mipmaps.wgsl
var shaderCode string

const (
	textureSize = 256

	// spiralSquares squares are drawn per frame, each nested in the last.
	spiralSquares = 20
	spiralShrink  = 0.85
	// spiralTimeScale slows the animation down from wall clock seconds.
	spiralTimeScale = 0.1

	tileColumns = 3
	tileRows    = 8
	numTiles    = tileColumns * tileRows

	// tileSpacing is the distance between tile centers along both axes.
	tileSpacing = 1.1
	floorHeight = -1
	firstRowZ   = 2
)

// spiral draws a rotating spiral of nested squares into a reused image, so the
// base level changes every frame.
type spiral struct {
	img    *image.RGBA
	raster *vector.Rasterizer
}

func newSpiral(size int) *spiral {
	return &spiral{
		img:    image.NewRGBA(image.Rect(0, 0, size, size)),
		raster: vector.NewRasterizer(size, size),
	}
}

// Draw renders the spiral as it looks seconds after the start.
func (s *spiral) Draw(seconds float32) *image.RGBA {
	t := seconds * spiralTimeScale
	size := float32(s.img.Rect.Dx())
	half := size / 2
	corners := []vmath.V2{
		vmath.NewV2(-half, -half),
		vmath.NewV2(half, -half),
		vmath.NewV2(half, half),
		vmath.NewV2(-half, half),
	}

	m := mat3.Translation(half, half)
	for i := 0; i < spiralSquares; i++ {
		c := hsl(float32(i)/spiralSquares*0.2+t*0.1, 1, float32(i%2)*0.5)
		s.raster.Reset(s.img.Rect.Dx(), s.img.Rect.Dy())
		for j, corner := range corners {
			p := m.MulPoint(corner)
			if j == 0 {
				s.raster.MoveTo(p.X, p.Y)
			} else {
				s.raster.LineTo(p.X, p.Y)
			}
		}
		s.raster.ClosePath()
		s.raster.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{})

		m = m.Rotate(t * 0.5).Scale(spiralShrink, spiralShrink).Translate(size/16, 0)
	}
	return s.img
}

// hsl converts a hue in turns and saturation and lightness in [0, 1] to an
// opaque color.
func hsl(h, s, l float32) color.RGBA {
	h = math32.Mod(h, 1)
	if h < 0 {
		h++
	}
	chroma := (1 - math32.Abs(2*l-1)) * s
	hp := h * 6
	x := chroma * (1 - math32.Abs(math32.Mod(hp, 2)-1))

	var r, g, b float32
	switch {
	case hp < 1:
		r, g = chroma, x
	case hp < 2:
		r, g = x, chroma
	case hp < 3:
		g, b = chroma, x
	case hp < 4:
		g, b = x, chroma
	case hp < 5:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}
	m := l - chroma/2
	to8 := func(v float32) uint8 { return uint8(math32.Clamp(v+m, 0, 1)*255 + 0.5) }
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}

// tileMatrices returns one clip space matrix per floor tile. Tiles are unit
// quads laid flat on the floor in rows receding from the camera, so distant
// rows sample smaller mip levels.
func tileMatrices(aspect float32) []mat4.M4 {
	vp := camera.NewPerspective(math32.Pi/3, aspect, 0.1, 100).ViewProjection()
	ms := make([]mat4.M4, 0, numTiles)
	for row := 0; row < tileRows; row++ {
		for col := 0; col < tileColumns; col++ {
			x := (float32(col) - float32(tileColumns-1)/2) * tileSpacing
			z := firstRowZ + float32(row)*tileSpacing
			ms = append(ms, vp.Translate(x, floorHeight, z).RotateX(math32.HalfPi))
		}
	}
	return ms
}
