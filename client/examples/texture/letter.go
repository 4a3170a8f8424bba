package texture

import (
	_ "embed"
	"image"
	"image/color"
)

//go:embed texture.wgsl
var shaderCode string

var (
	red    = color.RGBA{R: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	blue   = color.RGBA{B: 255, A: 255}
)

// letterRows draws an F on red, one string per texel row from the top. The
// blue corner shows which way up the texture is.
var letterRows = []string{
	"b____",
	"_yyy_",
	"_y___",
	"_yy__",
	"_y___",
	"_y___",
	"_____",
}

var texelColors = map[byte]color.RGBA{
	'_': red,
	'y': yellow,
	'b': blue,
}

// letterImage returns the F as a 5x7 image.
func letterImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(letterRows[0]), len(letterRows)))
	for y, row := range letterRows {
		for x := 0; x < len(row); x++ {
			img.SetRGBA(x, y, texelColors[row[x]])
		}
	}
	return img
}
