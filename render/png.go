package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/optics"
)

// captionHeight is the pixel height of the text strip above the pattern.
const captionHeight = 36

var captionBackground = color.RGBA{R: 14, G: 17, B: 23, A: 255}

// PNG writes the field as an image with grid row 0 at the bottom edge and
// a caption strip on top.
func PNG(w io.Writer, f *optics.Field, p *entity.Parameters) error {
	cm, err := ByName(p.Colormap)
	if err != nil {
		return err
	}

	n := f.N()
	img := image.NewRGBA(image.Rect(0, 0, n, n+captionHeight))
	for y := 0; y < captionHeight; y++ {
		for x := 0; x < n; x++ {
			img.SetRGBA(x, y, captionBackground)
		}
	}
	for i := 0; i < n; i++ {
		row := f.Row(i)
		y := captionHeight + n - 1 - i
		for j, v := range row {
			img.SetRGBA(j, y, cm.At(v))
		}
	}

	drawLabel(img, title(p), 4, 13)
	drawLabel(img, settings(p), 4, 28)

	return png.Encode(w, img)
}

func drawLabel(img *image.RGBA, text string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
