package render

import (
	"fmt"
	"image"
	"image/gif"
	"io"

	"github.com/slitviz/slitviz/entity"
	"github.com/slitviz/slitviz/optics"
)

// frameDelay is in hundredths of a second per frame.
const frameDelay = 8

// GIF writes one paletted frame per field, looping forever. Frames share
// the colormap's 256-color palette and the bottom-left origin of PNG.
func GIF(w io.Writer, fields []*optics.Field, p *entity.Parameters) error {
	if len(fields) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	cm, err := ByName(p.Colormap)
	if err != nil {
		return err
	}
	palette := cm.Palette()

	anim := gif.GIF{LoopCount: 0}
	for _, f := range fields {
		n := f.N()
		frame := image.NewPaletted(image.Rect(0, 0, n, n), palette)
		for i := 0; i < n; i++ {
			row := f.Row(i)
			y := n - 1 - i
			for j, v := range row {
				frame.SetColorIndex(j, y, uint8(cm.index(v)))
			}
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, frameDelay)
	}
	return gif.EncodeAll(w, &anim)
}
