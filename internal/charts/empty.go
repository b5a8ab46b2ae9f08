package charts

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const emptyMessage = "No rentals for this selection"

// renderEmpty draws the panel frame, title and axis labels with no marks.
func renderEmpty(w io.Writer, spec Spec) error {
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 400
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	plot := image.Rect(60, 50, width-20, height-40)
	drawFrame(img, plot, color.RGBA{R: 180, G: 180, B: 180, A: 255})

	ink := color.RGBA{R: 51, G: 51, B: 51, A: 255}
	drawCentered(img, spec.Title, width/2, 30, ink)
	drawCentered(img, spec.XLabel, plot.Min.X+plot.Dx()/2, height-14, ink)
	drawCentered(img, emptyMessage, plot.Min.X+plot.Dx()/2, plot.Min.Y+plot.Dy()/2, color.RGBA{R: 140, G: 140, B: 140, A: 255})
	drawVertical(img, spec.YLabel, 14, plot.Min.Y+plot.Dy()/2, ink)

	return png.Encode(w, img)
}

func drawFrame(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X, y, c)
	}
}

func drawCentered(img *image.RGBA, text string, cx, baseline int, c color.Color) {
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: basicfont.Face7x13}
	tw := d.MeasureString(text).Ceil()
	d.Dot = fixed.Point26_6{X: fixed.I(cx - tw/2), Y: fixed.I(baseline)}
	d.DrawString(text)
}

// drawVertical renders text bottom-to-top centred on (cx, cy) by drawing it
// horizontally into a scratch image and rotating it a quarter turn.
func drawVertical(img *image.RGBA, text string, cx, cy int, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face}
	tw := d.MeasureString(text).Ceil()
	th := face.Metrics().Height.Ceil()
	if tw == 0 {
		return
	}

	scratch := image.NewRGBA(image.Rect(0, 0, tw, th))
	d.Dst = scratch
	d.Src = image.NewUniform(c)
	d.Dot = fixed.Point26_6{X: 0, Y: face.Metrics().Ascent}
	d.DrawString(text)

	left := cx - th/2
	top := cy - tw/2
	for y := 0; y < th; y++ {
		for x := 0; x < tw; x++ {
			px := scratch.RGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			img.SetRGBA(left+y, top+tw-1-x, px)
		}
	}
}
