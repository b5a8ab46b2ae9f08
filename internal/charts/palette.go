package charts

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// viridisStops samples the viridis colormap at 0, .25, .5, .75 and 1.
var viridisStops = []drawing.Color{
	drawing.ColorFromHex("440154"),
	drawing.ColorFromHex("3b528b"),
	drawing.ColorFromHex("21918c"),
	drawing.ColorFromHex("5ec962"),
	drawing.ColorFromHex("fde725"),
}

// viridis returns n colours spaced evenly through the colormap, skipping the
// extreme ends so that neither the darkest nor the lightest shade is used.
func viridis(n int) []drawing.Color {
	colors := make([]drawing.Color, n)
	for i := range colors {
		colors[i] = viridisAt(float64(i+1) / float64(n+1))
	}
	return colors
}

func viridisAt(t float64) drawing.Color {
	if t <= 0 {
		return viridisStops[0]
	}
	if t >= 1 {
		return viridisStops[len(viridisStops)-1]
	}
	pos := t * float64(len(viridisStops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := viridisStops[i], viridisStops[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
