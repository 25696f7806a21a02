package telemetry

import (
	"image/color"

	"github.com/pthm-cable/topo/canvas"
)

var testBackground = color.NRGBA{R: 0x11, G: 0x14, B: 0x17, A: 0xff}

func newDiscardSurface() *canvas.SVGSurface {
	return canvas.NewSVGSurface(200, 100, testBackground)
}
