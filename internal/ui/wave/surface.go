package wave

import (
	"image"
	"image/color"
	"math"
)

// Surface geometry. Waterline and amplitude are fractions of the surface
// height; layer frequencies are full periods across the surface width.
const (
	waterlineFraction    = 0.62
	maxAmplitudeFraction = 0.16
)

type waveLayer struct {
	frequency  float64
	phaseShift float64
	drift      float64
	alpha      uint8
}

// Three stacked sine layers drifting at different rates read as open water.
var waveLayers = []waveLayer{
	{frequency: 1.7, phaseShift: 0.0, drift: 1.0, alpha: 235},
	{frequency: 2.3, phaseShift: 2.1, drift: 0.65, alpha: 130},
	{frequency: 3.1, phaseShift: 4.4, drift: 1.35, alpha: 80},
}

// frameState is the per-frame animated state the raster generator reads.
type frameState struct {
	height float64
	phase  float64
	colors palette
}

// layerSurfaceY returns the water surface height (in pixels from the top)
// for one layer at column x.
func layerSurfaceY(x, width, height float64, layer waveLayer, state frameState) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	waterline := height * waterlineFraction
	amplitude := height * maxAmplitudeFraction * state.height
	angle := x/width*2*math.Pi*layer.frequency + state.phase*layer.drift + layer.phaseShift
	return waterline - amplitude*math.Sin(angle)
}

// paintSurface renders the layered wave into an NRGBA image.
func paintSurface(width, height int, state frameState) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	layerColors := [3]color.NRGBA{state.colors.deep, state.colors.mid, state.colors.crest}
	for pixelX := 0; pixelX < width; pixelX++ {
		var surfaces [3]float64
		for i, layer := range waveLayers {
			surfaces[i] = layerSurfaceY(float64(pixelX), float64(width), float64(height), layer, state)
		}

		for pixelY := 0; pixelY < height; pixelY++ {
			pixel := backgroundColor
			depth := float64(pixelY)
			for i, layer := range waveLayers {
				if depth >= surfaces[i] {
					tint := layerColors[i%len(layerColors)]
					tint.A = layer.alpha
					pixel = blend(pixel, tint)
				}
			}
			img.SetNRGBA(pixelX, pixelY, pixel)
		}
	}
	return img
}

// blend composites src over dst with src's alpha.
func blend(dst, src color.NRGBA) color.NRGBA {
	alpha := uint16(src.A)
	inverse := uint16(255 - src.A)
	return color.NRGBA{
		R: uint8((uint16(src.R)*alpha + uint16(dst.R)*inverse) / 255),
		G: uint8((uint16(src.G)*alpha + uint16(dst.G)*inverse) / 255),
		B: uint8((uint16(src.B)*alpha + uint16(dst.B)*inverse) / 255),
		A: 255,
	}
}
