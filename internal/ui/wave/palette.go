package wave

import (
	"image/color"

	"focuswave/internal/core/session"
)

// palette groups the colors for one wave tone: the deep fill, the lighter
// mid layer, and the crest/ripple accent.
type palette struct {
	deep  color.NRGBA
	mid   color.NRGBA
	crest color.NRGBA
}

var backgroundColor = color.NRGBA{R: 11, G: 16, B: 26, A: 255}

var palettes = map[session.Tone]palette{
	session.ToneFocus: {
		deep:  color.NRGBA{R: 16, G: 58, B: 122, A: 235},
		mid:   color.NRGBA{R: 36, G: 96, B: 176, A: 130},
		crest: color.NRGBA{R: 120, G: 190, B: 255, A: 255},
	},
	session.ToneBreak: {
		deep:  color.NRGBA{R: 12, G: 92, B: 74, A: 235},
		mid:   color.NRGBA{R: 30, G: 138, B: 108, A: 130},
		crest: color.NRGBA{R: 110, G: 230, B: 186, A: 255},
	},
	session.ToneNeutral: {
		deep:  color.NRGBA{R: 52, G: 58, B: 70, A: 235},
		mid:   color.NRGBA{R: 78, G: 86, B: 100, A: 130},
		crest: color.NRGBA{R: 150, G: 158, B: 172, A: 255},
	},
}

func toneColors(tone session.Tone) palette {
	if colors, ok := palettes[tone]; ok {
		return colors
	}
	return palettes[session.ToneNeutral]
}
