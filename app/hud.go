package app

import (
	"image/color"
	"strconv"

	"tinygo.org/x/tinyfont"
)

var hudColor = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF}

// drawHUD writes the pointer position and frame count into the top-left
// corner, over the freshly drawn field.
func (a *App) drawHUD() {
	d := &fbDisplay{fb: a.fb}
	s := strconv.Itoa(int(a.px)) + "," + strconv.Itoa(int(a.py)) +
		" #" + strconv.FormatUint(a.frames, 10) +
		" t" + strconv.FormatUint(a.tick, 10)
	tinyfont.WriteLine(d, &tinyfont.Org01, 4, 8, s, hudColor)
}
