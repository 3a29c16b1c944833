package main

import "image/color"

var backgroundColor = color.RGBA{R: 245, G: 245, B: 220, A: 255}
var outlineColor = color.RGBA{G: 100, A: 255}
var shadowColor = color.NRGBA{A: 100}

const shadowOffset = 3
const outlineWidth = 2

// levelColors runs from light green over gold and red into deep violet.
var levelColors = map[int]color.Color{
	1:  color.RGBA{R: 144, G: 238, B: 144, A: 255},
	2:  color.RGBA{R: 152, G: 251, B: 152, A: 255},
	3:  color.RGBA{R: 173, G: 255, B: 47, A: 255},
	4:  color.RGBA{R: 255, G: 215, B: 0, A: 255},
	5:  color.RGBA{R: 255, G: 165, B: 0, A: 255},
	6:  color.RGBA{R: 255, G: 69, B: 0, A: 255},
	7:  color.RGBA{R: 255, G: 0, B: 0, A: 255},
	8:  color.RGBA{R: 147, G: 112, B: 219, A: 255},
	9:  color.RGBA{R: 138, G: 43, B: 226, A: 255},
	10: color.RGBA{R: 148, G: 0, B: 211, A: 255},
}

func colorForLevel(level int) color.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}

	return color.RGBA{R: 200, G: 200, B: 200, A: 255}
}
