package ebiten

import "image"

// Logical screen size in pixels.
const (
	screenWidth  = 240
	screenHeight = 160
)

// Window scale constraints
const (
	minScale     = 1
	maxScale     = 8
	defaultScale = 3
)

// Rooms are drawn with 8x8 tiles, centred above the dialog box.
var (
	tileSize   = image.Pt(8, 8)
	roomOrigin = image.Pt((screenWidth-16*8)/2, 0)
)

// stickThreshold is how far an analog stick must lean before it counts as a
// direction.
const stickThreshold = 0.4
