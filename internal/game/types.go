package game

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Update when the player asks to leave
var ErrQuit = errors.New("quit requested")

// Palette used by the drawing code
var (
	colorSky        = color.RGBA{0x5c, 0x94, 0xfc, 0xff}
	colorHill       = color.RGBA{0x00, 0xa8, 0x00, 0xff}
	colorWall       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorWhite      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorBlack      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorPlatform   = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	colorGrass      = color.RGBA{0x00, 0xff, 0x00, 0xff}
	colorCrate      = color.RGBA{0xcd, 0x85, 0x3f, 0xff}
	colorWater      = color.RGBA{0x00, 0x69, 0x94, 0xff}
	colorSpikes     = color.RGBA{0x44, 0x44, 0x44, 0xff}
	colorInkOK      = color.RGBA{0x00, 0xff, 0x00, 0xff}
	colorInkLow     = color.RGBA{0xf8, 0x38, 0x00, 0xff}
	colorTimer      = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colorHive       = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	colorHiveHole   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorBee        = color.RGBA{0xf8, 0xb8, 0x00, 0xff}
	colorBeeHit     = color.RGBA{0xff, 0x4d, 0x4d, 0xff}
	colorImpact     = color.RGBA{0xf8, 0x38, 0x00, 0x66}
	colorSkin       = color.RGBA{0xf8, 0xd8, 0x78, 0xff}
	colorWorried    = color.RGBA{0xff, 0xb0, 0x80, 0xff}
	colorHarmed     = color.RGBA{0xff, 0x80, 0x80, 0xff}
	colorHappy      = color.RGBA{0xff, 0xe8, 0x90, 0xff}
	colorBalloon    = color.RGBA{0xf8, 0x38, 0x00, 0xff}
	colorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	colorPanel      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorButtonWin  = color.RGBA{0xff, 0xcc, 0x00, 0xff}
	colorButtonFail = color.RGBA{0xf8, 0x38, 0x00, 0xff}
)
