package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	// Terrain
	RgbBrick      = tcell.NewRGBColor(178, 84, 44)
	RgbSolidBrick = tcell.NewRGBColor(110, 110, 125)
	RgbLadder     = tcell.NewRGBColor(220, 220, 220)
	RgbRope       = tcell.NewRGBColor(200, 170, 120)
	RgbExitLadder = tcell.NewRGBColor(80, 255, 120)
	RgbHole       = tcell.NewRGBColor(60, 35, 20)  // Open hole background
	RgbHoleBlink  = tcell.NewRGBColor(255, 120, 0) // Hole about to refill
	RgbGold       = tcell.NewRGBColor(255, 215, 0)

	// Entities
	RgbPlayer       = tcell.NewRGBColor(255, 255, 255)
	RgbEnemy        = tcell.NewRGBColor(255, 80, 80)
	RgbEnemyTrapped = tcell.NewRGBColor(255, 165, 0)

	// HUD
	RgbHUDText      = tcell.NewRGBColor(180, 180, 180)
	RgbHUDScore     = tcell.NewRGBColor(255, 215, 0)
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text on status backgrounds
	RgbStatusInfoBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbExitOpenBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbWonBg        = tcell.NewRGBColor(255, 215, 0)
	RgbGameOverBg   = tcell.NewRGBColor(200, 50, 50)
	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)
	RgbAudioUnmuted = tcell.NewRGBColor(0, 255, 0)
)

// StyleBackground is the blank cell style
var StyleBackground = tcell.StyleDefault.Background(RgbBackground)
