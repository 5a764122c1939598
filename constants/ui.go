package constants

import "time"

// UI Layout Constants
const (
	// CellColumns is how many terminal columns one grid cell occupies
	CellColumns = 2

	// HUDRows is the number of terminal rows reserved above the playfield
	HUDRows = 2

	// HoleBlinkSeconds is the remaining hole time below which the hole glyph blinks
	HoleBlinkSeconds = 1.5
)

// Status line text
const (
	StatusExitOpen = " EXIT OPEN - CLIMB OUT "
	StatusWon      = " LEVEL COMPLETE - R TO RESTART "
	StatusOver     = " GAME OVER - R TO RESTART "
)

// StatusMessageDuration is how long a transient status message stays on the HUD
const StatusMessageDuration = 2 * time.Second

// HoleBlinkPeriod is the on/off period of an expiring hole
const HoleBlinkPeriod = 250 * time.Millisecond

// HUD text
const (
	AudioStrOn  = " SND "
	AudioStrOff = " MUTE "
	TooSmallFmt = "terminal too small: need %dx%d"
)
