package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/engine"
	"github.com/HJXCODE-810/Lode-runner-CG/level"
)

// MuteState reports the audio mute toggle for the HUD indicator
type MuteState interface {
	Muted() bool
}

// TerminalRenderer draws snapshots: two HUD rows, then the playfield with row 0 at the bottom.
// Each grid cell is constants.CellColumns terminal columns wide.
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	status *StatusLine
	mute   MuteState
}

// NewTerminalRenderer creates a renderer; status and mute may be nil
func NewTerminalRenderer(screen tcell.Screen, status *StatusLine, mute MuteState) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
		status: status,
		mute:   mute,
	}
}

// Buffer exposes the last composed frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// RenderFrame composes the snapshot and shows it
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot, now time.Time) {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}
	r.Compose(snap, now)
	r.buf.Flush(r.screen)
}

// Compose draws the snapshot into the buffer without touching the screen
func (r *TerminalRenderer) Compose(snap *engine.Snapshot, now time.Time) {
	w, h := r.buf.Bounds()
	fieldW := snap.Width * constants.CellColumns
	needW, needH := fieldW, constants.HUDRows+snap.Height
	if w < needW || h < needH {
		r.buf.SetString(0, 0, fmt.Sprintf(constants.TooSmallFmt, needW, needH), StyleBackground.Foreground(RgbHUDText))
		return
	}

	originX := (w - fieldW) / 2
	r.drawHUD(snap, now, originX)
	r.drawField(snap, now, originX)
	r.drawEntities(snap, originX)
}

// screenPos maps a grid cell to the terminal position of its left column
func screenPos(snap *engine.Snapshot, originX int, c level.Cell) (int, int) {
	return originX + c.Col*constants.CellColumns, constants.HUDRows + (snap.Height - 1 - c.Row)
}

func (r *TerminalRenderer) drawHUD(snap *engine.Snapshot, now time.Time, originX int) {
	st := snap.State
	label := StyleBackground.Foreground(RgbHUDText)
	value := StyleBackground.Foreground(RgbHUDScore).Bold(true)

	x := originX
	x = r.buf.SetString(x, 0, "SCORE ", label)
	x = r.buf.SetString(x, 0, fmt.Sprintf("%06d", st.Score), value)
	x = r.buf.SetString(x, 0, "  LIVES ", label)
	x = r.buf.SetString(x, 0, fmt.Sprintf("%d", st.Lives), value)
	x = r.buf.SetString(x, 0, "  GOLD ", label)
	x = r.buf.SetString(x, 0, fmt.Sprintf("%d/%d", st.Collected, st.Total), value)
	r.buf.SetString(x, 0, "  "+snap.Level, label)

	if r.mute != nil {
		text, bg := constants.AudioStrOn, RgbAudioUnmuted
		if r.mute.Muted() {
			text, bg = constants.AudioStrOff, RgbAudioMuted
		}
		w, _ := r.buf.Bounds()
		r.buf.SetString(w-len(text), 0, text, StyleBackground.Foreground(tcell.ColorBlack).Background(bg))
	}

	// Terminal and exit banners outrank transient messages
	var text string
	var bg tcell.Color
	switch {
	case st.Over:
		text, bg = constants.StatusOver, RgbGameOverBg
	case st.Won:
		text, bg = constants.StatusWon, RgbWonBg
	default:
		if r.status != nil {
			if msg, ok := r.status.Message(now); ok {
				text, bg = msg, RgbStatusInfoBg
				break
			}
		}
		if st.LevelComplete {
			text, bg = constants.StatusExitOpen, RgbExitOpenBg
		}
	}
	if text != "" {
		r.buf.SetString(originX, 1, text, StyleBackground.Foreground(RgbStatusText).Background(bg))
	}
}

func (r *TerminalRenderer) drawField(snap *engine.Snapshot, now time.Time, originX int) {
	holes := snap.HoleMap()
	blinkOn := (now.UnixNano()/int64(constants.HoleBlinkPeriod))%2 == 0

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			c := level.Cell{Col: col, Row: row}
			x, y := screenPos(snap, originX, c)
			glyph, style := tileGlyph(snap.Tile(col, row))
			if remaining, ok := holes[c]; ok {
				glyph, style = holeGlyph(remaining, blinkOn)
			}
			r.setCell(x, y, glyph, style)
		}
	}

	for _, c := range snap.Gold {
		x, y := screenPos(snap, originX, c)
		r.setCell(x, y, glyphGold, StyleBackground.Foreground(RgbGold).Bold(true))
	}
}

// drawEntities places each live entity in the cell holding its centre; the player is drawn last
func (r *TerminalRenderer) drawEntities(snap *engine.Snapshot, originX int) {
	for i := len(snap.Entities) - 1; i >= 0; i-- {
		e := snap.Entities[i]
		if !e.Alive {
			continue
		}
		c := level.Cell{
			Col: int(math.Floor((e.X + e.W/2) / snap.TileSize)),
			Row: int(math.Floor((e.Y + e.H/2) / snap.TileSize)),
		}
		if c.Col < 0 || c.Col >= snap.Width || c.Row < 0 || c.Row >= snap.Height {
			continue
		}
		x, y := screenPos(snap, originX, c)
		r.setCell(x, y, entityGlyph(e), entityStyle(e))
	}
}

func (r *TerminalRenderer) setCell(x, y int, glyph [2]rune, style tcell.Style) {
	for i := 0; i < constants.CellColumns && i < len(glyph); i++ {
		r.buf.Set(x+i, y, glyph[i], style)
	}
}

// ===== GLYPHS =====

var (
	glyphEmpty  = [2]rune{' ', ' '}
	glyphBrick  = [2]rune{'▓', '▓'}
	glyphSolid  = [2]rune{'█', '█'}
	glyphLadder = [2]rune{'╟', '╢'}
	glyphRope   = [2]rune{'─', '─'}
	glyphGold   = [2]rune{'$', '$'}
	glyphHole   = [2]rune{'░', '░'}
)

func tileGlyph(t level.Tile) ([2]rune, tcell.Style) {
	switch t {
	case level.Brick:
		return glyphBrick, StyleBackground.Foreground(RgbBrick)
	case level.SolidBrick:
		return glyphSolid, StyleBackground.Foreground(RgbSolidBrick)
	case level.Ladder:
		return glyphLadder, StyleBackground.Foreground(RgbLadder)
	case level.Rope:
		return glyphRope, StyleBackground.Foreground(RgbRope)
	case level.ExitLadder:
		return glyphLadder, StyleBackground.Foreground(RgbExitLadder).Bold(true)
	default:
		return glyphEmpty, StyleBackground
	}
}

// holeGlyph shows an open hole, flashing once it is close to refilling
func holeGlyph(remaining float64, blinkOn bool) ([2]rune, tcell.Style) {
	if remaining < constants.HoleBlinkSeconds && blinkOn {
		return glyphHole, StyleBackground.Foreground(RgbHoleBlink).Background(RgbHole)
	}
	return glyphEmpty, StyleBackground.Background(RgbHole)
}

func entityGlyph(e engine.EntityView) [2]rune {
	body := '&'
	if e.Player {
		body = '@'
	}
	if e.FaceRight {
		return [2]rune{body, '>'}
	}
	return [2]rune{'<', body}
}

func entityStyle(e engine.EntityView) tcell.Style {
	switch {
	case e.Player:
		return StyleBackground.Foreground(RgbPlayer).Bold(true)
	case e.Trapped:
		return StyleBackground.Foreground(RgbEnemyTrapped)
	default:
		return StyleBackground.Foreground(RgbEnemy).Bold(true)
	}
}
