package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to logical game keys
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Key

	// Rune bindings, matched case-insensitively
	Runes map[rune]Key
}

// DefaultKeyTable returns the default bindings: arrows or WASD to move, q/z and e/x to dig, r to restart
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyUp:     KeyUp,
			tcell.KeyDown:   KeyDown,
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
		},
		Runes: map[rune]Key{
			'w': KeyUp,
			's': KeyDown,
			'a': KeyLeft,
			'd': KeyRight,
			'q': KeyDigLeft,
			'z': KeyDigLeft,
			'e': KeyDigRight,
			'x': KeyDigRight,
			'r': KeyRestart,
		},
	}
}

// Lookup maps a tcell key event to a logical key
func (t *KeyTable) Lookup(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		k, ok := t.Runes[r]
		return k, ok
	}
	k, ok := t.SpecialKeys[ev.Key()]
	return k, ok
}
