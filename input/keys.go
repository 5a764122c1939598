package input

import "strings"

// Key is one logical game key
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyDigLeft
	KeyDigRight
	KeyRestart
	KeyQuit
	keyCount
)

var keyNames = [...]string{
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyDigLeft:  "digleft",
	KeyDigRight: "digright",
	KeyRestart:  "restart",
	KeyQuit:     "quit",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeySet is the sparse set of logical keys pressed during one tick
type KeySet uint16

// Keys builds a set from the given keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

// With returns the set with k added
func (s KeySet) With(k Key) KeySet { return s | 1<<k }

// Without returns the set with k removed
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// Pressed returns the keys in s that are absent from prev
func (s KeySet) Pressed(prev KeySet) KeySet { return s &^ prev }

// Empty reports whether no key is set
func (s KeySet) Empty() bool { return s == 0 }

// Horizontal resolves left/right into -1, 0 or +1; both together cancel out
func (s KeySet) Horizontal() int {
	dir := 0
	if s.Has(KeyLeft) {
		dir--
	}
	if s.Has(KeyRight) {
		dir++
	}
	return dir
}

func (s KeySet) String() string {
	var parts []string
	for k := Key(0); k < keyCount; k++ {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}
