package spectate

import (
	"time"

	"github.com/HJXCODE-810/Lode-runner-CG/constants"
)

// Config holds spectator feed settings
type Config struct {
	// Address to bind
	Addr string

	// Connection limits
	MaxViewers int

	// Timing
	WriteWait    time.Duration
	PingInterval time.Duration
	PongWait     time.Duration

	// SendQueueSize is the per-viewer backlog of encoded frames
	SendQueueSize int
}

// DefaultConfig returns the feed defaults bound to addr
func DefaultConfig(addr string) *Config {
	if addr == "" {
		addr = constants.SpectateDefaultAddr
	}
	return &Config{
		Addr:          addr,
		MaxViewers:    16,
		WriteWait:     constants.SpectateWriteWait,
		PingInterval:  constants.SpectatePingInterval,
		PongWait:      constants.SpectatePongWait,
		SendQueueSize: constants.SpectateSendBuffer,
	}
}
