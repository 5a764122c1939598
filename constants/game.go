package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering and simulation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps elapsed time fed into one tick after a stall
	MaxTickDelta = 100 * time.Millisecond

	// InputHoldWindow is how long a key counts as held after its last press or repeat event.
	// Terminals report presses only, never releases.
	InputHoldWindow = 150 * time.Millisecond
)

// Event Queue
const (
	// EventQueueBatch bounds the events one tick may queue before the oldest are dropped
	EventQueueBatch = 256
)

// Spectator Feed
const (
	// SpectateDefaultAddr is the listen address used when the feed is enabled without one
	SpectateDefaultAddr = "127.0.0.1:8765"

	// SpectatePath is the websocket endpoint
	SpectatePath = "/ws"

	// SpectateSendBuffer is the per-viewer queue of encoded frames; slow viewers drop frames
	SpectateSendBuffer = 8

	// SpectateWriteWait bounds one websocket write
	SpectateWriteWait = 2 * time.Second

	// SpectatePingInterval is how often idle viewers are pinged
	SpectatePingInterval = 30 * time.Second

	// SpectatePongWait is how long a viewer may stay silent before it is dropped
	SpectatePongWait = 60 * time.Second

	// SpectateFrameDivisor streams one frame out of every N ticks
	SpectateFrameDivisor = 4
)
