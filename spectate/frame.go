package spectate

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/HJXCODE-810/Lode-runner-CG/engine"
	"github.com/HJXCODE-810/Lode-runner-CG/events"
)

// EventView is one simulation event as seen by viewers
type EventView struct {
	Type  string `msgpack:"type"`
	Frame int64  `msgpack:"frame"`
}

// Frame is one binary websocket message: a snapshot plus the events since the previous frame
type Frame struct {
	Seq      uint64           `msgpack:"seq"`
	Snapshot *engine.Snapshot `msgpack:"snapshot"`
	Events   []EventView      `msgpack:"events,omitempty"`
}

// NewFrame builds a frame; seq is assigned by the hub
func NewFrame(snap *engine.Snapshot, evs []events.GameEvent) *Frame {
	f := &Frame{Snapshot: snap}
	if len(evs) > 0 {
		f.Events = make([]EventView, len(evs))
		for i, ev := range evs {
			f.Events[i] = EventView{Type: ev.Type.String(), Frame: ev.Frame}
		}
	}
	return f
}

// Encode serializes the frame as msgpack
func (f *Frame) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", f.Seq, err)
	}
	return data, nil
}

// DecodeFrame parses a msgpack frame
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return &f, nil
}
