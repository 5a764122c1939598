package components

// MotionKind selects which rule governs an entity's vertical motion this frame
type MotionKind uint8

const (
	Grounded MotionKind = iota // Subject to gravity, currently supported
	Falling                    // Subject to gravity, unsupported
	Climbing                   // On a ladder, no gravity
	OnRope                     // Hanging from a rope, no gravity
	Trapped                    // Held in a dug hole until TrapTimer runs out
)

var motionNames = [...]string{
	Grounded: "Grounded",
	Falling:  "Falling",
	Climbing: "Climbing",
	OnRope:   "OnRope",
	Trapped:  "Trapped",
}

func (k MotionKind) String() string {
	if int(k) < len(motionNames) {
		return motionNames[k]
	}
	return "Unknown"
}

// Motion is the exclusive movement mode of an entity.
// TrapTimer is meaningful only when Kind is Trapped.
type Motion struct {
	Kind      MotionKind
	TrapTimer float64 // Seconds until the trap resolves
}

// Is reports whether the motion is of the given kind
func (m Motion) Is(k MotionKind) bool {
	return m.Kind == k
}

// Gravity reports whether gravity applies in this mode
func (m Motion) Gravity() bool {
	return m.Kind == Grounded || m.Kind == Falling
}

// Traversing reports whether the entity is moving along a ladder or rope
func (m Motion) Traversing() bool {
	return m.Kind == Climbing || m.Kind == OnRope
}

// TrappedFor returns a Trapped motion with the given countdown
func TrappedFor(seconds float64) Motion {
	return Motion{Kind: Trapped, TrapTimer: seconds}
}
