package constants

// World Geometry
const (
	// TileSize is the side length of one grid cell in world units
	TileSize = 40.0

	// EntityWidthFrac and EntityHeightFrac size the entity collision box relative to TileSize
	EntityWidthFrac  = 0.8
	EntityHeightFrac = 0.95

	// EntityWidth and EntityHeight are the collision box dimensions
	EntityWidth  = TileSize * EntityWidthFrac
	EntityHeight = TileSize * EntityHeightFrac

	// SpawnInsetFrac offsets spawn X from the cell's left edge
	SpawnInsetFrac = 0.1

	// SampleInsetFrac insets leading-edge probes from the box corners
	SampleInsetFrac = 0.1

	// FallOffMarginFrac is how far below y=0, in tiles, an entity may drop before it is reset
	FallOffMarginFrac = 1.0
)

// Movement (world units per second)
const (
	PlayerSpeed = 150.0
	EnemySpeed  = 120.0
	ClimbSpeed  = 150.0
	RopeSpeed   = 150.0

	// Gravity is the downward acceleration in world units per second squared
	Gravity = 500.0
)

// Gameplay Rules
const (
	MaxEnemies   = 3
	InitialLives = 3

	// HoleRefillSeconds is how long a dug hole stays open
	HoleRefillSeconds = 7.0

	// EnemyRespawnSeconds is the delay between an enemy's death and its return
	EnemyRespawnSeconds = 3.0

	// PointsPerCollectible is the score reward per gold pickup
	PointsPerCollectible = 100

	// CollectibleInsetFrac insets the collectible's pickup box from its cell edges
	CollectibleInsetFrac = 0.2

	// TrapEpsilon makes a trapped entity's timer expire just before its hole
	TrapEpsilon = 0.1

	// TrapRearmSeconds is the minimal countdown used when a trapped timer lapses before its hole
	TrapRearmSeconds = 0.01

	// RefillFreeNudge lifts a freed player out of the restored brick
	RefillFreeNudge = 5.0

	// HeadStandTolerance is the vertical slack for standing on a trapped entity's head
	HeadStandTolerance = 5.0

	// RopeGripFrac bounds how far feet may sit from a rope row and still hang from it
	RopeGripFrac = 0.3

	// ExitRows is how many rows at the top of the grid count as the exit zone
	ExitRows = 2
)

// Enemy AI Thresholds (fractions of TileSize)
const (
	AIVerticalGapFrac   = 0.75
	AIRopeReachFrac     = 1.5
	AIDeadZoneFrac      = 0.2
	AILadderLevelFrac   = 0.6
	AILookAheadFrac     = 0.6
	AIRopeNudgeRate     = 0.1
	AIRopeNudgeMinDelta = 1.0
)
