package parameter

// Placement around the player, meters and radians
const (
	// SpawnMinDistance is the nearest default spawn radius
	SpawnMinDistance = 4.0

	// SpawnMaxDistance is the farthest default spawn radius
	SpawnMaxDistance = 14.0

	// ArenaHalfExtent clamps spawn X/Z
	ArenaHalfExtent = 13.0

	// FrontArcChance selects the front arc
	FrontArcChance = 0.60

	// SideArcChance selects the side arc, cumulative with FrontArcChance
	SideArcChance = 0.25

	// FrontArcHalfAngle bounds the front arc (70 degrees)
	FrontArcHalfAngle = 70 * degree

	// SideArcMaxAngle bounds the side arc (110 degrees)
	SideArcMaxAngle = 110 * degree

	// PeripheralMinAngle is the nearest peripheral angle off forward (90 degrees)
	PeripheralMinAngle = 90 * degree

	// PeripheralMaxAngle is the farthest peripheral angle off forward (150 degrees)
	PeripheralMaxAngle = 150 * degree

	// PeripheralMaxDistance keeps peripheral targets close
	PeripheralMaxDistance = 8.0

	// MeleeMinDistance is the nearest melee spawn in front of the head
	MeleeMinDistance = 1.0

	// MeleeMaxDistance is the farthest melee spawn in front of the head
	MeleeMaxDistance = 1.5

	// MeleeSpread is the melee lateral angle half-range
	MeleeSpread = 0.4

	// MeleeHeightJitter is the melee vertical offset half-range from head height
	MeleeHeightJitter = 0.2

	// MeleeChance converts a standard pick into a melee target
	MeleeChance = 0.15

	degree = 3.141592653589793 / 180
)

// Height zones
const (
	// FloorZoneChance selects the floor band
	FloorZoneChance = 0.20

	// OverheadZoneChance selects the overhead band, cumulative with FloorZoneChance
	OverheadZoneChance = 0.15

	FloorMinY    = 0.5
	FloorMaxY    = 1.0
	OverheadMinY = 4.0
	OverheadMaxY = 6.0
	NormalMinY   = 1.2
	NormalMaxY   = 3.5
)

// Movement pattern unlock waves and weights
const (
	ZigzagUnlockWave   = 3
	OrbitUnlockWave    = 5
	DiveUnlockWave     = 8
	TeleportUnlockWave = 10

	FloatWeight    = 40
	ZigzagWeight   = 25
	OrbitWeight    = 15
	DiveWeight     = 10
	TeleportWeight = 10
)

// Movement pattern shapes
const (
	ZigzagAmplitude  = 1.5
	ZigzagFrequency  = 1.2 // Hz
	OrbitRadius      = 1.2
	OrbitAngularRate = 1.5 // rad/s
	DiveDepth        = 3.0
	DivePeriodSec    = 3.0
	TeleportEvery    = 1500 // ms
	TeleportRange    = 3.0
	FloatAmplitude   = 0.15
	FloatFrequency   = 0.5 // Hz

	// SpeedRateScale is the pattern rate gained per m/s of kind speed
	SpeedRateScale = 0.2
)

// Wave event formations
const (
	SwarmCount       = 5
	SniperCount      = 3
	BonusRainCount   = 4
	ShieldWallCount  = 4
	ShieldWallDist   = 6.0
	ShieldWallStride = 1.5
	SwarmDistance    = 7.0
	SwarmArc         = 60 * degree
	SniperMinDist    = 13.0
	SniperMaxDist    = 14.0
)
