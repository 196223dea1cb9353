package parameter

import "time"

// Projectiles
const (
	ProjectileCap          = 3
	ProjectileMinGap       = 4 * time.Second
	ProjectileChargeTime   = 800 * time.Millisecond
	ProjectileSpeed        = 3.0 // m/s
	ProjectileHitRadius    = 0.4
	ProjectileShieldRadius = 0.6
	ProjectileTimeout      = 4 * time.Second
	ProjectileRadius       = 0.12
	ProjectilePoints       = 10
)

// Chargers
const (
	ChargerCap           = 2
	ChargerInterval      = 18 * time.Second
	ChargerBossInterval  = 12 * time.Second
	ChargerTelegraph     = time.Second
	ChargerSpeed         = 4.0 // m/s
	ChargerContactRadius = 1.0
	ChargerTimeout       = 8 * time.Second
	ChargerPoints        = 15
	ChargerRadius        = 0.5
	ChargerMinDist       = 12.0
	ChargerMaxDist       = 14.0
	ChargerSpread        = 72 * degree
	ChargerHeight        = 0.5
)

// Danger zones
const (
	DangerZoneCap          = 2
	DangerZoneInterval     = 25 * time.Second
	DangerZoneBossInterval = 18 * time.Second
	DangerZoneTelegraph    = 2 * time.Second
	DangerZoneActive       = 9 * time.Second
	DangerZoneTick         = 500 * time.Millisecond
	DangerZoneCooldown     = time.Second
	DangerZoneMinRadius    = 3.0
	DangerZoneMaxRadius    = 5.0
	DangerZoneExtent       = 10.0
)

// Scare balls
const (
	ScareBallCap          = 2
	ScareBallGrace        = 10 * time.Second
	ScareBallMinInterval  = 15 * time.Second
	ScareBallMaxInterval  = 25 * time.Second
	ScareBallHotMin       = 12 * time.Second
	ScareBallHotMax       = 18 * time.Second
	ScareBallHotCombo     = 15
	ScareBallTelegraph    = 300 * time.Millisecond
	ScareBallMinSpeed     = 8.0
	ScareBallMaxSpeed     = 10.0
	ScareBallMinRadius    = 0.15
	ScareBallMaxRadius    = 0.25
	ScareBallHitRadius    = 0.3
	ScareBallNearMiss     = 0.5
	ScareBallTimeout      = 2 * time.Second
	ScareBallMaxTravel    = 20.0
	ScareBallEdge         = 14.0
	ScareBallFaceOffset   = 0.1
	DodgeMoveThreshold    = 0.5
	ProjectilePassHorizon = 1.0
)

// Laser sweeps
const (
	LaserCap           = 1
	LaserGrace         = 15 * time.Second
	LaserBaseInterval  = 25 * time.Second
	LaserBossInterval  = 18 * time.Second
	LaserWaveStep      = 250 * time.Millisecond
	LaserWaveCap       = 20
	LaserTelegraph     = 2 * time.Second
	LaserMinDuration   = 2500 * time.Millisecond
	LaserMaxDuration   = 3 * time.Second
	LaserLinger        = 200 * time.Millisecond
	LaserStartX        = -15.0
	LaserEndX          = 15.0
	LaserCheckWindow   = 1.5
	LaserHeadMinY      = 1.4
	LaserHeadMaxY      = 1.7
	LaserBodyMinY      = 0.8
	LaserBodyMaxY      = 1.1
	LaserDuckClearance = 0.3
	LaserHitBand       = 0.3
	LaserLeanDodge     = 0.4
	LaserLeanHit       = 0.3
)

// Multiplier zones
const (
	MultiplierZoneCap        = 1
	MultiplierZoneUnlockWave = 6
	MultiplierZoneInterval   = 20 * time.Second
	MultiplierZoneTelegraph  = 500 * time.Millisecond
	MultiplierZoneLifetime   = 8 * time.Second
	MultiplierZoneRadius     = 2.5
	MultiplierZoneFactor     = 2.0
	MultiplierZoneExtent     = 8.0
)

// Blink targets and color match
const (
	BlinkVisible      = 800 * time.Millisecond
	BlinkHidden       = 600 * time.Millisecond
	ColorCycleEvery   = 6 * time.Second
	MeleePunchSpeed   = 2.0 // m/s
	MeleePunchRadius  = 0.5
	MeleeTargetPoints = 20
	MeleeLifetime     = 4 * time.Second
)
