package parameter

import "time"

// Scoring
const (
	// BasePoints is the reference award a standard target carries
	BasePoints = 10

	// ComboCap bounds the combo factor in the point formula
	ComboCap = 5

	// ComboDecayWindow resets the combo when no hit lands within it
	ComboDecayWindow = 2 * time.Second

	// GhostPenalty is awarded for shooting a blink target in its hidden phase
	GhostPenalty = -5

	// ColorMismatchPenalty is awarded for shooting a target of the wrong color
	ColorMismatchPenalty = -5

	// ComboCueThreshold is the minimum combo that emits a combo cue
	ComboCueThreshold = 2

	// SlowMotionCombo triggers the slow motion cue
	SlowMotionCombo = 10

	// SlowMotionDuration is the slow motion cue length
	SlowMotionDuration = 300 * time.Millisecond
)

// ComboMilestones emit a dedicated cue when reached
var ComboMilestones = []int{5, 10, 15, 20, 25}

// Wave Scaling
const (
	// WaveScaleCeiling is the wave at which difficulty scaling saturates
	WaveScaleCeiling = 40

	// WaveExtraTargets is the extra concurrent targets allowed at the ceiling
	WaveExtraTargets = 4

	// WaveLifetimeReduction is the lifetime fraction removed at the ceiling
	WaveLifetimeReduction = 0.4

	// WaveIntervalReduction is the spawn interval fraction removed at the ceiling
	WaveIntervalReduction = 0.4

	// MinSpawnInterval floors the scaled spawn interval
	MinSpawnInterval = 400 * time.Millisecond

	// MinTargetLifetime floors the scaled target lifetime
	MinTargetLifetime = 600 * time.Millisecond
)

// Shooting
const (
	// ShotRange is the farthest a shot ray connects
	ShotRange = 40.0
)

// Mode Defaults
const (
	// DefaultSpawnInterval applies when a mode does not set one
	DefaultSpawnInterval = 1500 * time.Millisecond

	// DefaultMaxTargets applies when a mode does not set one
	DefaultMaxTargets = 8

	// DefaultTargetLifetime applies when a mode does not set one
	DefaultTargetLifetime = 5 * time.Second

	// TelegraphDelay is the anticipation cue before a target becomes hittable
	TelegraphDelay = 500 * time.Millisecond

	// InitialSpawnStagger separates the three opening spawns
	InitialSpawnStagger = 200 * time.Millisecond

	// InitialSpawnCount is the number of spawns issued at round start
	InitialSpawnCount = 3
)

// Boss Mode
const (
	// BossKillsPerWave is the number of boss kills that clears a boss wave
	BossKillsPerWave = 5

	// BossWavePause suspends spawning after a boss wave clear
	BossWavePause = 1500 * time.Millisecond

	// BossHPWaveDivisor adds one HP per this many waves
	BossHPWaveDivisor = 3

	// BossScalePerWave grows boss size per boss wave
	BossScalePerWave = 0.05

	// BossMaxScale caps boss size
	BossMaxScale = 2.0
)

// Reflex Mode
const (
	// ReflexLifetimeStep shortens the next reflex target per reflex hit
	ReflexLifetimeStep = 50 * time.Millisecond

	// ReflexMinLifetime floors the reflex target lifetime
	ReflexMinLifetime = 600 * time.Millisecond
)

// ReflexTier maps a reaction time ceiling to a multiplier
type ReflexTier struct {
	Under      time.Duration
	Multiplier float64
}

// ReflexTiers are checked in order, first match wins
var ReflexTiers = []ReflexTier{
	{Under: 200 * time.Millisecond, Multiplier: 3},
	{Under: 400 * time.Millisecond, Multiplier: 2},
	{Under: 600 * time.Millisecond, Multiplier: 1.5},
}

// Rhythm
const (
	// RhythmCombo activates beat tracking
	RhythmCombo = 10

	// RhythmFastCombo switches to the faster tempo
	RhythmFastCombo = 15

	// RhythmBPM is the base tempo
	RhythmBPM = 120

	// RhythmFastBPM is the tempo at RhythmFastCombo
	RhythmFastBPM = 140

	// RhythmPerfectError is the beat error bound for the perfect multiplier
	RhythmPerfectError = 0.1

	// RhythmGoodError is the beat error bound for the good multiplier
	RhythmGoodError = 0.25

	// RhythmPerfectMultiplier is awarded within RhythmPerfectError
	RhythmPerfectMultiplier = 3

	// RhythmGoodMultiplier is awarded within RhythmGoodError
	RhythmGoodMultiplier = 2
)

// Wave Events
const (
	// WaveEventEvery triggers a roll on waves divisible by it
	WaveEventEvery = 5

	// WaveEventMinWave is the wave a roll must exceed
	WaveEventMinWave = 4

	// WaveEventChance is the roll probability
	WaveEventChance = 0.4

	// WaveEventDelay separates the announcement from the burst
	WaveEventDelay = time.Second

	// SniperEventPoints is the award of a sniper event target
	SniperEventPoints = 40

	// SniperEventRadiusMul shrinks sniper event targets
	SniperEventRadiusMul = 0.6
)

// Player Damage
const (
	// DamagePenalty is subtracted on hazard contact in infinite-lives modes
	DamagePenalty = 20

	// ZoneDamagePenalty is subtracted per danger zone tick in infinite-lives modes
	ZoneDamagePenalty = 10

	// BlockReward is awarded for a shield block
	BlockReward = 5

	// ProjectileDodgeReward is awarded for dodging a projectile or laser
	ProjectileDodgeReward = 5

	// ScareDodgeReward is awarded for dodging a scare ball
	ScareDodgeReward = 3
)
