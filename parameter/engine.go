package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the real-time driver tick that advances the round scheduler
	GameUpdateInterval = 10 * time.Millisecond

	// FrameUpdateInterval is the radar redraw interval
	FrameUpdateInterval = 50 * time.Millisecond

	// MotionTickInterval is the encounter update loop cadence
	MotionTickInterval = 30 * time.Millisecond

	// HazardCheckInterval is the cadence of auxiliary spawner eligibility checks
	HazardCheckInterval = time.Second

	// RhythmTickInterval is the beat tracker cadence
	RhythmTickInterval = 50 * time.Millisecond

	// CountdownTickInterval is the round timer resolution
	CountdownTickInterval = 100 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Radar View
const (
	// RadarRange is the world distance from the player to the radar edge
	RadarRange = 16.0

	// RadarHUDRows is the number of status rows above the radar field
	RadarHUDRows = 2

	// BossBarWidth is the cell width of the boss health bar
	BossBarWidth = 20
)
