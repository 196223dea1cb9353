package event

import "time"

// EventType represents the type of outbound engine notification
type EventType int

const (
	// === Round ===

	// EventRoundStart signals a round began
	// Trigger: Session.Start | Payload: *RoundPayload
	EventRoundStart EventType = iota + 1

	// EventRoundEnd signals a round stopped and its report is final
	// Trigger: Session.Stop, countdown, lives exhausted | Payload: *RoundPayload
	EventRoundEnd

	// EventScoreChange reports a score mutation
	// Trigger: score.Tracker subscribers | Payload: *ScorePayload
	EventScoreChange

	// EventLifeLost reports a lost life in lives modes
	// Trigger: Combat on target expiry or player damage | Payload: *LivesPayload
	EventLifeLost

	// === Lifecycle ===

	// EventTelegraph announces where an entity will appear
	// Trigger: Spawner before registration | Payload: *SpawnPayload
	EventTelegraph

	// EventSpawn reports an entity became live
	// Trigger: Registry.Register | Payload: *SpawnPayload
	EventSpawn

	// EventDespawn detaches visuals and sounds paired with an entity
	// Trigger: Registry.Resolve on every cause | Payload: *DespawnPayload
	EventDespawn

	// === Hits ===

	// EventHit reports a successful kill with the awarded points
	// Trigger: Combat | Payload: *HitPayload
	EventHit

	// EventDamaged reports a hit that did not deplete HP
	// Trigger: Combat | Payload: *HitPayload
	EventDamaged

	// EventMiss reports a penalty hit or an expired target
	// Trigger: Combat | Payload: *MissPayload
	EventMiss

	// EventCombo reports the combo after a successful hit (combo >= 2) or a reset to zero
	// Trigger: Combat | Payload: *ComboPayload
	EventCombo

	// EventComboMilestone reports reaching a milestone combo
	// Trigger: Combat | Payload: *ComboPayload
	EventComboMilestone

	// EventSlowMotion requests a short slow motion effect
	// Trigger: Combat at high combo | Payload: *SlowMotionPayload
	EventSlowMotion

	// === Boss ===

	// EventBossSpawn reports a new tracked boss
	// Trigger: Spawner in boss mode | Payload: *BossPayload
	EventBossSpawn

	// EventBossDamaged reports damage on the tracked boss
	// Trigger: Combat | Payload: *BossPayload
	EventBossDamaged

	// EventBossKilled reports the tracked boss died
	// Trigger: Combat | Payload: *BossPayload
	EventBossKilled

	// EventBossWaveClear reports a completed boss wave and the spawn pause
	// Trigger: Combat | Payload: *BossPayload
	EventBossWaveClear

	// === Power-ups ===

	// EventPowerUpActivate reports a power-up became active or was refreshed
	// Trigger: weapon.PowerUps | Payload: *PowerUpPayload
	EventPowerUpActivate

	// EventPowerUpDeactivate reports a power-up ended
	// Trigger: weapon.PowerUps | Payload: *PowerUpPayload
	EventPowerUpDeactivate

	// === Hazards ===

	// EventDodge reports an avoided hazard and its reward
	// Trigger: Motion | Payload: *DodgePayload
	EventDodge

	// EventBlock reports a shield block and its reward
	// Trigger: Motion | Payload: *DodgePayload
	EventBlock

	// EventPlayerDamage reports hazard contact
	// Trigger: Combat | Payload: *DamagePayload
	EventPlayerDamage

	// === Pacing ===

	// EventWaveEvent announces a themed burst spawn
	// Trigger: Spawner on qualifying waves | Payload: *WaveEventPayload
	EventWaveEvent

	// EventRhythmChange reports rhythm mode toggling or a tempo change
	// Trigger: Combat | Payload: *BeatPayload
	EventRhythmChange

	// EventRhythmBeat reports a beat boundary while rhythm mode is active
	// Trigger: Rhythm tracker | Payload: *BeatPayload
	EventRhythmBeat

	// EventColorChange reports the active color for color-match targets
	// Trigger: color cycle timer | Payload: *ColorPayload
	EventColorChange

	eventTypeCount
)

// GameEvent is a queued notification stamped with scheduler time
type GameEvent struct {
	Type    EventType
	Payload any
	Time    time.Time
}
