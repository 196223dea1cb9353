package event

var typeNames = map[EventType]string{
	EventRoundStart:        "round_start",
	EventRoundEnd:          "round_end",
	EventScoreChange:       "score_change",
	EventLifeLost:          "life_lost",
	EventTelegraph:         "telegraph",
	EventSpawn:             "spawn",
	EventDespawn:           "despawn",
	EventHit:               "hit",
	EventDamaged:           "damaged",
	EventMiss:              "miss",
	EventCombo:             "combo",
	EventComboMilestone:    "combo_milestone",
	EventSlowMotion:        "slow_motion",
	EventBossSpawn:         "boss_spawn",
	EventBossDamaged:       "boss_damaged",
	EventBossKilled:        "boss_killed",
	EventBossWaveClear:     "boss_wave_clear",
	EventPowerUpActivate:   "powerup_activate",
	EventPowerUpDeactivate: "powerup_deactivate",
	EventDodge:             "dodge",
	EventBlock:             "block",
	EventPlayerDamage:      "player_damage",
	EventWaveEvent:         "wave_event",
	EventRhythmChange:      "rhythm_change",
	EventRhythmBeat:        "rhythm_beat",
	EventColorChange:       "color_change",
}

var nameTypes = func() map[string]EventType {
	m := make(map[string]EventType, len(typeNames))
	for t, n := range typeNames {
		m[n] = t
	}
	return m
}()

// String returns the snake_case name used in logs
func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// ParseEventType resolves a name produced by String
func ParseEventType(name string) (EventType, bool) {
	t, ok := nameTypes[name]
	return t, ok
}

// AllTypes returns every notification type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, 0, eventTypeCount-1)
	for t := EventRoundStart; t < eventTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
