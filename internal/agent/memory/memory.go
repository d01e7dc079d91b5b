// Package memory keeps the turns of the current session in process.
package memory

import (
	"time"

	"github.com/bgdnvk/parley/internal/agent/model"
)

type SessionMemory struct {
	SessionID    string
	Turns        []model.TurnRecord
	IntentCounts map[model.Intent]int
	LastUpdated  time.Time
	MaxTurns     int
}

func New(sessionID string, maxTurns int) *SessionMemory {
	return &SessionMemory{
		SessionID:    sessionID,
		Turns:        make([]model.TurnRecord, 0, maxTurns),
		IntentCounts: make(map[model.Intent]int),
		LastUpdated:  time.Now(),
		MaxTurns:     maxTurns,
	}
}

// NextTurn returns the 1-based number the next handled turn will get.
func (sm *SessionMemory) NextTurn() int {
	if len(sm.Turns) == 0 {
		return 1
	}
	return sm.Turns[len(sm.Turns)-1].Turn + 1
}

// AddTurn records rec. Intent counts cover the whole session even after old
// turns are dropped from the window.
func (sm *SessionMemory) AddTurn(rec model.TurnRecord) {
	sm.Turns = append(sm.Turns, rec)
	if sm.MaxTurns > 0 && len(sm.Turns) > sm.MaxTurns {
		sm.Turns = sm.Turns[1:]
	}
	for _, intent := range rec.Intents {
		sm.IntentCounts[intent]++
	}
	sm.LastUpdated = time.Now()
}

// Last returns up to limit of the most recent turns, oldest first.
func (sm *SessionMemory) Last(limit int) []model.TurnRecord {
	if limit <= 0 || limit > len(sm.Turns) {
		limit = len(sm.Turns)
	}
	return sm.Turns[len(sm.Turns)-limit:]
}
