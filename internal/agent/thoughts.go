package agent

import (
	"time"

	"go.uber.org/zap"

	"github.com/bgdnvk/parley/internal/agent/model"
)

// addThought adds a reasoning step to the turn's chain of thought and timestamps it.
func (a *Agent) addThought(turn *Turn, thought, action, outcome string) {
	turn.ChainOfThought = append(turn.ChainOfThought, model.ChainOfThought{
		Step:      len(turn.ChainOfThought) + 1,
		Thought:   thought,
		Action:    action,
		Outcome:   outcome,
		Timestamp: time.Now(),
	})
}

// logChainOfThought emits the turn's reasoning steps at debug level.
func (a *Agent) logChainOfThought(turn *Turn) {
	if len(turn.ChainOfThought) == 0 || !a.logger.Core().Enabled(zap.DebugLevel) {
		return
	}

	for _, step := range turn.ChainOfThought {
		a.logger.Debug("reasoning step",
			zap.Int("turn", turn.Number),
			zap.Int("step", step.Step),
			zap.String("action", step.Action),
			zap.String("thought", step.Thought),
			zap.String("outcome", step.Outcome),
		)
	}
}
