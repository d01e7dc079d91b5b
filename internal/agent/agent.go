// Package agent runs one conversational turn: it routes the utterance,
// dispatches every matching handler and records what was printed.
package agent

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bgdnvk/parley/internal/agent/compose"
	dt "github.com/bgdnvk/parley/internal/agent/decisiontree"
	"github.com/bgdnvk/parley/internal/agent/memory"
	"github.com/bgdnvk/parley/internal/agent/model"
	"github.com/bgdnvk/parley/internal/agent/semantic"
	"github.com/bgdnvk/parley/internal/browser"
	"github.com/bgdnvk/parley/internal/story"
	"github.com/bgdnvk/parley/internal/wiki"
)

// Encyclopedia answers lookup questions. *wiki.Client satisfies it.
type Encyclopedia interface {
	Search(ctx context.Context, term string) (string, bool, error)
	Summary(ctx context.Context, title string, maxChars int) string
}

// LineReader supplies follow-up input, such as the story mode line.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Recorder persists handled turns. *transcript.Store satisfies it.
type Recorder interface {
	Append(ctx context.Context, rec model.TurnRecord) error
}

const (
	StoryPrompt = "User (story mode): "

	defaultMemoryTurns = 50
)

// Options wires the agent's collaborators. Encyclopedia, Launcher and Input
// are required; everything else has a default.
type Options struct {
	Encyclopedia  Encyclopedia
	Launcher      browser.Launcher
	Input         LineReader
	Output        io.Writer
	Recorder      Recorder
	Picker        compose.Picker
	Lexicon       *semantic.Lexicon
	TemplatePath  string
	SummaryLength int
	SessionID     string
	Logger        *zap.Logger
}

// Agent holds only process-wide, read-only state plus the session memory.
// Everything derived from an utterance lives in a Turn.
type Agent struct {
	analyzer      *semantic.Analyzer
	tree          *dt.Tree
	composer      *compose.Composer
	wiki          Encyclopedia
	launcher      browser.Launcher
	input         LineReader
	out           io.Writer
	recorder      Recorder
	memory        *memory.SessionMemory
	templatePath  string
	summaryLength int
	logger        *zap.Logger
}

// New creates an agent from opts.
func New(opts Options) *Agent {
	analyzer := semantic.NewAnalyzer()
	if opts.Lexicon != nil {
		analyzer = semantic.NewAnalyzerWithLexicon(*opts.Lexicon)
	}
	if opts.Picker == nil {
		opts.Picker = compose.NewPicker(0)
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.TemplatePath == "" {
		opts.TemplatePath = story.DefaultTemplatePath
	}
	if opts.SummaryLength <= 0 {
		opts.SummaryLength = wiki.DefaultSummaryLength
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Agent{
		analyzer:      analyzer,
		tree:          dt.New(analyzer.Lexicon.Prefixes),
		composer:      compose.New(analyzer, opts.Picker),
		wiki:          opts.Encyclopedia,
		launcher:      opts.Launcher,
		input:         opts.Input,
		out:           opts.Output,
		recorder:      opts.Recorder,
		memory:        memory.New(opts.SessionID, defaultMemoryTurns),
		templatePath:  opts.TemplatePath,
		summaryLength: opts.SummaryLength,
		logger:        opts.Logger.With(zap.String("session", opts.SessionID)),
	}
}

// SessionID identifies this agent's run in logs and the transcript.
func (a *Agent) SessionID() string {
	return a.memory.SessionID
}

// Memory exposes the in-process turn window.
func (a *Agent) Memory() *memory.SessionMemory {
	return a.memory
}

// Turn is the per-utterance record. A new one is allocated for every line so
// no flag or count can leak into the next turn.
type Turn struct {
	Number         int
	Utterance      model.Utterance
	HasAre         bool
	Route          dt.Route
	ChainOfThought []model.ChainOfThought

	output strings.Builder
}

// Output returns everything the turn printed.
func (t *Turn) Output() string {
	return t.output.String()
}

// Intents lists the intents the turn was routed to.
func (t *Turn) Intents() []model.Intent {
	return t.Route.Intents()
}

// HandleTurn classifies line and runs every matching handler to completion.
// Handler failures are reported to the user and never returned; the only
// error is an exhausted input while a handler is waiting for more.
func (a *Agent) HandleTurn(ctx context.Context, line string) (*Turn, error) {
	utterance := model.NewUtterance(line)
	turn := &Turn{
		Number:    a.memory.NextTurn(),
		Utterance: utterance,
		HasAre:    strings.Contains(utterance.String(), "are"),
	}
	turn.Route = a.tree.Traverse(utterance.String())
	a.addThought(turn, "routed utterance", "route", strings.Join(turn.Route.Path, " > "))

	var err error
	for _, intent := range turn.Intents() {
		switch intent {
		case model.IntentStory:
			err = a.handleStory(turn)
		case model.IntentHow:
			a.handleHowQuestion(turn)
		case model.IntentSelf:
			a.handleSelfDisclosure(turn)
		case model.IntentEncyclopedia:
			a.handleEncyclopedia(ctx, turn)
		case model.IntentWebsite:
			a.handleWebsite(turn)
		}
		if err != nil {
			break
		}
	}

	a.finishTurn(ctx, turn)
	return turn, err
}

func (a *Agent) finishTurn(ctx context.Context, turn *Turn) {
	rec := model.TurnRecord{
		SessionID: a.memory.SessionID,
		Turn:      turn.Number,
		Utterance: turn.Utterance.String(),
		Intents:   turn.Intents(),
		Output:    turn.Output(),
		CreatedAt: time.Now(),
	}
	a.memory.AddTurn(rec)

	a.logger.Debug("turn handled",
		zap.Int("turn", turn.Number),
		zap.Stringers("intents", turn.Intents()),
		zap.Bool("has_are", turn.HasAre),
	)
	a.logChainOfThought(turn)

	if a.recorder == nil {
		return
	}
	if err := a.recorder.Append(ctx, rec); err != nil {
		a.logger.Warn("failed to record turn", zap.Int("turn", turn.Number), zap.Error(err))
	}
}

// printf writes to the console and to the turn's output buffer.
func (a *Agent) printf(turn *Turn, format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	turn.output.WriteString(s)
	io.WriteString(a.out, s)
}
