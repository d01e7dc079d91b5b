// Package compose builds the canned conversational replies for how-questions
// and self-disclosure statements.
package compose

import (
	"math/rand/v2"
	"strings"

	"github.com/bgdnvk/parley/internal/agent/model"
	"github.com/bgdnvk/parley/internal/agent/semantic"
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// NewPicker returns a PCG-backed picker. A zero seed draws the seed from the
// runtime source, so replies differ between runs.
func NewPicker(seed uint64) Picker {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

const (
	agentAddress      = "you"
	agentAddressStem  = "your"
	selfDisclosureAck = "U"
)

type Composer struct {
	analyzer *semantic.Analyzer
	pick     Picker
}

func New(analyzer *semantic.Analyzer, pick Picker) *Composer {
	return &Composer{analyzer: analyzer, pick: pick}
}

// HowReply carries the flags a how-question reply was built from, mostly for
// debug logging.
type HowReply struct {
	Text           string
	ToAgent        bool
	HasAre         bool
	AboutAgent     bool
	AdditionalText string
}

// HowQuestion composes the reply to a how-question. hasAre is the turn-wide
// grammatical number flag ("are" anywhere in the utterance). Once a word
// addresses the agent, every later word overwrites the trailing text, so only
// the last word of the utterance survives.
func (c *Composer) HowQuestion(text string, hasAre bool) HowReply {
	lex := c.analyzer.Lexicon
	reply := HowReply{HasAre: hasAre}

	var b strings.Builder
	if strings.Contains(text, agentAddress) {
		reply.ToAgent = true
		if hasAre {
			b.WriteString(lex.OpeningForms[1])
		} else {
			b.WriteString(lex.OpeningForms[0])
		}
	}

	for _, word := range strings.Fields(text) {
		if reply.AboutAgent {
			reply.AdditionalText = " " + word
			continue
		}
		if word == agentAddress || strings.Contains(word, agentAddressStem) {
			reply.AboutAgent = true
		}
	}

	b.WriteString(c.choose(lex.Sentiments))
	b.WriteString(reply.AdditionalText)
	b.WriteString(c.choose(lex.QuestionSuffixes))
	reply.Text = b.String()
	return reply
}

// SelfReply is the outcome of a self-disclosure turn. Ack is printed on its
// own line before Text.
type SelfReply struct {
	Ack   string
	Text  string
	Tally model.SentimentTally
}

// SelfDisclosure tallies the statement's sentiment and answers with an
// adjective drawn from the winning pool.
func (c *Composer) SelfDisclosure(text string) SelfReply {
	lex := c.analyzer.Lexicon
	tally := c.analyzer.Tally(text)

	pool := lex.NegativeWords
	if tally.IsPositive() {
		pool = lex.PositiveWords
	}

	return SelfReply{
		Ack:   selfDisclosureAck,
		Text:  "how " + c.choose(semantic.PhrasePool(pool)) + " to hear!" + c.choose(lex.QuestionSuffixes),
		Tally: tally,
	}
}

func (c *Composer) choose(pool semantic.PhrasePool) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[c.pick.IntN(len(pool))]
}
