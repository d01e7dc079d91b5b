// Package model defines shared data structures used across the agent system.
package model

import (
	"strings"
	"time"
)

// Intent names one of the handlers a turn can be dispatched to.
type Intent string

const (
	IntentStory        Intent = "story_request"
	IntentHow          Intent = "how_question"
	IntentSelf         Intent = "self_disclosure"
	IntentEncyclopedia Intent = "encyclopedia_lookup"
	IntentWebsite      Intent = "website_navigation"
	IntentNoMatch      Intent = "no_match"
)

func (i Intent) String() string { return string(i) }

// Utterance is the raw user line after input capture: lower-cased and
// prefixed with a single space so " i " style prefixes can anchor on the
// first word.
type Utterance string

// NewUtterance applies the input capture rules to a console line.
func NewUtterance(line string) Utterance {
	return Utterance(" " + strings.ToLower(line))
}

func (u Utterance) String() string { return string(u) }

// Words splits the utterance on whitespace.
func (u Utterance) Words() []string { return strings.Fields(string(u)) }

type DomainExtraction struct {
	Domain string `json:"domain"`
	Found  bool   `json:"found"`
	Query  string `json:"query"`
}

type SentimentTally struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// IsPositive reports the polarity; ties resolve positive.
func (s SentimentTally) IsPositive() bool { return s.Positive >= s.Negative }

type StoryRequest struct {
	Count     string   `json:"count"`
	TypeLabel string   `json:"type_label"`
	Names     []string `json:"names"`
}

type ChainOfThought struct {
	Step      int       `json:"step"`
	Thought   string    `json:"thought"`
	Action    string    `json:"action"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// TurnRecord is what the transcript keeps about a handled turn.
type TurnRecord struct {
	SessionID string    `json:"session_id"`
	Turn      int       `json:"turn"`
	Utterance string    `json:"utterance"`
	Intents   []Intent  `json:"intents"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}
