package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	sa := NewAnalyzer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "strips fillers", in: " Search example.com for cats", want: "  example.com  cats"},
		{name: "substring removal inside words", in: "information", want: "inmation"},
		{name: "and inside a word", in: " candy brand", want: " cy br"},
		{name: "no fillers", in: " hello there", want: " hello there"},
		{name: "size hints are fillers too", in: "a small big long short story", want: "a     story"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sa.Normalize(tt.in))
		})
	}
}

func TestExtractDomain(t *testing.T) {
	sa := NewAnalyzer()

	tests := []struct {
		name      string
		tokens    []string
		want      string
		wantFound bool
	}{
		{name: "plain domain", tokens: []string{"visit", "example.com", "now"}, want: "example.com", wantFound: true},
		{name: "punctuation stripped", tokens: []string{"open", "(example.org)!"}, want: "example.org", wantFound: true},
		{name: "first matching token wins", tokens: []string{"bbc.co.uk", "example.com"}, want: "bbc.co.uk", wantFound: true},
		{name: "substring match is kept", tokens: []string{"scoring.community"}, want: "scoring.community", wantFound: true},
		{name: "no dot no match", tokens: []string{"vacation", "plans"}, wantFound: false},
		{name: "empty", tokens: nil, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := sa.ExtractDomain(tt.tokens)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractQuery(t *testing.T) {
	sa := NewAnalyzer()

	tests := []struct {
		name      string
		utterance string
		domain    string
		want      string
	}{
		{name: "domain and fillers removed", utterance: " search example.com for cats", domain: "example.com", want: "cats"},
		{name: "find pattern wins", utterance: " find the best recipe", domain: "", want: "the best recipe"},
		{name: "find pattern ignores domain", utterance: " search amazon.com find usb cables", domain: "amazon.com", want: "usb cables"},
		{name: "find is case insensitive", utterance: " FIND Red Shoes", domain: "", want: "Red Shoes"},
		{name: "only the domain left", utterance: " search example.com", domain: "example.com", want: ""},
		{name: "nothing left", utterance: " search for this", domain: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sa.ExtractQuery(tt.utterance, sa.Normalize(tt.utterance), tt.domain)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract(t *testing.T) {
	sa := NewAnalyzer()

	got, err := sa.Extract(" search youtube.com for cat videos")
	require.NoError(t, err)
	assert.True(t, got.Found)
	assert.Equal(t, "youtube.com", got.Domain)
	assert.Equal(t, "cat videos", got.Query)

	_, err = sa.Extract(" search the web for cats")
	require.ErrorIs(t, err, ErrNoDomainFound)
}

func TestTally(t *testing.T) {
	sa := NewAnalyzer()

	tests := []struct {
		name         string
		text         string
		wantPos      int
		wantNeg      int
		wantPositive bool
	}{
		{name: "two positives", text: " i am great and fantastic", wantPos: 2, wantNeg: 0, wantPositive: true},
		{name: "negatives win", text: " i feel terrible and horrible but good", wantPos: 1, wantNeg: 2, wantPositive: false},
		{name: "tie resolves positive", text: " good bad", wantPos: 1, wantNeg: 1, wantPositive: true},
		{name: "no hits is positive", text: " i have a cat", wantPos: 0, wantNeg: 0, wantPositive: true},
		{name: "negation ignored", text: " im not good", wantPos: 1, wantNeg: 0, wantPositive: true},
		{name: "exact tokens only", text: " goodness badly", wantPos: 0, wantNeg: 0, wantPositive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sa.Tally(tt.text)
			assert.Equal(t, tt.wantPos, got.Positive)
			assert.Equal(t, tt.wantNeg, got.Negative)
			assert.Equal(t, tt.wantPositive, got.IsPositive())
		})
	}
}

func TestMatchesAny(t *testing.T) {
	prefixes := DefaultLexicon().Prefixes

	assert.True(t, MatchesAny(" i like dogs", prefixes.Self), "leading space anchors ' i '")
	assert.False(t, MatchesAny("i like dogs", prefixes.Self))
	assert.True(t, MatchesAny(" somehow", prefixes.How), "prefix sets are substring tests")
	assert.False(t, MatchesAny(" hello", prefixes.Encyclopedia))
}

func TestDefaultLexiconIsACopy(t *testing.T) {
	a := DefaultLexicon()
	a.FillerWords[0] = "changed"

	b := DefaultLexicon()
	assert.Equal(t, "search", b.FillerWords[0])
}
