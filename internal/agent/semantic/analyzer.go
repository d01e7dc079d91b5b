// Package semantic provides the lexical passes applied to user utterances:
// filler-word normalization, website domain/query extraction and sentiment
// tallying. None of it is real NLP; every rule is a plain substring or token
// test against the tables in lexicon.go.
package semantic

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"github.com/bgdnvk/parley/internal/agent/model"
)

// ErrNoDomainFound is returned when no token of an utterance carries a known TLD.
var ErrNoDomainFound = errors.New("no website domain found")

var (
	nonDomainChars   = regexp.MustCompile(`[^\p{L}\p{N}_.]`)
	findQueryPattern = regexp.MustCompile(`(?i)find\s+(.+)`)
)

func NewAnalyzer() *Analyzer {
	return &Analyzer{Lexicon: DefaultLexicon()}
}

// NewAnalyzerWithLexicon is used by tests and callers that tweak the tables.
func NewAnalyzerWithLexicon(lex Lexicon) *Analyzer {
	return &Analyzer{Lexicon: lex}
}

// Normalize lower-cases text and strips every filler word by literal
// substring removal. It is not word-boundary aware: "information" loses its
// "for" just like a standalone "for" does.
func (sa *Analyzer) Normalize(text string) string {
	out := strings.ToLower(text)
	for _, word := range sa.Lexicon.FillerWords {
		out = strings.ReplaceAll(out, word, "")
	}
	return out
}

// ExtractDomain returns the first token that contains a known TLD once
// everything but letters, digits, underscores and dots is stripped. The check
// is substring containment, so "scoring.community" matches ".com".
func (sa *Analyzer) ExtractDomain(tokens []string) (string, bool) {
	for _, token := range tokens {
		clean := nonDomainChars.ReplaceAllString(token, "")
		for _, tld := range sa.Lexicon.TLDs {
			if strings.Contains(clean, tld) {
				return clean, true
			}
		}
	}
	return "", false
}

// ExtractQuery derives the search path for a website command. A "find <rest>"
// phrase in the utterance wins outright; otherwise the normalized tokens that
// do not contain the domain are joined back together. A query that is empty or
// just the domain again comes back as "".
func (sa *Analyzer) ExtractQuery(utterance, normalized, domain string) string {
	var query string
	if m := findQueryPattern.FindStringSubmatch(utterance); m != nil {
		query = m[1]
	} else {
		words := strings.Fields(normalized)
		kept := make([]string, 0, len(words))
		for _, w := range words {
			if domain != "" && strings.Contains(w, domain) {
				continue
			}
			kept = append(kept, w)
		}
		query = strings.Join(kept, " ")
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" || trimmed == domain {
		return ""
	}
	return query
}

// Extract runs domain and query extraction over a whole utterance.
func (sa *Analyzer) Extract(utterance string) (model.DomainExtraction, error) {
	domain, found := sa.ExtractDomain(strings.Fields(utterance))
	result := model.DomainExtraction{
		Domain: domain,
		Found:  found,
		Query:  sa.ExtractQuery(utterance, sa.Normalize(utterance), domain),
	}
	if !found {
		return result, ErrNoDomainFound
	}
	return result, nil
}

// Tally counts exact-token hits against the positive and negative
// vocabularies. There is no negation handling; "not good" is positive.
func (sa *Analyzer) Tally(text string) model.SentimentTally {
	var tally model.SentimentTally
	for _, word := range strings.Fields(text) {
		switch {
		case slices.Contains(sa.Lexicon.PositiveWords, word):
			tally.Positive++
		case slices.Contains(sa.Lexicon.NegativeWords, word):
			tally.Negative++
		}
	}
	return tally
}

// MatchesAny reports whether any entry of list occurs in text as a substring.
func MatchesAny(text string, list WordList) bool {
	for _, entry := range list {
		if strings.Contains(text, entry) {
			return true
		}
	}
	return false
}
