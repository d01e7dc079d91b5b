package semantic

// WordList is an ordered vocabulary; order matters wherever the first match wins.
type WordList []string

// PhrasePool holds interchangeable reply fragments picked at random.
type PhrasePool []string

// PrefixSets groups the substring triggers for each routable intent.
type PrefixSets struct {
	Story        WordList
	How          WordList
	Self         WordList
	Encyclopedia WordList
	Website      WordList
}

// Lexicon keeps the read-only lexical resources shared by every turn.
type Lexicon struct {
	FillerWords   WordList
	TLDs          WordList
	PositiveWords WordList
	NegativeWords WordList
	Prefixes      PrefixSets

	// OpeningForms is indexed by the "are" flag when a how-question is
	// addressed to the agent.
	OpeningForms     PhrasePool
	Sentiments       PhrasePool
	QuestionSuffixes PhrasePool
}

// Analyzer runs the lexical passes of a turn against a Lexicon.
type Analyzer struct {
	Lexicon Lexicon
}
