package semantic

import "slices"

var (
	defaultFillerWords = WordList{"search", "for", "that", "this", "and", "small", "short", "long", "big"}

	defaultPositiveWords = WordList{"great", "good", "fantastic"}
	defaultNegativeWords = WordList{"bad", "terrible", "horrible"}

	defaultPrefixes = PrefixSets{
		Story:        WordList{"rewrite", "write", "make me a story", "story"},
		How:          WordList{"how", "what are"},
		Self:         WordList{"i am", "im", "i have", " i "},
		Encyclopedia: WordList{"what", "who", "what is"},
		Website:      WordList{"search"},
	}

	// Index 2 ("i am") is never selected; the pool is kept whole so the
	// "are" flag indexes it the same way the replies always have.
	defaultOpeningForms = PhrasePool{"my", "im", "i am"}

	defaultSentiments = PhrasePool{" good", " bad"}

	defaultQuestionSuffixes = PhrasePool{
		". Can I help you with something?",
		". Can I help you with anything else?",
		" Is there anything else I can help you with?",
	}

	// Duplicates are intentional; the list is scanned in order and the first
	// hit wins, so repeats never change the outcome.
	defaultTLDs = WordList{
		".com", ".org", ".net", ".int", ".edu", ".gov", ".mil",
		".dk", ".de", ".fr", ".uk", ".us", ".ca", ".au", ".nz", ".cn", ".jp", ".ru", ".br",
		".za", ".es", ".it", ".nl", ".se", ".no", ".fi", ".pl", ".ch", ".be", ".at", ".gr",
		".pt", ".mx", ".ar", ".in", ".id", ".sg", ".hk", ".tw", ".kr", ".vn", ".th", ".my",
		".ae", ".sa", ".eg", ".tr", ".ir", ".pk", ".bd", ".ph", ".ng", ".ke", ".gh", ".cl",
		".co", ".ve", ".pe", ".cz", ".hu", ".ro", ".sk", ".bg", ".lt", ".lv", ".ee", ".is",
		".ua", ".by", ".rs", ".me", ".ba", ".mk", ".si", ".hr", ".mt", ".cy", ".lu", ".li",
		".qa", ".om", ".kw", ".bh", ".lb", ".jo", ".sy", ".iq", ".ye", ".af", ".np", ".bt",
		".mv", ".lk", ".mm", ".la", ".kh", ".bn", ".tl", ".uz", ".kz", ".tm", ".kg", ".tj",
		".mn", ".mo", ".ps", ".zw", ".mu", ".sc", ".dj", ".er", ".mz", ".bw", ".na", ".zm",
		".rw", ".bi", ".so", ".gm", ".sn", ".ml", ".gn", ".bf", ".tg", ".ne", ".mr", ".ci",
		".cm", ".cf", ".td", ".ga", ".cg", ".cd", ".ao", ".gq", ".st", ".cv", ".km", ".mg",
		".pn", ".tf", ".gp", ".mq", ".re", ".yt", ".pm", ".wf", ".nc", ".pf", ".sx", ".bq",
		".gl", ".fo", ".ax", ".gg", ".je", ".im", ".gi", ".sh", ".io", ".as", ".nu", ".tv",
		".ws", ".to", ".fm", ".pw", ".cc", ".tk", ".cx", ".nf", ".hm", ".gs", ".sb", ".vu",
		".nr", ".ki", ".ck", ".wf", ".mh", ".pf", ".mp", ".gu", ".vi", ".pr", ".dm", ".ag",
		".lc", ".vc", ".bb", ".tt", ".gd", ".kn", ".ai", ".ms", ".bm", ".bz", ".gy", ".sr",
		".aw", ".cw", ".sx", ".bq", ".tf", ".fk", ".gs", ".sh", ".io", ".ac", ".bv", ".hm",
	}
)

// DefaultLexicon returns a private copy of the built-in vocabulary tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		FillerWords:   slices.Clone(defaultFillerWords),
		TLDs:          slices.Clone(defaultTLDs),
		PositiveWords: slices.Clone(defaultPositiveWords),
		NegativeWords: slices.Clone(defaultNegativeWords),
		Prefixes: PrefixSets{
			Story:        slices.Clone(defaultPrefixes.Story),
			How:          slices.Clone(defaultPrefixes.How),
			Self:         slices.Clone(defaultPrefixes.Self),
			Encyclopedia: slices.Clone(defaultPrefixes.Encyclopedia),
			Website:      slices.Clone(defaultPrefixes.Website),
		},
		OpeningForms:     slices.Clone(defaultOpeningForms),
		Sentiments:       slices.Clone(defaultSentiments),
		QuestionSuffixes: slices.Clone(defaultQuestionSuffixes),
	}
}
