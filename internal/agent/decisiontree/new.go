package decisiontree

import (
	"github.com/bgdnvk/parley/internal/agent/model"
	"github.com/bgdnvk/parley/internal/agent/semantic"
)

// New constructs the default routing tree from the lexicon prefix sets. The
// story node is exclusive and evaluated first; the remaining children are
// tested independently in handler order.
func New(prefixes semantic.PrefixSets) *Tree {
	root := &Node{
		ID:        "root",
		Name:      "Utterance Routing Root",
		Condition: ConditionAlways,
		Action:    "route_utterance",
		Priority:  10,
	}

	root.Children = []*Node{
		{
			ID:        "story",
			Name:      "Story generation request",
			Condition: ConditionContainsKeywords,
			Keywords:  prefixes.Story,
			Action:    "generate_story",
			Intent:    model.IntentStory,
			Priority:  10,
			Exclusive: true,
		},
		{
			ID:        "how",
			Name:      "How question",
			Condition: ConditionContainsKeywords,
			Keywords:  prefixes.How,
			Action:    "answer_how_question",
			Intent:    model.IntentHow,
			Priority:  8,
		},
		{
			ID:        "self",
			Name:      "Self disclosure",
			Condition: ConditionContainsKeywords,
			Keywords:  prefixes.Self,
			Action:    "acknowledge_statement",
			Intent:    model.IntentSelf,
			Priority:  7,
		},
		{
			ID:        "encyclopedia",
			Name:      "Encyclopedia lookup",
			Condition: ConditionContainsKeywords,
			Keywords:  prefixes.Encyclopedia,
			Action:    "lookup_encyclopedia",
			Intent:    model.IntentEncyclopedia,
			Priority:  6,
		},
		{
			ID:        "website",
			Name:      "Website navigation",
			Condition: ConditionContainsKeywords,
			Keywords:  prefixes.Website,
			Action:    "open_website",
			Intent:    model.IntentWebsite,
			Priority:  5,
		},
	}

	return &Tree{Root: root}
}
