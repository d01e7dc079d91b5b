// Package decisiontree maps a user utterance to the set of intent handlers
// that should run for it.
package decisiontree

import (
	"github.com/bgdnvk/parley/internal/agent/model"
	"github.com/bgdnvk/parley/internal/agent/semantic"
)

const (
	ConditionAlways           = "always"
	ConditionContainsKeywords = "contains_keywords"
)

type Node struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Condition string       `json:"condition"`
	Keywords  []string     `json:"keywords,omitempty"`
	Action    string       `json:"action"`
	Intent    model.Intent `json:"intent,omitempty"`
	Priority  int          `json:"priority"`
	// Exclusive nodes short-circuit the traversal: when one matches, it is
	// the only node that applies to the utterance.
	Exclusive bool    `json:"exclusive"`
	Children  []*Node `json:"children"`
}

// Route is the outcome of one traversal. It is built fresh per utterance so
// nothing carries over between turns.
type Route struct {
	Nodes []*Node
	Path  []string
}

// Intents lists the intents of the applicable nodes in evaluation order, or
// IntentNoMatch when nothing applied.
func (r Route) Intents() []model.Intent {
	var intents []model.Intent
	for _, n := range r.Nodes {
		if n.Intent != "" {
			intents = append(intents, n.Intent)
		}
	}
	if len(intents) == 0 {
		return []model.Intent{model.IntentNoMatch}
	}
	return intents
}

// Has reports whether intent is part of the route.
func (r Route) Has(intent model.Intent) bool {
	for _, n := range r.Nodes {
		if n.Intent == intent {
			return true
		}
	}
	return false
}

type Tree struct {
	Root *Node
}

// Traverse walks the tree depth-first and returns every node whose condition
// matches the utterance. Sibling nodes are tested independently, so one
// utterance can apply to several handlers; an exclusive match discards
// everything else that matched.
func (t *Tree) Traverse(utterance string) Route {
	var route Route
	if t.Root == nil {
		return route
	}
	if exclusive := t.traverseNode(t.Root, utterance, &route); exclusive != nil {
		return Route{Nodes: []*Node{exclusive}, Path: []string{t.Root.ID, exclusive.ID}}
	}
	return route
}

// traverseNode records node when it matches and then visits its children in
// priority order. It returns the first exclusive node that matched, if any.
func (t *Tree) traverseNode(node *Node, utterance string, route *Route) *Node {
	if !evaluateCondition(node, utterance) {
		return nil
	}
	if node.Exclusive {
		return node
	}
	route.Nodes = append(route.Nodes, node)
	route.Path = append(route.Path, node.ID)
	for _, child := range node.Children {
		if exclusive := t.traverseNode(child, utterance, route); exclusive != nil {
			return exclusive
		}
	}
	return nil
}

func evaluateCondition(node *Node, utterance string) bool {
	switch node.Condition {
	case ConditionAlways:
		return true
	case ConditionContainsKeywords:
		return semantic.MatchesAny(utterance, node.Keywords)
	default:
		return false
	}
}
