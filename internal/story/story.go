// Package story turns "add <count> <type> named <a>, <b>, ..." commands into a
// short narrative by filling the [Character N] placeholders of a template.
package story

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bgdnvk/parley/internal/agent/model"
)

// MaxPlaceholders is the number of [Character N] slots a template may use.
const MaxPlaceholders = 6

var (
	ErrMissingAddClause   = errors.New("story command is missing 'add <count> <type>'")
	ErrMissingNamedClause = errors.New("story command is missing 'named'")
)

// ParseCommand reads the count and type following the first "add" token and
// the comma separated names following the first "named" token.
func ParseCommand(tokens []string) (model.StoryRequest, error) {
	var req model.StoryRequest

	addIndex := slices.Index(tokens, "add")
	if addIndex < 0 || addIndex+2 >= len(tokens) {
		return req, ErrMissingAddClause
	}
	req.Count = tokens[addIndex+1]
	req.TypeLabel = tokens[addIndex+2]

	namedIndex := slices.Index(tokens, "named")
	if namedIndex < 0 {
		return req, ErrMissingNamedClause
	}

	names := strings.Join(tokens[namedIndex+1:], " ")
	for _, name := range strings.Split(names, ",") {
		if name = strings.TrimSpace(name); name != "" {
			req.Names = append(req.Names, name)
		}
	}
	return req, nil
}

// Placeholder returns the marker for slot i.
func Placeholder(i int) string {
	return fmt.Sprintf("[Character %d]", i)
}

// Render substitutes every placeholder slot. Slots without a matching name
// get the first name, or "" when there are no names at all, so the result
// never contains a placeholder in the 0..5 range.
func Render(template string, names []string) string {
	out := template
	for i := range MaxPlaceholders {
		var name string
		switch {
		case i < len(names):
			name = names[i]
		case len(names) > 0:
			name = names[0]
		}
		out = strings.ReplaceAll(out, Placeholder(i), name)
	}
	return out
}
