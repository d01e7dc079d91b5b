package wiki

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ResolveBaseURL returns the encyclopedia API URL.
// Priority: flag > config > env > default
func ResolveBaseURL(flagValue string) string {
	if url := strings.TrimSpace(flagValue); url != "" {
		return url
	}

	if url := strings.TrimSpace(viper.GetString("wiki.base_url")); url != "" {
		return url
	}

	if url := strings.TrimSpace(os.Getenv("PARLEY_WIKI_URL")); url != "" {
		return url
	}

	return DefaultBaseURL
}

// ResolveSummaryLength returns the configured summary cut-off, falling back to
// DefaultSummaryLength for unset or non-positive values.
func ResolveSummaryLength() int {
	if n := viper.GetInt("wiki.summary_length"); n > 0 {
		return n
	}
	return DefaultSummaryLength
}
