package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of c and its children to its default so
// commands can be executed repeatedly in one process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestAsk_HowAreYou(t *testing.T) {
	out, err := execute(t, "", "ask", "--dry-run", "--seed", "3", "how", "are", "you")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "im good") || strings.HasPrefix(out, "im bad"), out)
	assert.True(t, strings.HasSuffix(out, "?\n"), out)
}

func TestAsk_WebsiteDryRun(t *testing.T) {
	out, err := execute(t, "", "ask", "--dry-run", "search", "example.com", "for", "cats")
	require.NoError(t, err)
	assert.Equal(t, "Opening: https://example.com/cats\n", out)
}

func TestAsk_StoryReadsStdin(t *testing.T) {
	out, err := execute(t, "add 2 dogs named bob, jeff\n", "ask", "--dry-run", "write", "me", "a", "story")
	require.NoError(t, err)

	assert.Contains(t, out, "User (story mode): ")
	assert.Contains(t, out, "File 'template.txt' not found. Using default template.")
	assert.Contains(t, out, "Once upon a time, bob went on an adventure.")
}

func TestAsk_StoryWithoutStdin(t *testing.T) {
	_, err := execute(t, "", "ask", "--dry-run", "story")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "story mode")
}

func TestAsk_RequiresWords(t *testing.T) {
	_, err := execute(t, "", "ask")
	require.Error(t, err)
}

func TestChat_RunsUntilEOF(t *testing.T) {
	out, err := execute(t, "search example.com\nhello there\nsearch nowhere\n", "chat", "--dry-run")
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, chatPrompt))
	assert.Contains(t, out, "Opening: https://example.com\n")
	assert.Contains(t, out, "Could not determine a valid website domain from your input.\n")
}

func TestHistory_Transcript(t *testing.T) {
	db := filepath.Join(t.TempDir(), "transcript.db")

	_, err := execute(t, "", "ask", "--dry-run", "--transcript", db, "search", "example.com")
	require.NoError(t, err)

	out, err := execute(t, "", "history", "--transcript", db, "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "website_navigation")
	assert.Contains(t, out, "  > search example.com")
	assert.Contains(t, out, "    Opening: https://example.com")

	out, err = execute(t, "y\n", "history", "--transcript", db, "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 turns.")
}

func TestHistory_Disabled(t *testing.T) {
	_, err := execute(t, "", "history")
	require.ErrorIs(t, err, errTranscriptDisabled)
}

func TestConfigInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init"})
	require.NoError(t, rootCmd.Execute())

	content, err := os.ReadFile(filepath.Join(home, ".parley.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, string(content))
	assert.Contains(t, out.String(), "Configuration file created")

	out.Reset()
	rootCmd.SetArgs([]string{"config", "init"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "already exists")
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "", "config", "show", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "summary_length: 1800")
	assert.Contains(t, out, "max_turns: 500")
}
