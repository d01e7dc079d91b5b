package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [utterance]",
	Short: "Answer a single line and exit",
	Long: `Run exactly one turn on the given words. Story requests read their
"add <number> <type> named <names>" line from stdin.`,
	Example: `  parley ask how are you
  parley ask --dry-run search example.com for cats
  echo "add 2 dogs named bob, jeff" | parley ask write me a story`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		line := strings.Join(args, " ")
		if _, err := s.agent.HandleTurn(cmd.Context(), line); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("story mode needs an 'add <number> <type> named <names>' line on stdin")
			}
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
