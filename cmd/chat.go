package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const chatPrompt = "Enter command: "

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	Long: `Read lines until end of input (Ctrl-D) and answer each one.

Examples:
  how are you
  i am having a great day
  who is ada lovelace
  search github.com find spf13 cobra
  write me a story`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	for {
		line, err := s.console.ReadLine(chatPrompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if _, err := s.agent.HandleTurn(ctx, line); errors.Is(err, io.EOF) {
			break
		}
	}

	mem := s.agent.Memory()
	s.logger.Info("session ended",
		zap.String("session", s.agent.SessionID()),
		zap.Int("turns", mem.NextTurn()-1),
		zap.Any("intents", mem.IntentCounts),
	)
	fmt.Fprintln(s.console.Out())
	return nil
}
