package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bgdnvk/parley/internal/agent/model"
	"github.com/bgdnvk/parley/internal/cli"
)

var errTranscriptDisabled = errors.New("transcript is disabled; set transcript.path or pass --transcript")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded turns",
	Long:  `List the most recent turns from the transcript database, oldest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		clearAll, _ := cmd.Flags().GetBool("clear")

		store, err := openTranscript()
		if err != nil {
			return err
		}
		if store == nil {
			return errTranscriptDisabled
		}
		defer store.Close()

		out := cmd.OutOrStdout()

		if clearAll {
			ok, err := cli.NewConsole(cmd.InOrStdin(), out).Confirm("Delete every recorded turn?")
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !ok {
				fmt.Fprintln(out, "Nothing deleted.")
				return nil
			}
			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted %d turns.\n", n)
			return nil
		}

		records, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No turns recorded yet.")
			return nil
		}
		for _, rec := range records {
			printTurnRecord(out, rec)
		}
		return nil
	},
}

func printTurnRecord(out io.Writer, rec model.TurnRecord) {
	session := rec.SessionID
	if len(session) > 8 {
		session = session[:8]
	}

	intents := make([]string, len(rec.Intents))
	for i, intent := range rec.Intents {
		intents[i] = intent.String()
	}

	fmt.Fprintf(out, "[%s] %s #%d (%s)\n",
		rec.CreatedAt.Local().Format(time.DateTime), session, rec.Turn, strings.Join(intents, ", "))
	fmt.Fprintf(out, "  > %s\n", strings.TrimSpace(rec.Utterance))
	for _, line := range strings.Split(strings.TrimRight(rec.Output, "\n"), "\n") {
		if line != "" {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Int("limit", 20, "number of turns to show")
	historyCmd.Flags().Bool("clear", false, "delete every recorded turn (asks for confirmation)")
}
