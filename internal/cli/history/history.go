package history

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dublaj/internal/cli"
	"github.com/thenoetrevino/dublaj/internal/cli/handler"
)

// ErrJournalDisabled is returned when the journal is turned off in config
var ErrJournalDisabled = errors.New("submission journal is disabled")

// DefaultLimit is the number of entries listed without --limit
const DefaultLimit = 20

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled submit attempts",
		Long: `List the submit attempts recorded in the local journal, newest first.
Passwords are never recorded.

Examples:
  dublaj history
  dublaj history --limit=5 --json
  dublaj history --stats
`,
		RunE: handler.Command(handler.HandlerFunc(runHistory), parseFlags),

		// Errors are reported through the output formatter
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().Int("limit", DefaultLimit, "Maximum number of entries (0 = all)")
	cmd.Flags().Bool("stats", false, "Show counts per outcome instead of entries")

	cmd.SetFlagErrorFunc(handler.FlagError)

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func parseFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseLimit("limit")
	return err
}

func runHistory(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	journal := cliInstance.App.Journal
	if journal == nil {
		return nil, ErrJournalDisabled
	}

	if args.GetBool("stats") {
		return journal.Stats(ctx)
	}

	return journal.History(ctx, args.GetInt("limit", DefaultLimit))
}
