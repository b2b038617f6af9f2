package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dublaj/internal/app"
	"github.com/thenoetrevino/dublaj/internal/cli"
	"github.com/thenoetrevino/dublaj/internal/cli/handler"
	"github.com/thenoetrevino/dublaj/internal/cli/history"
	clistyles "github.com/thenoetrevino/dublaj/internal/cli/styles"
	"github.com/thenoetrevino/dublaj/internal/cli/validate"
	"github.com/thenoetrevino/dublaj/internal/config"
	"github.com/thenoetrevino/dublaj/internal/logging"
	"github.com/thenoetrevino/dublaj/internal/tui/core"
)

var (
	modeFlag  string
	noJournal bool

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "dublaj",
	Short: "AI Dublaj - account form in the terminal",
	Long: `dublaj opens the AI Dublaj login / registration form in the terminal.

The form switches between login and register, validates on submit and
records each attempt (never the password) in a local journal.`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runForm,
}

func init() {
	rootCmd.SetFlagErrorFunc(handler.FlagError)

	rootCmd.Flags().StringVar(&modeFlag, "mode", "", "Open in login or register mode (defaults to config)")
	rootCmd.Flags().BoolVar(&noJournal, "no-journal", false, "Do not record submit attempts")

	rootCmd.AddCommand(validate.ValidateCmd())
	rootCmd.AddCommand(history.HistoryCmd())
}

// setup loads config, starts file logging and hands the config to subcommands
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closer, err := logging.Init("", logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: file logging disabled: %v\n", err)
	} else {
		logCloser = closer
	}

	clistyles.Init(cfg.ColorScheme)
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

// runForm runs the interactive form until it is closed
func runForm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var opts []app.Option
	if noJournal {
		opts = append(opts, app.WithoutJournal())
	}

	cliInstance, err := cli.NewCLI(ctx, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	form, err := cliInstance.App.NewController(modeFlag)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: invalid --mode: %v\n", err)
		return cli.WithExitCode(cli.ExitUsage, err)
	}

	slog.Info("form opened", "mode", form.Mode(), "journal", cliInstance.App.Journal != nil)

	program := tea.NewProgram(core.New(ctx, cli.ConfigFrom(ctx), form), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && !cli.Reported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}
