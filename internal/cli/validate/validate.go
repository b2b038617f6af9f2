package validate

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dublaj/internal/app"
	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/cli"
	"github.com/thenoetrevino/dublaj/internal/cli/handler"
)

// flagFields maps command flags to form fields
var flagFields = []struct {
	flag  string
	field authform.Field
}{
	{"name", authform.Name},
	{"email", authform.Email},
	{"password", authform.Password},
	{"confirm-password", authform.ConfirmPassword},
	{"remember-me", authform.RememberMe},
}

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate form values without opening the form",
		Long: `Run the login/register form headlessly with the given values.

Exits 0 when the form is valid and 5 when validation fails.

Examples:
  # Login
  dublaj validate --email=a@b.co --password=secret1

  # Register, JSON output for scripts
  dublaj validate --mode=register --name="Ada" --email=a@b.co \
    --password=secret1 --confirm-password=secret1 --json
`,
		RunE: runValidate,

		// Errors are reported through the output formatter
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().String("mode", "", "Form mode: login or register (defaults to config)")
	cmd.Flags().String("name", "", "Full name (register)")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password")
	cmd.Flags().String("confirm-password", "", "Password confirmation (register)")
	cmd.Flags().Bool("remember-me", false, "Remember me (login)")

	cmd.SetFlagErrorFunc(handler.FlagError)

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output, exit code only")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := handler.Formatter(cmd)

	mode, hasMode, err := handler.NewFlagParser(cmd).ParseMode("mode")
	if err != nil {
		reportError(formatter, "INVALID_MODE", err.Error())
		return cli.WithExitCode(cli.ExitUsage, err)
	}

	cliInstance, err := cli.NewCLI(ctx, app.WithoutJournal())
	if err != nil {
		reportError(formatter, "INITIALIZATION_ERROR", err.Error())
		return cli.WithExitCode(cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	modeName := ""
	if hasMode {
		modeName = mode.String()
	}
	form, err := cliInstance.App.NewController(modeName)
	if err != nil {
		reportError(formatter, "INVALID_MODE", err.Error())
		return cli.WithExitCode(cli.ExitUsage, err)
	}

	if err := fill(cmd, form); err != nil {
		reportError(formatter, "INVALID_FLAGS", err.Error())
		return cli.WithExitCode(cli.ExitUsage, err)
	}

	payload, err := form.Submit(ctx)
	if verr, ok := authform.AsValidationError(err); ok {
		if fmtErr := formatter.ErrorWithDetails("VALIDATION_FAILED", "form is invalid", verr.Errors.Strings()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(cli.ExitValidation, err)
	}
	if err != nil {
		reportError(formatter, "SUBMIT_FAILED", err.Error())
		return cli.WithExitCode(cli.ExitError, err)
	}

	return formatter.Success(payload.Redacted())
}

// fill copies the flag values into the form through the wire-name boundary
func fill(cmd *cobra.Command, form *authform.Controller) error {
	var errs []error
	for _, ff := range flagFields {
		var raw string
		if ff.field.Kind() == authform.KindToggle {
			v, err := cmd.Flags().GetBool(ff.flag)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			raw = strconv.FormatBool(v)
		} else {
			v, err := cmd.Flags().GetString(ff.flag)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			raw = v
		}

		if err := form.SetRaw(ff.field.String(), raw, ff.field.Kind()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func reportError(formatter *cli.OutputFormatter, code, message string) {
	if err := formatter.Error(code, message); err != nil {
		slog.Error("Error formatting error message", "error", err)
	}
}
