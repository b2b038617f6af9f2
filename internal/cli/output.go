package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/cli/styles"
	"github.com/thenoetrevino/dublaj/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract IDs if possible
		switch v := data.(type) {
		case interface{ GetID() string }:
			_, err := fmt.Fprintln(f.out(), v.GetID())
			return err
		case []*models.Submission:
			for _, s := range v {
				if _, err := fmt.Fprintln(f.out(), s.GetID()); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithDetails(code, message, nil)
}

// ErrorWithDetails outputs error information with optional per-field details.
// Quiet mode prints nothing; the exit code carries the failure.
func (f *OutputFormatter) ErrorWithDetails(code string, message string, details map[string]string) error {
	if f.Quiet {
		return nil
	}

	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if len(details) > 0 {
			errData["fields"] = details
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.err(), "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	for _, name := range sortedKeys(details) {
		fmt.Fprintf(f.err(), "  %s %s\n", styles.LabelStyle.Render(name+":"), details[name])
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	w := f.out()

	switch v := data.(type) {
	case authform.Payload:
		fmt.Fprintln(w, styles.SuccessStyle.Render("Valid")+" "+styles.TitleStyle.Render(v.Mode.String()+" form"))
		fmt.Fprintln(w, field("email", v.Email))
		if v.Name != nil {
			fmt.Fprintln(w, field("name", *v.Name))
		}
		if v.RememberMe != nil {
			fmt.Fprintln(w, field("rememberMe", fmt.Sprint(*v.RememberMe)))
		}
	case []*models.Submission:
		if len(v) == 0 {
			fmt.Fprintln(w, styles.SubtitleStyle.Render("No submissions journaled yet"))
			return nil
		}
		for _, s := range v {
			fmt.Fprintln(w, renderSubmission(s))
		}
	case map[models.Outcome]int:
		fmt.Fprintln(w, field(string(models.OutcomeAccepted), fmt.Sprint(v[models.OutcomeAccepted])))
		fmt.Fprintln(w, field(string(models.OutcomeRejected), fmt.Sprint(v[models.OutcomeRejected])))
	default:
		fmt.Fprintf(w, "%+v\n", data)
	}
	return nil
}

func field(label, value string) string {
	return "  " + styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value)
}

func renderSubmission(s *models.Submission) string {
	outcome := styles.SuccessStyle.Render(string(s.Outcome))
	if !s.Accepted() {
		outcome = styles.WarningStyle.Render(string(s.Outcome))
	}

	line := fmt.Sprintf("%s %s %s %s",
		styles.SubtitleStyle.Render(s.CreatedAt.Local().Format("2006-01-02 15:04:05")),
		outcome,
		styles.LabelStyle.Render(s.Mode),
		styles.ValueStyle.Render(s.Email),
	)
	if len(s.ErrorFields) > 0 {
		line += " " + styles.SubtitleStyle.Render("("+strings.Join(s.ErrorFields, ", ")+")")
	}
	return line
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
