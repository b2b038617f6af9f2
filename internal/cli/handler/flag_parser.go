package handler

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dublaj/internal/authform"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseMode extracts a form mode from a string flag. An empty value
// returns ok=false so callers can fall back to the configured mode.
func (p *FlagParser) ParseMode(flagName string) (mode authform.Mode, ok bool, err error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if raw == "" {
		return 0, false, nil
	}
	mode, err = authform.ParseMode(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", flagName, err)
	}
	return mode, true, nil
}

// ParseLimit extracts a non-negative int flag
func (p *FlagParser) ParseLimit(flagName string) (int, error) {
	limit, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if limit < 0 {
		return 0, fmt.Errorf("%s must be 0 or greater", flagName)
	}
	return limit, nil
}
