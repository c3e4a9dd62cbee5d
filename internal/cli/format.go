package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
)

func cmdFormat() *cobra.Command {
	return &cobra.Command{
		Use:   "format VALUE...",
		Short: "Format given non-negative integers (decimal or 0x-prefixed hex) as blocks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			layout := cfg.Layout()
			for _, arg := range args {
				n, err := parseValue(arg)
				if err != nil {
					return err
				}
				if err := layout.Fprint(cmd.OutOrStdout(), n); err != nil {
					return fmt.Errorf("format %s: %w", arg, err)
				}
			}
			return nil
		},
	}
}

func parseValue(s string) (*big.Int, error) {
	digits, base := s, 10
	if lower := strings.ToLower(s); strings.HasPrefix(lower, "0x") {
		digits, base = s[2:], 16
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok || digits == "" || strings.ContainsAny(digits, "+-") {
		return nil, fmt.Errorf("invalid value %q: want a non-negative decimal or 0x-prefixed hex integer", s)
	}
	return n, nil
}
