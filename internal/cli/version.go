package cli

import (
	"encoding/json"
	"fmt"

	"github.com/TwigBush/hexvec/internal/version"
	"github.com/spf13/cobra"
)

func cmdVersion() *cobra.Command {
	var verbose, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				b, err := json.Marshal(version.Get())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
			case verbose:
				fmt.Fprintln(out, version.Verbose())
			default:
				fmt.Fprintln(out, version.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed version information")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")

	return cmd
}
