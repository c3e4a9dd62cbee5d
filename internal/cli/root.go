package cli

import (
	"log/slog"

	"github.com/TwigBush/hexvec/internal/hexblock"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	logLevel string
	logJSON  bool
)

var rootCmd = newRootCmd()

func Execute() error { return rootCmd.Execute() }

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "hexvec",
		Short: "Generate big-integer multiplication test vectors as hex literals",
		Long: "hexvec draws two random operands, multiplies them and prints all three\n" +
			"values as quoted, backslash-continued hex blocks ready to paste into source.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), logLevel, logJSON)
			if err != nil {
				return err
			}
			slog.SetDefault(l)
			// main reports failures through the log package
			slog.SetLogLoggerLevel(slog.LevelError)
			return nil
		},
		// Bare invocation behaves like "generate" with config defaults.
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			return generate(cmd.OutOrStdout(), cfg)
		},
	}

	pf := c.PersistentFlags()
	pf.Int("bits", defaultBits, "bit length of each random operand")
	pf.Int("line-bits", hexblock.DefaultLayout.LineBits, "bits of the value shown per output line, a multiple of 4")
	pf.Int("indent", hexblock.DefaultLayout.Indent, "spaces before every output line")
	pf.StringVar(&cfgPath, "config", defaultConfigPath(), "config file path")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	pf.BoolVar(&logJSON, "log-json", false, "log in JSON format")

	c.AddCommand(cmdGenerate(), cmdFormat(), cmdVersion())

	c.SilenceUsage = true
	c.SilenceErrors = true
	c.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Show help",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().Help()
		},
	})
	return c
}
