package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/TwigBush/hexvec/internal/operand"
	"github.com/TwigBush/hexvec/internal/vector"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func cmdGenerate() *cobra.Command {
	c := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Print random operands A, B and their product",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			return generate(cmd.OutOrStdout(), cfg)
		},
	}
	c.Flags().Int64("seed", 0, "seed for the random source, 0 picks one")
	c.Flags().Int("count", defaultCount, "number of vectors to print")
	return c
}

// newGenerator is swapped in tests.
var newGenerator = func(seed int64) (*operand.Generator, int64, error) {
	if seed != 0 {
		return operand.NewSeeded(seed), seed, nil
	}
	return operand.NewRandom()
}

func generate(w io.Writer, cfg *Config) error {
	g, seed, err := newGenerator(cfg.Seed)
	if err != nil {
		return fmt.Errorf("random source: %w", err)
	}

	run := uuid.NewString()
	slog.Debug("generate",
		"run", run,
		"seed", seed,
		"bits", cfg.Bits,
		"line_bits", cfg.LineBits,
		"indent", cfg.Indent,
		"count", cfg.Count,
	)

	layout := cfg.Layout()
	for i := 0; i < cfg.Count; i++ {
		v, err := vector.New(g, cfg.Bits)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := vector.Write(w, v, layout); err != nil {
			return fmt.Errorf("write vector %d: %w", i, err)
		}
		slog.Debug("vector", "run", run, "index", i, "product_bits", v.Product.BitLen())
	}
	return nil
}
