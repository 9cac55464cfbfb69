package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/ngramlab/internal/config"
)

// commandContext carries the persistent flags shared by every subcommand.
type commandContext struct {
	configPath string
	verbose    bool
	n          int
	top        int
}

// load reads the config file and applies flag overrides.
func (c *commandContext) load(cmd *cobra.Command) (*config.Config, error) {
	if c.configPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("n") {
		cfg.N = c.n
	}
	if cmd.Flags().Changed("top") {
		cfg.Top = c.top
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *commandContext) configureLogging() {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "ngramlab",
		Short:         "N-gram frequency, TF-IDF and document similarity for small corpora",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx.configureLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "", "Corpus configuration file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&ctx.n, "n", 2, "N-gram size")
	rootCmd.PersistentFlags().IntVar(&ctx.top, "top", 10, "Number of top-ranked n-grams to show")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newSimilarityCommand(ctx))
	rootCmd.AddCommand(newNGramsCommand(ctx))

	return rootCmd
}
