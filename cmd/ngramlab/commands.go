package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/ngramlab"
	"github.com/wizenheimer/ngramlab/internal/report"
)

const matrixLabel = "Document"

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the normalize pass and the stem pass and print both results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.load(cmd)
			if err != nil {
				return err
			}
			stemmer, err := cfg.StemChain()
			if err != nil {
				return err
			}

			pipeline := ngramlab.NewPipeline(stemmer, cfg.PassConfig())

			if cmd.Flags().Changed("out") {
				cfg.OutputDir = outDir
			}
			if cfg.OutputDir != "" {
				renderer, err := report.NewFileRenderer(cfg.OutputDir)
				if err != nil {
					return err
				}
				pipeline.Renderer = renderer
			}

			results, err := pipeline.RunTwice(cmd.Context(), cfg.Documents)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			formatter := report.NewFormatter(out)
			for i, result := range results {
				writePass(out, formatter, i, result)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory for cloud and chart artifacts")
	return cmd
}

func writePass(out io.Writer, f report.Formatter, index int, result *ngramlab.PassResult) {
	fmt.Fprintf(out, "\nPass %d (%s, run %s)\n\n", index+1, result.Pass, result.RunID)
	fmt.Fprintln(out, f.NGrams("n-grams", result.NGrams))
	fmt.Fprintln(out, f.Frequencies("frequency analysis", result.Frequencies))
	fmt.Fprintln(out, f.Scores("TF-IDF", result.Scores))
	fmt.Fprintln(out, f.Scores(fmt.Sprintf("top %d", len(result.Top)), result.Top))
	fmt.Fprintln(out, f.Matrix("cosine similarity", matrixLabel, result.Similarity))
}

func newSimilarityCommand(ctx *commandContext) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "similarity",
		Short: "Print the cosine similarity cross matrix of the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.load(cmd)
			if err != nil {
				return err
			}

			corpus := cfg.Documents
			if !raw {
				corpus = ngramlab.NormalizeCorpus(corpus, cfg.PassConfig().Analyzer)
			}

			out := cmd.OutOrStdout()
			matrix := ngramlab.SimilarityMatrix(corpus)
			fmt.Fprintln(out, report.NewFormatter(out).Matrix("cosine similarity", matrixLabel, matrix))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Compare documents without normalizing them first")
	return cmd
}

func newNGramsCommand(ctx *commandContext) *cobra.Command {
	var stem bool

	cmd := &cobra.Command{
		Use:   "ngrams",
		Short: "Print the n-gram frequency analysis of the normalized corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.load(cmd)
			if err != nil {
				return err
			}

			analyzer := cfg.PassConfig().Analyzer
			corpus := ngramlab.NormalizeCorpus(cfg.Documents, analyzer)
			if stem {
				chain, err := cfg.StemChain()
				if err != nil {
					return err
				}
				corpus = ngramlab.StemCorpus(corpus, chain, analyzer)
			}

			out := cmd.OutOrStdout()
			frequencies := ngramlab.Frequencies(ngramlab.ExtractCorpus(corpus, cfg.N))
			fmt.Fprintln(out, report.NewFormatter(out).Frequencies(fmt.Sprintf("%d-grams", cfg.N), frequencies))
			return nil
		},
	}

	cmd.Flags().BoolVar(&stem, "stem", false, "Stem the normalized corpus before counting")
	return cmd
}
