package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"answertree/agent"
	"answertree/config"
	"answertree/oracle"
	"answertree/searcher"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		iterations int
		model      string
		seeds      []string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "answertree \"question\"",
		Short: "Refine an answer with Monte Carlo Tree Search over LLM rewrites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if iterations > 0 {
				cfg.Search.Iterations = iterations
			}
			if model != "" {
				cfg.Oracle.Model = model
			}

			o, err := buildOracle(cfg.Oracle)
			if err != nil {
				return err
			}

			a := agent.NewMCTSAgent(o,
				searcher.WithExploration(cfg.Search.Exploration),
				searcher.WithMaxChildren(cfg.Search.MaxChildren),
				searcher.WithRatingScale(cfg.Search.RatingScale),
				searcher.WithReexpandProbability(cfg.Search.ReexpandProbability),
				searcher.WithParallelEvaluations(cfg.Search.ParallelEvaluations),
				searcher.WithMetrics(),
			)

			result, err := a.SearchTree(cmd.Context(), args[0], cfg.Search.Iterations, seeds...)
			if err != nil {
				return err
			}

			log.Info().
				Int("tree_size", result.Metrics.TreeSize).
				Int64("oracle_calls", result.Metrics.OracleCalls).
				Int64("evaluation_failures", result.Metrics.EvaluationFailures).
				Dur("duration", result.Metrics.Duration).
				Msg("search complete")
			fmt.Println(result.Answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "search iterations (overrides config)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model name (overrides config)")
	cmd.Flags().StringArrayVarP(&seeds, "seed", "s", nil, "seed answer, repeatable; explored before generated candidates")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func buildOracle(cfg config.Oracle) (oracle.Oracle, error) {
	apiKey := strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	if apiKey == "" {
		return nil, fmt.Errorf("environment variable %s is not set", cfg.APIKeyEnv)
	}

	var o oracle.Oracle = oracle.NewOpenAI(apiKey, cfg.Model)
	if cfg.Retries > 1 {
		o = oracle.NewRetrying(o, cfg.Retries, 0)
	}
	if cfg.CallsPerSecond > 0 {
		o = oracle.NewRateLimited(o, cfg.CallsPerSecond, cfg.Burst)
	}
	return o, nil
}
