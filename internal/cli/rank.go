package cli

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/plocket/llm-survey/config"
	"github.com/plocket/llm-survey/internal/adapter/analyzer"
	"github.com/plocket/llm-survey/internal/adapter/fs"
	"github.com/plocket/llm-survey/internal/adapter/ingest"
	"github.com/plocket/llm-survey/internal/adapter/report"
	"github.com/plocket/llm-survey/internal/adapter/scorer"
	"github.com/plocket/llm-survey/internal/logging"
	"github.com/plocket/llm-survey/internal/port"
	"github.com/plocket/llm-survey/internal/usecase"
)

var (
	rankInput    string
	rankJSON     bool
	rankWorkers  int
	rankProgress bool
	rankTrace    []string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank every model in the log",
	Long: `Score every logged conversation and print models from most to least
consistent. This is also what running consistency with no subcommand does.

Examples:
  consistency rank
  consistency rank --input other_log.jsonl --json
  consistency rank --trace-model gpt-3.5-turbo`,
	Args: cobra.NoArgs,
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
	addRankFlags(rankCmd)
}

func addRankFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rankInput, "input", "i", "", "log file or ** glob (default from config, llm_log.jsonl)")
	cmd.Flags().BoolVar(&rankJSON, "json", false, "output as JSON")
	cmd.Flags().IntVarP(&rankWorkers, "workers", "w", 0, "models scored in parallel (default from config)")
	cmd.Flags().BoolVar(&rankProgress, "progress", false, "show a progress bar on stderr")
	cmd.Flags().StringSliceVar(&rankTrace, "trace-model", nil, "log every pair comparison for these models")
}

// applyRankFlags lets command-line flags override the loaded config.
func applyRankFlags(cfg *config.Config) {
	if rankInput != "" {
		cfg.Input.Path = rankInput
	}
	if rankJSON {
		cfg.Report.Format = "json"
	}
	if rankWorkers > 0 {
		cfg.Score.Workers = rankWorkers
	}
	if len(rankTrace) > 0 {
		cfg.Logging.TraceModels = append(cfg.Logging.TraceModels, rankTrace...)
	}
	// Traces are debug records; asking for one implies seeing it.
	if len(cfg.Logging.TraceModels) > 0 {
		cfg.Logging.Level = "debug"
	}
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	applyRankFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	files, err := fs.NewLocator(GetRootDir()).Resolve(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("failed to locate conversation log: %w", err)
	}

	source := ingest.NewJSONLSource(files, logger)
	tokenizer := analyzer.NewTokenizer(cfg.Analyzer.ExtraStopwords)
	sc := scorer.NewScorer(tokenizer,
		scorer.WithLogger(logger),
		scorer.WithSeeds(cfg.Score.DiffSeed, cfg.Score.SameSeed),
	)

	rankUC := usecase.NewRankUseCase(source, sc, cfg.Score.Workers, cfg.Traced, logger)

	var progress usecase.ProgressFunc
	if rankProgress {
		progress = newProgress(cmd)
	}

	result, err := rankUC.Run(cmd.Context(), progress)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	report.ParseErrors(cmd.ErrOrStderr(), result.ParseErrors)

	return newReporter(cmd, cfg, logger).Report(result.Ranked)
}

func newReporter(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) port.Reporter {
	if cfg.Report.Format == "json" {
		return report.NewJSONReporter(cmd.OutOrStdout())
	}
	logger.Debug("rendering text report", "pass_threshold", cfg.Report.PassThreshold, "warn_threshold", cfg.Report.WarnThreshold)
	return report.NewTextReporter(cmd.OutOrStdout(), cfg.Report.PassThreshold, cfg.Report.WarnThreshold)
}

// newProgress returns a callback that lazily creates the bar once the
// number of models is known.
func newProgress(cmd *cobra.Command) usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex

	return func(processed, total int, model string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Scoring[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}

		bar.Describe(fmt.Sprintf("[cyan]Scoring[reset] %s", model))
		bar.Set(processed)
	}
}
