package cmd

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alde/aspectratio/internal/worker"
	"github.com/alde/aspectratio/pkg/aspect"
	"github.com/alde/aspectratio/pkg/progress"
)

func newBatchCmd(root *rootOptions) *cobra.Command {
	var (
		workers   int
		output    string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "batch [WxH...]",
		Short: "Compute aspect ratios for many resolutions concurrently",
		Long: `Compute aspect ratios for many resolutions using a pool of workers.

Invalid resolutions are reported per line; the command fails only when
every input is invalid.

Examples:
  aspectratio batch 1920x1080 1280x720 3440x1440
  aspectratio batch 1920x1080 1080x1920 --workers 4 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.settings()

			format := cfg.Output.Format
			if output != "" {
				format = output
			}
			if err := validateFormat(format); err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = cfg.Batch.Workers
			}
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			base := cfg.RatioOptions()
			if cmd.Flags().Changed("delimiter") {
				if delimiter == "" {
					return fmt.Errorf("delimiter cannot be empty")
				}
				base.ProportionDelimiter = delimiter
			}

			return runBatch(cmd, args, base, workers, format)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of worker goroutines (0 = auto)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: text, json or toml")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Proportion delimiter (default from config, \":\")")

	return cmd
}

func runBatch(cmd *cobra.Command, resolutions []string, base aspect.Options, workers int, format string) error {
	logger := loggerFromContext(cmd.Context())

	tracker := progress.NewTracker(logger, workers, len(resolutions))
	pool := worker.NewPoolWithProgress(cmd.Context(), workers, tracker)
	pool.Start()

	logger.Debug("starting batch", "inputs", len(resolutions), "workers", pool.WorkerCount())

	submitErr := make(chan error, 1)
	go func() {
		defer pool.Stop()
		for i, res := range resolutions {
			opts := base
			opts.Resolution = res
			if err := pool.Submit(worker.Job{Index: i, ID: res, Options: opts}); err != nil {
				submitErr <- err
				return
			}
		}
		submitErr <- nil
	}()

	results := make([]worker.Result, 0, len(resolutions))
	for r := range pool.Results() {
		results = append(results, r)
	}
	if err := <-submitErr; err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}
	if len(results) != len(resolutions) {
		return fmt.Errorf("batch interrupted: %d of %d results", len(results), len(resolutions))
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	entries := make([]batchEntry, len(results))
	failed := 0
	for i, r := range results {
		entries[i].Input = r.JobID
		if r.Error != nil {
			entries[i].Error = r.Error.Error()
			failed++
			continue
		}
		ratio := r.Ratio
		entries[i].Result = &ratio
	}

	if err := writeBatch(cmd.OutOrStdout(), format, entries); err != nil {
		return err
	}

	if failed == len(entries) {
		return fmt.Errorf("all %d inputs failed", failed)
	}
	return nil
}
