package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alde/aspectratio/pkg/aspect"
	"github.com/alde/aspectratio/pkg/display"
)

type ratioOptions struct {
	width      int
	height     int
	resolution string
	preset     string
	delimiter  string
	algorithm  string
	sort       bool
	order      string
	digits     int
	output     string
}

func newRatioCmd(root *rootOptions) *cobra.Command {
	opts := &ratioOptions{}

	cmd := &cobra.Command{
		Use:   "ratio [WxH]",
		Short: "Compute the aspect ratio of a resolution",
		Long: `Compute aspect-ratio metadata for a resolution, a display preset,
or an explicit width and height.

Examples:
  aspectratio ratio 1920x1080
  aspectratio ratio --width 2560 --height 1080 --delimiter /
  aspectratio ratio --preset kindle --output json
  aspectratio ratio 1080x1920 --sort --order desc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if opts.resolution != "" {
					return fmt.Errorf("resolution given both as argument and --resolution")
				}
				opts.resolution = args[0]
			}
			return runRatio(cmd, root, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Height in pixels")
	cmd.Flags().StringVarP(&opts.resolution, "resolution", "r", "", "Resolution string (e.g., \"1920x1080\")")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Display preset (see 'aspectratio presets')")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "", "Proportion delimiter (default from config, \":\")")
	cmd.Flags().StringVar(&opts.algorithm, "gcd", "", "GCD algorithm: iterative or recursive")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "Sort the two dimensions before computing")
	cmd.Flags().StringVar(&opts.order, "order", "", "Sort order when --sort is set: desc or asc")
	cmd.Flags().IntVar(&opts.digits, "digits", 0, "Fractional digits of the decimal ratio")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format: text, json or toml")

	return cmd
}

func runRatio(cmd *cobra.Command, root *rootOptions, opts *ratioOptions) error {
	logger := loggerFromContext(cmd.Context())
	cfg := root.settings()

	format := cfg.Output.Format
	if opts.output != "" {
		format = opts.output
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	ratioOpts, err := buildRatioOptions(cmd, opts)
	if err != nil {
		return err
	}
	ratioOpts = cfg.RatioOptions().Merge(ratioOpts)

	logger.Debug("computing ratio",
		"resolution", ratioOpts.Resolution,
		"gcd", ratioOpts.Algorithm,
		"sorted", ratioOpts.SortDimensions)

	res, err := aspect.Ratio(ratioOpts)
	if err != nil {
		return fmt.Errorf("ratio computation failed: %w", err)
	}

	return writeResult(cmd.OutOrStdout(), format, res)
}

// buildRatioOptions turns the command flags into aspect options. Only
// flags the user set are carried over so config defaults still apply.
func buildRatioOptions(cmd *cobra.Command, opts *ratioOptions) (aspect.Options, error) {
	var ratioOpts aspect.Options
	flags := cmd.Flags()

	switch {
	case opts.resolution != "":
		ratioOpts.Resolution = opts.resolution
	case opts.preset != "":
		preset, err := display.GetPreset(opts.preset)
		if err != nil {
			return aspect.Options{}, err
		}
		ratioOpts = preset.Options()
	case flags.Changed("width") || flags.Changed("height"):
		ratioOpts.Width = aspect.Literal(opts.width)
		ratioOpts.Height = aspect.Literal(opts.height)
	default:
		return aspect.Options{}, fmt.Errorf("no dimensions given: pass a resolution, --preset, or --width and --height")
	}

	if flags.Changed("delimiter") {
		if opts.delimiter == "" {
			return aspect.Options{}, fmt.Errorf("delimiter cannot be empty")
		}
		ratioOpts.ProportionDelimiter = opts.delimiter
	}
	if flags.Changed("gcd") {
		ratioOpts.Algorithm = aspect.ParseAlgorithm(opts.algorithm)
	}
	if flags.Changed("order") {
		ratioOpts.SortOrder = aspect.ParseSortOrder(opts.order)
	}
	if flags.Changed("digits") {
		if opts.digits < 1 {
			return aspect.Options{}, fmt.Errorf("digits must be at least 1")
		}
		ratioOpts.Digits = opts.digits
	}
	ratioOpts.SortDimensions = opts.sort

	return ratioOpts, nil
}
