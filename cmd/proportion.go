package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alde/aspectratio/pkg/aspect"
)

func newProportionCmd(root *rootOptions) *cobra.Command {
	var (
		delimiter    string
		anyDelimiter bool
	)

	cmd := &cobra.Command{
		Use:   "proportion [W:H]",
		Short: "Convert a proportion string to a decimal ratio",
		Long: `Convert a proportion such as 16:9 to its decimal ratio.

Each side may have 1-3 digits. Input that does not match prints -1.

Examples:
  aspectratio proportion 16:9
  aspectratio proportion 21x9 --delimiter x
  aspectratio proportion 2560-1080 --delimiter - --any-delimiter`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if !cmd.Flags().Changed("delimiter") {
				delimiter = root.settings().Ratio.Delimiter
			}
			if delimiter == "" {
				return fmt.Errorf("delimiter cannot be empty")
			}

			value := aspect.ProportionToRatio(args[0], aspect.ProportionOptions{
				Delimiter:         delimiter,
				AllowAnyDelimiter: anyDelimiter,
			})
			if value == -1 {
				logger.Warn("proportion does not match", "input", args[0], "delimiter", delimiter)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'f', -1, 64))
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", aspect.DefaultDelimiter, "Delimiter between the two terms")
	cmd.Flags().BoolVar(&anyDelimiter, "any-delimiter", false, "Skip the strict 1-3 digit pattern check")

	return cmd
}
