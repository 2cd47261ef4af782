package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alde/aspectratio/pkg/aspect"
	"github.com/alde/aspectratio/pkg/display"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in display presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			presets := display.ListPresets()

			fmt.Fprintln(w, styleTitle.Render("Display presets"))
			for _, name := range display.Names() {
				p := presets[name]

				res, err := aspect.Ratio(p.Options())
				if err != nil {
					return fmt.Errorf("preset %s: %w", name, err)
				}

				size := ""
				if d := p.DiagonalInches(); d > 0 {
					size = fmt.Sprintf("%.1f\"", d)
				}
				fmt.Fprintf(w, "  %-10s %-22s %-10s %-8s %s\n", name, p.Name, res.Resolution, res.ProportionText, size)
			}
			return nil
		},
	}
}
