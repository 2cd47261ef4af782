package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/alde/aspectratio/internal/config"
	"github.com/alde/aspectratio/pkg/aspect"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorWhite = lipgloss.Color("255")

	styleLabel = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleError = lipgloss.NewStyle().Foreground(colorRed)
)

// batchEntry is one line of batch output. Exactly one of Result and Error is set.
type batchEntry struct {
	Input  string         `json:"input" toml:"input"`
	Result *aspect.Result `json:"result,omitempty" toml:"result,omitempty"`
	Error  string         `json:"error,omitempty" toml:"error,omitempty"`
}

func validateFormat(format string) error {
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatTOML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (use text, json or toml)", format)
	}
}

// writeResult renders a single result in the requested format
func writeResult(w io.Writer, format string, res aspect.Result) error {
	switch format {
	case config.FormatJSON:
		if !isFinite(res.Ratio) {
			return fmt.Errorf("ratio %v cannot be encoded as JSON (use --output text or toml)", res.Ratio)
		}
		return writeJSON(w, res)
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(res)
	default:
		writeText(w, res)
		return nil
	}
}

// writeBatch renders batch entries in the requested format
func writeBatch(w io.Writer, format string, entries []batchEntry) error {
	switch format {
	case config.FormatJSON:
		for _, e := range entries {
			if e.Result != nil && !isFinite(e.Result.Ratio) {
				return fmt.Errorf("ratio of %s cannot be encoded as JSON (use --output text or toml)", e.Input)
			}
		}
		return writeJSON(w, entries)
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(struct {
			Results []batchEntry `toml:"results"`
		}{entries})
	default:
		for _, e := range entries {
			if e.Error != "" {
				fmt.Fprintf(w, "%-20s %s\n", e.Input, styleError.Render("error: "+e.Error))
				continue
			}
			r := e.Result
			fmt.Fprintf(w, "%-20s %-10s %-12s %-10s %s\n",
				e.Input, r.ProportionText, r.AspectRatio, r.Orientation, r.MegapixelsUnit)
		}
		return nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(w io.Writer, res aspect.Result) {
	fmt.Fprintln(w, styleTitle.Render(res.Resolution))
	row := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", styleLabel.Render(label), styleValue.Render(value))
	}
	row("Proportion", res.ProportionText)
	row("Ratio", res.AspectRatio)
	row("Orientation", res.Orientation.String())
	row("Pixels", res.PixelsUnit)
	row("Megapixels", res.MegapixelsUnit)
	row("GCD", strconv.Itoa(res.ProportionAmount))
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
