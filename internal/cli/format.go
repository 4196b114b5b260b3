package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/carnata/carnata/internal/colour"
	"github.com/carnata/carnata/internal/tone"
)

// showSwatches decides whether ANSI swatches should be emitted:
// only when requested, writing to a terminal rather than a file.
func showSwatches(requested bool, outputPath string) bool {
	if !requested || outputPath != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// analysisJSON is the machine-readable analysis output.
type analysisJSON struct {
	Tone     toneJSON            `json:"tone"`
	Category string              `json:"category"`
	Coverage float64             `json:"coverage"`
	Palette  []colour.ColourJSON `json:"palette"`
	Curated  []colour.ColourJSON `json:"curated"`
}

type toneJSON struct {
	Hex        string     `json:"hex"`
	RGB        colour.RGB `json:"rgb"`
	Lab        colour.Lab `json:"lab"`
	Confidence float64    `json:"confidence"`
}

// formatAnalysis formats an analysis result according to the specified format.
func formatAnalysis(result *tone.Result, format string, swatches bool) (string, error) {
	switch format {
	case "text", "":
		return formatAnalysisText(result, swatches), nil
	case "hex":
		return formatAnalysisHex(result, swatches), nil
	case "json":
		return formatAnalysisJSON(result)
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, hex, json)", format)
	}
}

// formatAnalysisText renders a human-readable summary.
func formatAnalysisText(result *tone.Result, swatches bool) string {
	var b strings.Builder

	est := result.Estimate
	if swatches {
		fmt.Fprintf(&b, "Detected skin tone:  %s\n", colour.FormatColourWithLabel(est.RGB, string(result.Category), 8))
	} else {
		fmt.Fprintf(&b, "Detected skin tone:  %s (%s)\n", est.Hex(), result.Category)
	}
	fmt.Fprintf(&b, "Confidence:          %.2f\n", est.Confidence)
	fmt.Fprintf(&b, "Skin coverage:       %.1f%%\n", result.Mask.Coverage()*100)
	if est.Confidence == 0 {
		b.WriteString("No skin detected; showing the neutral fallback tone.\n")
	}

	b.WriteString("\nRecommended palette:\n")
	for _, c := range result.Palette.Colours {
		writeColourLine(&b, c, swatches)
	}

	b.WriteString("\nCurated wardrobe colours:\n")
	for _, c := range result.Curated {
		writeColourLine(&b, c, swatches)
	}

	return b.String()
}

// formatAnalysisHex renders just the recommended palette as hex codes.
func formatAnalysisHex(result *tone.Result, swatches bool) string {
	var b strings.Builder
	for _, c := range result.Palette.Colours {
		writeColourLine(&b, c, swatches)
	}
	return b.String()
}

func writeColourLine(b *strings.Builder, c colour.RGB, swatches bool) {
	if swatches {
		b.WriteString("  " + colour.FormatColourWithPreview(c, 8) + "\n")
	} else {
		b.WriteString("  " + c.Hex() + "\n")
	}
}

// formatAnalysisJSON renders the full analysis as indented JSON.
func formatAnalysisJSON(result *tone.Result) (string, error) {
	out := analysisJSON{
		Tone: toneJSON{
			Hex:        result.Estimate.Hex(),
			RGB:        result.Estimate.RGB,
			Lab:        result.Estimate.Lab,
			Confidence: result.Estimate.Confidence,
		},
		Category: string(result.Category),
		Coverage: result.Mask.Coverage(),
		Palette:  colourListJSON(result.Palette.Colours),
		Curated:  colourListJSON(result.Curated),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return string(data) + "\n", nil
}

func colourListJSON(colours []colour.RGB) []colour.ColourJSON {
	out := make([]colour.ColourJSON, len(colours))
	for i, c := range colours {
		out[i] = colour.ColourJSON{Hex: c.Hex(), RGB: c}
	}
	return out
}
