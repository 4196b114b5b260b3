package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/carnata/carnata/internal/image"
	"github.com/carnata/carnata/internal/tone"
)

var (
	// Analyse command flags
	analyseFormat  string
	analyseOutput  string
	analysePreview bool
)

// analyseCmd represents the analyse command
var analyseCmd = &cobra.Command{
	Use:     "analyse <image>",
	Aliases: []string{"analyze"},
	Short:   "Estimate the dominant skin tone and recommend colours",
	Long: `Analyse a photograph and report the dominant skin tone, its category,
a confidence score, and complementary colour recommendations.

The image is classified pixel by pixel in CIE Lab space against a
tunable skin band. A low confidence score means the detected pixels
did not cluster tightly (or no skin was found at all) and the reported
tone is a neutral fallback.

Supported image formats: JPEG, PNG, GIF, WebP. Paths may be local
files or HTTP(S) URLs.

Examples:
  # Analyse a photo and print a summary
  carnata analyse portrait.jpg

  # Machine-readable output
  carnata analyse --format json portrait.jpg

  # Just the recommended palette as hex codes
  carnata analyse --format hex portrait.jpg

  # Colour swatches in the terminal
  carnata analyse --preview portrait.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyse,
}

func init() {
	analyseCmd.Flags().StringVarP(&analyseFormat, "format", "f", "text", "output format (text, hex, json)")
	analyseCmd.Flags().StringVarP(&analyseOutput, "output", "o", "", "output file (default: stdout)")
	analyseCmd.Flags().BoolVar(&analysePreview, "preview", false, "show colour swatches in terminal output")
	registerPipelineFlags(analyseCmd.Flags())
}

// runAnalyse executes the analyse command.
func runAnalyse(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	config, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", imagePath)
	}

	img, err := image.NewSmartLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	maxDim, _ := cmd.Flags().GetInt("max-dim")
	img = image.Downscale(img, maxDim)

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Analysing image: %dx%d\n", bounds.Dx(), bounds.Dy())
	}

	analyzer, err := tone.NewAnalyzer(config, tone.WithLogger(pipelineLogger(verbose)))
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(img)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Detected tone %s (%s, confidence %.2f, coverage %.1f%%)\n",
			result.Estimate.Hex(), result.Category, result.Estimate.Confidence,
			result.Mask.Coverage()*100)
	}

	output, err := formatAnalysis(result, analyseFormat, showSwatches(analysePreview, analyseOutput))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return writeOutput(output, analyseOutput, verbose)
}

// pipelineLogger builds the hclog logger used by the analysis
// pipeline: debug output on stderr when verbose, silent otherwise.
func pipelineLogger(verbose bool) hclog.Logger {
	if !verbose {
		return hclog.NewNullLogger()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "carnata",
		Output: os.Stderr,
		Level:  hclog.Debug,
	})
}

// writeOutput writes formatted output to a file or stdout.
func writeOutput(output, path string, verbose bool) error {
	if path == "" {
		fmt.Print(output)
		return nil
	}

	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote output to %s\n", path)
	}
	return nil
}
