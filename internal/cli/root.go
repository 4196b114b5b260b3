// Package cli provides the command-line interface for Carnata.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/carnata/carnata/internal/tone"
	"github.com/carnata/carnata/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "carnata",
	Short: "Skin tone analysis and colour recommendation",
	Long: `Carnata estimates the dominant skin tone in a photograph and derives
complementary colour palettes from it.

Point it at a photo and it classifies skin pixels in a perceptual
colour space, aggregates them into a representative tone with a
confidence score, and recommends colours that suit that tone. It can
also recolour the detected skin region towards a different tone for
preview.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyseCmd)
	rootCmd.AddCommand(adjustCmd)
}

// registerPipelineFlags registers the shared analysis pipeline flags
// on a command's flag set.
func registerPipelineFlags(flags *pflag.FlagSet) {
	flags.Int("min-skin-pixels", tone.DefaultClassifierConfig().MinPixels,
		"minimum matched pixels for a classification pass to count as skin")
	flags.Int("max-dim", 0, "downscale images above this dimension before analysis (0 = default)")
}

// pipelineConfig builds the pipeline configuration from a command's
// flags.
func pipelineConfig(cmd *cobra.Command) (tone.Config, error) {
	config := tone.DefaultConfig()

	minPixels, err := cmd.Flags().GetInt("min-skin-pixels")
	if err != nil {
		return config, fmt.Errorf("failed to read min-skin-pixels: %w", err)
	}
	config.Classifier.MinPixels = minPixels

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
