package tone

import (
	"fmt"
	"image"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/carnata/carnata/internal/colour"
)

// maxDimension is a sanity bound on image width and height. Anything
// larger is treated as a malformed image rather than analysed.
const maxDimension = 1 << 16

// Config holds the configuration for a full analysis pipeline.
type Config struct {
	Classifier ClassifierConfig
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Classifier: DefaultClassifierConfig(),
	}
}

// Validate validates the pipeline configuration.
func (c Config) Validate() error {
	if err := c.Classifier.Validate(); err != nil {
		return fmt.Errorf("classifier config: %w", err)
	}
	return nil
}

// Result is the outcome of analysing one image: the representative
// tone, its category, the generated and curated palettes, and the skin
// mask used (so callers can feed it back into Adjust).
type Result struct {
	Estimate Estimate
	Category Category
	Palette  *colour.Palette
	Curated  []colour.RGB
	Mask     *Mask
}

// Analyzer runs the full skin tone pipeline: classify, aggregate,
// categorise, recommend. It carries no state between calls; every
// analysis operates on request-scoped data only.
type Analyzer struct {
	config     Config
	classifier *Classifier
	logger     hclog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for pipeline debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// NewAnalyzer creates an Analyzer with the given configuration.
func NewAnalyzer(config Config, opts ...Option) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &Analyzer{
		config:     config,
		classifier: NewClassifier(config.Classifier),
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "tone",
			Output: io.Discard,
			Level:  hclog.Off,
		}),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Analyze runs the pipeline over one image. The only error condition
// is a malformed image (nil or degenerate dimensions); an image with
// no detectable skin is not an error and yields the neutral fallback
// tone with confidence 0.
func (a *Analyzer) Analyze(img image.Image) (*Result, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	a.logger.Debug("analysing image", "width", bounds.Dx(), "height", bounds.Dy())

	mask := a.classifier.Classify(img)
	a.logger.Debug("classified skin pixels", "count", mask.Count(), "coverage", fmt.Sprintf("%.1f%%", mask.Coverage()*100))

	est := Aggregate(img, mask)
	cat := Categorise(est)
	a.logger.Debug("aggregated tone", "colour", est.Hex(), "confidence", fmt.Sprintf("%.2f", est.Confidence), "category", cat)

	return &Result{
		Estimate: est,
		Category: cat,
		Palette:  Recommend(est),
		Curated:  Curated(cat),
		Mask:     mask,
	}, nil
}

// validateImage fails fast on images the pipeline cannot analyse.
func validateImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("invalid image: image is nil")
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid image shape: %dx%d", w, h)
	}
	if w > maxDimension || h > maxDimension {
		return fmt.Errorf("invalid image shape: %dx%d exceeds maximum dimension %d", w, h, maxDimension)
	}
	return nil
}
