package img2ascii

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/wbrown/img2ascii/imageutil"
)

// Config holds the settings a front end starts a session with.
type Config struct {
	// Font selects the glyph provider, see OpenFont.
	Font string `toml:"font"`

	// HTMLFont is the CSS font family of HTML output.
	HTMLFont string `toml:"html_font"`

	// InitialChars is the character range the session starts with.
	InitialChars string `toml:"initial_chars"`

	CharsPerRow int    `toml:"chars_per_row"`
	SampleSize  int    `toml:"sample_size"`
	Workers     int    `toml:"workers"`
	Output      string `toml:"output"`
	LogLevel    string `toml:"log_level"`

	// FitWidth downscales input images wider than this many pixels before
	// conversion; 0 disables it.
	FitWidth      int    `toml:"fit_width"`
	Interpolation string `toml:"interpolation"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Font:         "inconsolata",
		HTMLFont:     DefaultHTMLFont,
		InitialChars: "0-9",
		CharsPerRow:  DefaultCharsPerRow,
		SampleSize:   DefaultSampleSize,
		Workers:      1,
		Output:       "out.html",
		LogLevel:     "info",

		Interpolation: "area",
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys absent from the
// file keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be clamped at use.
func (c Config) Validate() error {
	if c.CharsPerRow < 1 {
		return fmt.Errorf("chars_per_row must be positive, got %d", c.CharsPerRow)
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("sample_size must be positive, got %d", c.SampleSize)
	}
	if c.FitWidth < 0 {
		return fmt.Errorf("fit_width must not be negative, got %d", c.FitWidth)
	}
	if _, err := imageutil.ParseInterpolation(c.Interpolation); err != nil {
		return fmt.Errorf("interpolation: %w", err)
	}
	if c.InitialChars != "" {
		if _, _, err := ParseCharRange(c.InitialChars); err != nil {
			return fmt.Errorf("initial_chars: %w", err)
		}
	}
	return nil
}

// NewRendererFromConfig opens the configured font and builds a Renderer
// whose character set holds InitialChars.
func NewRendererFromConfig(cfg Config, opts ...RendererOption) (*Renderer, error) {
	glyphs, err := OpenFont(cfg.Font)
	if err != nil {
		return nil, err
	}
	set := NewCharacterSet()
	if cfg.InitialChars != "" {
		if err := set.AddRange(cfg.InitialChars); err != nil {
			return nil, err
		}
	}
	base := []RendererOption{
		WithGlyphProvider(glyphs),
		WithSampleSize(cfg.SampleSize),
		WithWorkers(cfg.Workers),
		WithCharacterSet(set),
	}
	return NewRenderer(append(base, opts...)...), nil
}
