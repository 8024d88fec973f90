package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

var (
	version = "0.1.0"

	// appConfig is resolved once flags are parsed.
	appConfig img2ascii.Config

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "asciify",
	Short: "Render images as ASCII art by matching glyph brightness",
	Long: `asciify converts an image into a grid of printable characters. Each
square block of the image becomes the character whose rendered glyph
coverage is closest to the block's average brightness.

Use "asciify shell <image>" for the interactive session or
"asciify render <image>" for a single conversion.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"asciify %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))

	log.SetOutput(colorable.NewColorableStderr())
	log.SetFormatter(&logrus.TextFormatter{ForceColors: isTerminal(os.Stderr)})
}

// addGlobalFlags defines the flags every subcommand accepts.
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "TOML config file")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.StringP("font", "f", "", "glyph font: inconsolata, basic, gomono or a .ttf path")
	fs.Int("sample-size", 0, "glyph sampling grid side length")
	fs.IntP("workers", "w", 0, "regions evaluated in parallel (1 = sequential)")
	fs.Int("fit", 0, "downscale the image to at most this many pixels wide first")
	fs.String("interp", "", "resampling used by --fit: area, linear or nearest")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	appConfig = cfg
	return nil
}

// loadConfig reads the config file named by --config, if any, and applies
// flags on top of it. Global flags override the file only when set
// explicitly. Command flags (render's --chars, --width and --out) carry
// their own defaults, which stand in for a config file when there is none.
func loadConfig(flags *pflag.FlagSet) (img2ascii.Config, error) {
	cfg := img2ascii.DefaultConfig()
	path, _ := flags.GetString("config")
	if path != "" {
		var err error
		cfg, err = img2ascii.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
	}

	set := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	fallback := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && (f.Changed || path == "")
	}

	if set("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if set("font") {
		cfg.Font, _ = flags.GetString("font")
	}
	if set("sample-size") {
		cfg.SampleSize, _ = flags.GetInt("sample-size")
	}
	if set("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if set("fit") {
		cfg.FitWidth, _ = flags.GetInt("fit")
	}
	if set("interp") {
		cfg.Interpolation, _ = flags.GetString("interp")
	}
	if fallback("chars") {
		cfg.InitialChars, _ = flags.GetString("chars")
	}
	if fallback("width") {
		cfg.CharsPerRow, _ = flags.GetInt("width")
	}
	if fallback("out") {
		cfg.Output, _ = flags.GetString("out")
	}
	return cfg, cfg.Validate()
}

// openImage loads the image at path, "-" meaning stdin, and applies the
// configured fit width.
func openImage(path string, cfg img2ascii.Config) (*imageutil.RGBAImage, error) {
	var (
		img *imageutil.RGBAImage
		err error
	)
	if path == "-" {
		img, err = imageutil.DecodeImage(os.Stdin)
	} else {
		img, err = imageutil.LoadImage(path)
	}
	if err != nil {
		return nil, err
	}
	if img.Width() == 0 || img.Height() == 0 {
		return nil, fmt.Errorf("image %s is empty", path)
	}
	interp, err := imageutil.ParseInterpolation(cfg.Interpolation)
	if err != nil {
		return nil, err
	}
	fitted := imageutil.FitWidth(img, cfg.FitWidth, interp)
	log.WithFields(logrus.Fields{
		"path":   path,
		"width":  fitted.Width(),
		"height": fitted.Height(),
	}).Debug("loaded image")
	return fitted, nil
}
