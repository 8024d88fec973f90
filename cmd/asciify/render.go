package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wbrown/img2ascii"
)

var renderCmd = &cobra.Command{
	Use:   "render <image>",
	Short: "Convert an image once and write the result",
	Long: `Converts the image with the given characters per row and writes the
character grid to stdout ("--out -") or to an HTML file.

Use "-" as the image to read it from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	addRenderFlags(renderCmd.Flags())
	rootCmd.AddCommand(renderCmd)
}

func addRenderFlags(fs *pflag.FlagSet) {
	fs.String("chars", "all", "character range: x, x-y, space or all")
	fs.Int("width", img2ascii.DefaultCharsPerRow, "characters per row")
	fs.StringP("out", "o", "-", "output: - for stdout or an .html path")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := appConfig

	img, err := openImage(args[0], cfg)
	if err != nil {
		return err
	}

	renderer, err := img2ascii.NewRendererFromConfig(cfg, img2ascii.WithLogger(log))
	if err != nil {
		return err
	}
	session, err := img2ascii.NewSession(img, renderer, cfg.CharsPerRow)
	if err != nil {
		return err
	}
	res := session.Resolution()
	if cfg.CharsPerRow != res.Current() {
		log.WithFields(logrus.Fields{
			"requested": cfg.CharsPerRow,
			"min":       res.Min(),
			"max":       res.Max(),
		}).Warnf("width clamped to %d", res.Current())
	}

	result, err := session.Render(context.Background())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if len(result.Skipped) > 0 {
		log.Warnf("skipped %d characters without glyphs", len(result.Skipped))
	}

	var out img2ascii.Output = img2ascii.ConsoleOutput{W: cmd.OutOrStdout()}
	if cfg.Output != "-" {
		if !strings.HasSuffix(strings.ToLower(cfg.Output), ".html") {
			return fmt.Errorf("output %q: only - or .html files are supported", cfg.Output)
		}
		out = img2ascii.HTMLOutput{Path: cfg.Output, Font: cfg.HTMLFont}
	}
	if err := out.Write(result.Grid); err != nil {
		return err
	}

	hits, entries := renderer.Cache().Stats().Hits, renderer.Cache().Len()
	log.WithFields(logrus.Fields{
		"rows":          result.Grid.Rows(),
		"cols":          result.Grid.Cols(),
		"block":         result.BlockSize,
		"cache_hits":    hits,
		"cache_entries": entries,
	}).Info("render complete")
	return nil
}
