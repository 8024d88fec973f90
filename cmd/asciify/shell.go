package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell <image>",
	Short: "Start an interactive session on an image",
	Long: `Starts the interactive shell. Commands:

  chars            list the active characters
  add <range>      add characters (x, x-y, space, all)
  remove <range>   remove characters
  res up|down      double or halve the characters per row
  console          send the next render to the console
  render           render (to the HTML file unless "console" was given)
  exit             leave the shell`,
	Args: cobra.ExactArgs(1),
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	htmlOut := img2ascii.HTMLOutput{Path: cfg.Output, Font: cfg.HTMLFont}
	sh := shell.New(session, os.Stdin, os.Stdout, htmlOut, log)
	sh.Prompt = isTerminal(os.Stdin)
	return sh.Run(ctx)
}
