package img2ascii

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
	"os"
)

// Output presents a rendered grid.
type Output interface {
	Write(grid Grid) error
}

// ConsoleOutput writes the grid as plain text, one row per line.
type ConsoleOutput struct {
	W io.Writer
}

// Write implements Output.
func (c ConsoleOutput) Write(grid Grid) error {
	w := bufio.NewWriter(c.W)
	for _, row := range grid {
		if _, err := w.WriteString(string(row)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// DefaultHTMLFont is the font family used by HTMLOutput when none is set.
const DefaultHTMLFont = "Courier New"

var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ASCII Art</title>
</head>
<body style="margin:0; padding:0; background:#fff; color:#000">
<pre style="font-family:'{{.Font}}', monospace; font-size:{{.FontSize}}px; line-height:1; letter-spacing:0">
{{range .Rows}}{{.}}
{{end}}</pre>
</body>
</html>
`))

// HTMLOutput writes the grid into a standalone HTML document at Path.
type HTMLOutput struct {
	Path string
	Font string

	// FontSize in CSS pixels; 0 picks a size that keeps wide grids readable.
	FontSize int
}

// Write implements Output.
func (h HTMLOutput) Write(grid Grid) error {
	f, err := os.Create(h.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", h.Path, err)
	}
	if err := h.Render(f, grid); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Render writes the HTML document for grid to w.
func (h HTMLOutput) Render(w io.Writer, grid Grid) error {
	fontName := h.Font
	if fontName == "" {
		fontName = DefaultHTMLFont
	}
	size := h.FontSize
	if size <= 0 {
		size = 10
		if grid.Cols() > 200 {
			size = 4
		} else if grid.Cols() > 100 {
			size = 6
		}
	}

	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	data := struct {
		Font     string
		FontSize int
		Rows     []string
	}{fontName, size, rows}

	if err := htmlPage.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}
