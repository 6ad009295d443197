package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// pipeName selects standard output as the destination.
const pipeName = "-"

type options struct {
	props   qrcode.Props
	out     string
	preview bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("qrgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: qrgen [flags] [content]")
		fs.PrintDefaults()
	}

	var (
		opts   options
		level  string
		format string
	)
	def := qrcode.DefaultProps()
	fs.StringVar(&opts.props.Content, "content", def.Content, "text to encode")
	fs.IntVar(&opts.props.Size, "size", def.Size, "image size in pixels")
	fs.StringVar(&level, "level", def.Level.String(), "error correction level: L, M, Q or H")
	fs.BoolVar(&opts.props.SVG, "svg", def.SVG, "write SVG instead of a raster image")
	fs.BoolVar(&opts.props.Padding, "padding", def.Padding, "add a one-module margin")
	fs.StringVar(&format, "format", "", "raster format: png, jpeg, gif, bmp or tiff (implies -svg=false)")
	fs.StringVar(&opts.out, "out", pipeName, `output file, or "-" for stdout`)
	fs.BoolVar(&opts.preview, "preview", false, "print a text preview instead of image data")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		opts.props.Content = strings.Join(fs.Args(), " ")
	}

	var err error
	if opts.props.Level, err = qrcode.ParseLevel(level); err != nil {
		fmt.Fprintln(stderr, "qrgen:", err)
		return opts, err
	}
	if format != "" {
		if opts.props.Format, err = qrcode.ParseFormat(format); err != nil {
			fmt.Fprintln(stderr, "qrgen:", err)
			return opts, err
		}
		svgSet := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "svg" {
				svgSet = true
			}
		})
		if !svgSet {
			opts.props.SVG = false
		}
	}

	opts.props = opts.props.Normalize()
	return opts, nil
}

// generate writes the rendering to opts.out. Binary output is never written
// to a terminal; a text preview is printed instead.
func generate(opts options, stdout io.Writer, stdoutIsTerminal bool) error {
	renderer := qrcode.NewRenderer()

	toStdout := opts.out == "" || opts.out == pipeName
	if opts.preview || (toStdout && stdoutIsTerminal && !opts.props.SVG) {
		m, err := renderer.Modules(opts.props)
		if err != nil {
			return err
		}
		return preview(stdout, m)
	}

	res, err := renderer.Render(context.Background(), opts.props)
	if err != nil {
		return err
	}

	if toStdout {
		_, err := io.Copy(stdout, bytes.NewReader(res.Body))
		return err
	}

	if err := os.WriteFile(opts.out, res.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	return nil
}

// quietZone is the light border, in modules, around the preview.
const quietZone = 2

var errEmptyPreview = errors.New("nothing to preview")

// preview prints m with half-block characters, two module rows per line.
// Light modules are drawn as blocks so the code scans on dark terminals.
func preview(w io.Writer, m qrcode.Matrix) error {
	n := m.Size()
	if n == 0 {
		return errEmptyPreview
	}

	light := func(x, y int) bool {
		x, y = x-quietZone, y-quietZone
		if x < 0 || y < 0 || x >= n || y >= n {
			return true
		}
		return !m.Dark(x, y)
	}

	total := n + 2*quietZone
	var b strings.Builder
	for y := 0; y < total; y += 2 {
		for x := range total {
			top := light(x, y)
			bottom := y+1 < total && light(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
