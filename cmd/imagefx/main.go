// Command imagefx applies one imagefx filter to an image file.
//
// Usage:
//
//	imagefx -filter blur|unsharp|halftone|resample -in src.png -out dst.png
//	        [-config presets.toml] [-radius r] [-amount a] [-threshold t]
//	        [-dot r] [-scale s] [-v]
//
// Flags given on the command line override the presets file. Input formats
// are PNG, JPEG, GIF, BMP, TIFF and WebP; the output format follows the
// extension of -out.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/disintegration/imaging"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/imagefx"
	"github.com/gogpu/imagefx/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "imagefx:", err)
		}
		os.Exit(1)
	}
}

type options struct {
	filter     string
	in, out    string
	configPath string
	radius     float64
	amount     float64
	threshold  int
	dot        float64
	scale      float64
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, map[string]bool, error) {
	var o options
	fs := flag.NewFlagSet("imagefx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.filter, "filter", "", "filter to apply: blur, unsharp, halftone or resample")
	fs.StringVar(&o.in, "in", "", "source image")
	fs.StringVar(&o.out, "out", "", "destination image")
	fs.StringVar(&o.configPath, "config", "", "TOML presets file")
	fs.Float64Var(&o.radius, "radius", 0, "blur or unsharp radius in pixels")
	fs.Float64Var(&o.amount, "amount", 0, "unsharp amount")
	fs.IntVar(&o.threshold, "threshold", 0, "unsharp threshold")
	fs.Float64Var(&o.dot, "dot", 0, "halftone dot radius in pixels")
	fs.Float64Var(&o.scale, "scale", 0, "resample scale for both axes")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if o.in == "" || o.out == "" {
		fs.Usage()
		return nil, nil, errors.New("both -in and -out are required")
	}
	return &o, set, nil
}

// applyFlags copies explicitly set flags over the loaded presets.
func applyFlags(cfg *config.Config, o *options, set map[string]bool) error {
	if set["filter"] {
		cfg.Filter = o.filter
	}
	if set["v"] && o.verbose {
		cfg.LogLevel = "debug"
	}
	if set["radius"] {
		cfg.Blur.Radius = o.radius
		cfg.Unsharp.Radius = o.radius
	}
	if set["amount"] {
		cfg.Unsharp.Amount = o.amount
	}
	if set["threshold"] {
		cfg.Unsharp.Threshold = o.threshold
	}
	if set["dot"] {
		cfg.Halftone.DotRadius = o.dot
	}
	if set["scale"] {
		cfg.Resample.ScaleX = o.scale
		cfg.Resample.ScaleY = o.scale
	}
	return cfg.Validate()
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	o, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, o, set); err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	imagefx.SetLogger(logger)

	img, err := imaging.Open(o.in, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open %s: %w", o.in, err)
	}
	src := imagefx.FromImage(img)
	dst := imagefx.NewPixelBuffer(src.Width, src.Height)

	p := message.NewPrinter(language.English)
	logger.Info(p.Sprintf("%s: %d x %d, %d pixels", cfg.Filter, src.Width, src.Height, src.Width*src.Height))

	start := time.Now()
	if err := apply(ctx, cfg, src, dst, newProgress(stderr, cfg.Filter, logger)); err != nil {
		return err
	}
	logger.Info(p.Sprintf("%s done in %v", cfg.Filter, time.Since(start).Round(time.Millisecond)))

	if err := imaging.Save(dst.NRGBA(), o.out); err != nil {
		return fmt.Errorf("save %s: %w", o.out, err)
	}
	return nil
}

func apply(ctx context.Context, cfg *config.Config, src, dst *imagefx.PixelBuffer, progress imagefx.Progress) error {
	opt := imagefx.WithProgress(progress)
	switch cfg.Filter {
	case config.FilterBlur:
		c, err := cfg.Blur.Filter()
		if err != nil {
			return err
		}
		return imagefx.Blur(ctx, src, dst, c, opt)
	case config.FilterUnsharp:
		c, err := cfg.Unsharp.Filter()
		if err != nil {
			return err
		}
		return imagefx.Unsharp(ctx, src, dst, c, opt)
	case config.FilterHalftone:
		return imagefx.ColorHalftone(ctx, src, dst, cfg.Halftone.Filter(), opt)
	case config.FilterResample:
		return imagefx.Resample(ctx, src, dst, cfg.Resample.Filter(src.Width, src.Height), opt)
	}
	return fmt.Errorf("unknown filter %q", cfg.Filter)
}

// newProgress draws a bar on terminals and logs milestones elsewhere.
func newProgress(w io.Writer, name string, logger *slog.Logger) imagefx.Progress {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return &bar{w: w, name: name, width: 50}
	}
	return &milestones{logger: logger, name: name}
}
