// Package config loads filter presets for the imagefx command from TOML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/gogpu/imagefx"
)

// Configuration errors.
var (
	// ErrInvalid is returned by Validate for out-of-range settings.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey is returned when a file sets keys this package does not know.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Filter names accepted by the command.
const (
	FilterBlur     = "blur"
	FilterUnsharp  = "unsharp"
	FilterHalftone = "halftone"
	FilterResample = "resample"
)

// Filters lists every filter name in display order.
var Filters = []string{FilterBlur, FilterUnsharp, FilterHalftone, FilterResample}

// Config is the root of a presets file.
type Config struct {
	LogLevel string `toml:"log_level"`
	Filter   string `toml:"filter"`

	Blur     BlurConfig     `toml:"blur"`
	Unsharp  UnsharpConfig  `toml:"unsharp"`
	Halftone HalftoneConfig `toml:"halftone"`
	Resample ResampleConfig `toml:"resample"`
}

// BlurConfig mirrors imagefx.BlurConfig with a named edge mode.
type BlurConfig struct {
	Radius      float64 `toml:"radius"`
	Alpha       bool    `toml:"alpha"`
	Premultiply bool    `toml:"premultiply"`
	Edge        string  `toml:"edge"`
}

// UnsharpConfig mirrors imagefx.UnsharpConfig with a named edge mode.
type UnsharpConfig struct {
	Radius      float64 `toml:"radius"`
	Amount      float64 `toml:"amount"`
	Threshold   int     `toml:"threshold"`
	Alpha       bool    `toml:"alpha"`
	Premultiply bool    `toml:"premultiply"`
	Edge        string  `toml:"edge"`
}

// HalftoneConfig holds the dot radius and screen angles in degrees.
type HalftoneConfig struct {
	DotRadius float64 `toml:"dot_radius"`
	Cyan      float64 `toml:"cyan"`
	Magenta   float64 `toml:"magenta"`
	Yellow    float64 `toml:"yellow"`
}

// ResampleConfig scales the image about its top-left corner. A scale of 1
// leaves that axis alone.
type ResampleConfig struct {
	ScaleX float64 `toml:"scale_x"`
	ScaleY float64 `toml:"scale_y"`
}

// DefaultConfig returns the built-in presets.
func DefaultConfig() *Config {
	blur := imagefx.DefaultBlurConfig(3)
	unsharp := imagefx.DefaultUnsharpConfig()
	return &Config{
		LogLevel: "info",
		Filter:   FilterBlur,
		Blur: BlurConfig{
			Radius:      blur.Radius,
			Alpha:       blur.Alpha,
			Premultiply: blur.Premultiply,
			Edge:        blur.Edge.String(),
		},
		Unsharp: UnsharpConfig{
			Radius:      unsharp.Radius,
			Amount:      unsharp.Amount,
			Threshold:   unsharp.Threshold,
			Alpha:       unsharp.Alpha,
			Premultiply: unsharp.Premultiply,
			Edge:        unsharp.Edge.String(),
		},
		Halftone: HalftoneConfig{
			DotRadius: 2,
			Cyan:      108,
			Magenta:   162,
			Yellow:    90,
		},
		Resample: ResampleConfig{
			ScaleX: 1,
			ScaleY: 1,
		},
	}
}

// Validate checks every section, not only the selected filter.
func (c *Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if !isFilter(c.Filter) {
		errs = append(errs, fmt.Errorf("%w: filter %q (want one of %s)",
			ErrInvalid, c.Filter, strings.Join(Filters, ", ")))
	}
	if _, err := c.Blur.Filter(); err != nil {
		errs = append(errs, fmt.Errorf("blur: %w", err))
	}
	if _, err := c.Unsharp.Filter(); err != nil {
		errs = append(errs, fmt.Errorf("unsharp: %w", err))
	}
	if c.Halftone.DotRadius <= 0 || !finite(c.Halftone.DotRadius) {
		errs = append(errs, fmt.Errorf("%w: halftone.dot_radius %v", ErrInvalid, c.Halftone.DotRadius))
	}
	for _, a := range []float64{c.Halftone.Cyan, c.Halftone.Magenta, c.Halftone.Yellow} {
		if !finite(a) {
			errs = append(errs, fmt.Errorf("%w: halftone angle %v", ErrInvalid, a))
		}
	}
	if c.Resample.ScaleX <= 0 || c.Resample.ScaleY <= 0 || !finite(c.Resample.ScaleX) || !finite(c.Resample.ScaleY) {
		errs = append(errs, fmt.Errorf("%w: resample scale %vx%v", ErrInvalid, c.Resample.ScaleX, c.Resample.ScaleY))
	}
	return errors.Join(errs...)
}

// Filter converts the section to driver settings.
func (b BlurConfig) Filter() (imagefx.BlurConfig, error) {
	edge, err := ParseEdge(b.Edge)
	if err != nil {
		return imagefx.BlurConfig{}, err
	}
	cfg := imagefx.BlurConfig{
		Radius:      b.Radius,
		Alpha:       b.Alpha,
		Premultiply: b.Premultiply,
		Edge:        edge,
	}
	return cfg, cfg.Validate()
}

// Filter converts the section to driver settings.
func (u UnsharpConfig) Filter() (imagefx.UnsharpConfig, error) {
	edge, err := ParseEdge(u.Edge)
	if err != nil {
		return imagefx.UnsharpConfig{}, err
	}
	cfg := imagefx.UnsharpConfig{
		Radius:      u.Radius,
		Amount:      u.Amount,
		Threshold:   u.Threshold,
		Alpha:       u.Alpha,
		Premultiply: u.Premultiply,
		Edge:        edge,
	}
	return cfg, cfg.Validate()
}

// Filter converts degrees to radians.
func (h HalftoneConfig) Filter() imagefx.HalftoneConfig {
	return imagefx.HalftoneConfig{
		DotRadius:    h.DotRadius,
		CyanAngle:    radians(h.Cyan),
		MagentaAngle: radians(h.Magenta),
		YellowAngle:  radians(h.Yellow),
	}
}

// Filter builds the forward maps for a width x height image.
func (r ResampleConfig) Filter(width, height int) imagefx.ResampleConfig {
	var cfg imagefx.ResampleConfig
	if r.ScaleX != 1 {
		cfg.Horizontal = imagefx.ScaleMap(width, r.ScaleX, 0)
	}
	if r.ScaleY != 1 {
		cfg.Vertical = imagefx.ScaleMap(height, r.ScaleY, 0)
	}
	return cfg
}

// ParseEdge maps "clamp" or "wrap" to an edge mode. Empty means clamp.
func ParseEdge(s string) (imagefx.EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", imagefx.EdgeClamp.String():
		return imagefx.EdgeClamp, nil
	case imagefx.EdgeWrap.String():
		return imagefx.EdgeWrap, nil
	}
	return 0, fmt.Errorf("%w: edge %q", ErrInvalid, s)
}

// ParseLevel maps a log level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
	return l, nil
}

func isFilter(name string) bool {
	for _, f := range Filters {
		if f == name {
			return true
		}
	}
	return false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
