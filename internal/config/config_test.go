package config

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/imagefx"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestDefaultHalftoneMatchesDriver(t *testing.T) {
	got := DefaultConfig().Halftone.Filter()
	want := imagefx.DefaultHalftoneConfig()
	const eps = 1e-12
	if math.Abs(got.CyanAngle-want.CyanAngle) > eps ||
		math.Abs(got.MagentaAngle-want.MagentaAngle) > eps ||
		math.Abs(got.YellowAngle-want.YellowAngle) > eps ||
		got.DotRadius != want.DotRadius {
		t.Errorf("halftone defaults = %+v, want %+v", got, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Filter = FilterHalftone
	cfg.Blur.Edge = "wrap"
	cfg.Unsharp.Threshold = 4
	cfg.Halftone.Cyan = 15
	cfg.Resample.ScaleX = 0.5

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	got, err := LoadFromReader(&buf)
	if err != nil {
		t.Fatalf("LoadFromReader() = %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromReaderKeepsDefaults(t *testing.T) {
	const doc = `
filter = "unsharp"

[unsharp]
amount = 1.5
`
	got, err := LoadFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Filter = FilterUnsharp
	want.Unsharp.Amount = 1.5
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("partial file mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", "[blur]\nsigma = 2\n", ErrUnknownKey},
		{"bad filter", `filter = "emboss"`, ErrInvalid},
		{"bad level", `log_level = "loud"`, ErrInvalid},
		{"bad edge", "[blur]\nedge = \"mirror\"\n", ErrInvalid},
		{"negative radius", "[unsharp]\nradius = -1\n", imagefx.ErrInvalidRadius},
		{"zero dot", "[halftone]\ndot_radius = 0\n", ErrInvalid},
		{"zero scale", "[resample]\nscale_y = 0\n", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadFromReader() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFromReaderSyntaxError(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("filter = ")); err == nil {
		t.Error("expected decode error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvFilter, FilterResample)

	cfg, err := LoadFromReader(strings.NewReader(`filter = "blur"`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Filter != FilterResample || cfg.LogLevel != "debug" {
		t.Errorf("overrides not applied: filter=%q level=%q", cfg.Filter, cfg.LogLevel)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Filter != FilterResample {
		t.Errorf("Load(\"\") filter = %q, want %q", cfg.Filter, FilterResample)
	}
}

func TestLoadDefaultsRejectsBadEnv(t *testing.T) {
	t.Setenv(EnvFilter, "emboss")

	cfg, err := Load("")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(\"\") error = %v, want ErrInvalid", err)
	}
	if cfg != nil {
		t.Errorf("Load(\"\") returned a config alongside the error: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte("[halftone]\ndot_radius = 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Halftone.DotRadius != 6 {
		t.Errorf("dot_radius = %v, want 6", cfg.Halftone.DotRadius)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseLevel(\"\") = %v", err)
	}
}

func TestResampleFilterMaps(t *testing.T) {
	r := ResampleConfig{ScaleX: 1, ScaleY: 2}
	got := r.Filter(3, 2)
	if got.Horizontal != nil {
		t.Errorf("unit scale produced a map: %v", got.Horizontal)
	}
	if diff := cmp.Diff([]float64{0, 2, 4}, got.Vertical); diff != "" {
		t.Errorf("vertical map mismatch (-want +got):\n%s", diff)
	}
}

func TestBlurFilterEdge(t *testing.T) {
	b := BlurConfig{Radius: 2, Edge: "Wrap"}
	got, err := b.Filter()
	if err != nil {
		t.Fatal(err)
	}
	if got.Edge != imagefx.EdgeWrap {
		t.Errorf("edge = %v, want wrap", got.Edge)
	}
}
