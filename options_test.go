package imagefx

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if _, ok := o.progress.(nopProgress); !ok {
		t.Errorf("default progress = %T, want nopProgress", o.progress)
	}
	if o.logger != Logger() {
		t.Error("default logger is not the package logger")
	}
}

func TestWithProgressNilKeepsDefault(t *testing.T) {
	o := defaultOptions()
	WithProgress(nil)(&o)
	if o.progress == nil {
		t.Fatal("WithProgress(nil) cleared the progress sink")
	}

	p := &recordingProgress{t: t}
	WithProgress(p)(&o)
	if o.progress != p {
		t.Error("WithProgress did not install the sink")
	}
}

func TestWithLoggerOption(t *testing.T) {
	o := defaultOptions()
	WithLogger(nil)(&o)
	if o.logger == nil {
		t.Fatal("WithLogger(nil) cleared the logger")
	}

	l := slog.Default()
	WithLogger(l)(&o)
	if o.logger != l {
		t.Error("WithLogger did not install the logger")
	}
}
