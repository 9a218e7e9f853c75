package imagefx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Call errors.
var (
	// ErrNilRegion is returned when a source or destination region is nil.
	ErrNilRegion = errors.New("imagefx: nil region")

	// ErrSizeMismatch is returned when source and destination differ in size.
	ErrSizeMismatch = errors.New("imagefx: source and destination sizes differ")
)

// run carries the per-call state shared by every filter driver.
type run struct {
	ctx      context.Context
	op       string
	width    int
	height   int
	progress Progress
	logger   *slog.Logger
}

// newRun validates the regions and resolves options. Nothing is reported
// to Progress until start is called.
func newRun(ctx context.Context, op string, src, dst Region, opts []Option) (*run, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if src == nil || dst == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilRegion)
	}
	w, h := src.Size()
	dw, dh := dst.Size()
	if w != dw || h != dh {
		return nil, fmt.Errorf("%s: %w: source %dx%d, destination %dx%d",
			op, ErrSizeMismatch, w, h, dw, dh)
	}
	return &run{
		ctx:      ctx,
		op:       op,
		width:    w,
		height:   h,
		progress: o.progress,
		logger:   o.logger.With("op", op),
	}, nil
}

func (r *run) empty() bool {
	return r.width <= 0 || r.height <= 0
}

func (r *run) start(units int) {
	r.logger.Debug("imagefx: start", "width", r.width, "height", r.height, "units", units)
	r.progress.Start(units)
}

// finish reports completion and logs abandoned calls. It returns err.
func (r *run) finish(err error) error {
	r.progress.Finished()
	if err != nil {
		r.logger.Warn("imagefx: abandoned", "err", err)
		return err
	}
	r.logger.Debug("imagefx: done")
	return nil
}

// loop calls fn for 0..n-1, checking for cancellation before each unit and
// reporting each completed one.
func (r *run) loop(n int, fn func(i int)) error {
	for i := 0; i < n; i++ {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		fn(i)
		r.progress.UnitDone()
	}
	return nil
}
