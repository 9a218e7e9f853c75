package imagefx

// Progress receives work-unit notifications from a running filter.
//
// Start is called once with the total number of units. UnitDone is called
// once per completed unit (a row or column pass). Once Start has been
// called, Finished is called exactly once when the filter returns, whether
// it succeeded or not. Calls rejected before any work starts report nothing.
// Calls arrive on the goroutine running the filter.
type Progress interface {
	Start(units int)
	UnitDone()
	Finished()
}

// ProgressFunc adapts a function to Progress. It is called with the number
// of completed units and the total after every unit.
type ProgressFunc func(done, total int)

// Track returns a Progress that forwards counts to f.
func (f ProgressFunc) Track() Progress {
	return &funcProgress{fn: f}
}

type funcProgress struct {
	fn          ProgressFunc
	done, total int
}

func (p *funcProgress) Start(units int) {
	p.done, p.total = 0, units
	p.fn(0, units)
}

func (p *funcProgress) UnitDone() {
	p.done++
	p.fn(p.done, p.total)
}

func (p *funcProgress) Finished() {}

type nopProgress struct{}

func (nopProgress) Start(int) {}
func (nopProgress) UnitDone() {}
func (nopProgress) Finished() {}
