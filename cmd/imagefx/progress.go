package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// bar renders a single-line progress bar, redrawn in place.
type bar struct {
	w     io.Writer
	name  string
	width int

	done, total int
	drawn       int
}

func (b *bar) Start(units int) {
	b.done, b.total, b.drawn = 0, units, -1
	b.draw()
}

func (b *bar) UnitDone() {
	b.done++
	b.draw()
}

func (b *bar) Finished() {
	b.drawn = -1
	b.draw()
	fmt.Fprintln(b.w)
}

func (b *bar) draw() {
	filled := b.width
	if b.total > 0 {
		filled = b.width * b.done / b.total
	}
	if filled == b.drawn {
		return
	}
	b.drawn = filled
	fmt.Fprintf(b.w, "\r%-10s [%s%s] %3d%%", b.name,
		strings.Repeat("=", filled), strings.Repeat(" ", b.width-filled), 100*filled/b.width)
}

// milestones logs every quarter of the work.
type milestones struct {
	logger *slog.Logger
	name   string

	done, total int
	next        int
}

func (m *milestones) Start(units int) {
	m.done, m.total, m.next = 0, units, 25
}

func (m *milestones) UnitDone() {
	m.done++
	if m.total == 0 {
		return
	}
	for pct := 100 * m.done / m.total; pct >= m.next && m.next < 100; m.next += 25 {
		m.logger.Info("progress", "filter", m.name, "percent", m.next)
	}
}

func (m *milestones) Finished() {
	m.logger.Info("progress", "filter", m.name, "percent", 100)
}
