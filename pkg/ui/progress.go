package ui

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/alantheprice/promptkit/pkg/console"
	"github.com/alantheprice/promptkit/pkg/utils"
)

// minBarCells is the narrowest bar drawn, however little room is left.
const minBarCells = 5

// maxFrames bounds how many times Process redraws the line.
const maxFrames = 1000

// ProgressOption configures a Progress.
type ProgressOption func(*Progress)

// WithWidth fixes the line width instead of using the terminal width.
func WithWidth(width int) ProgressOption {
	return func(p *Progress) { p.width = width }
}

// WithProgressHeader prefixes the line with a bold "header: ".
func WithProgressHeader(header string) ProgressOption {
	return func(p *Progress) { p.header = header }
}

// WithProgressConfig sets the glyphs and styles.
func WithProgressConfig(cfg Config) ProgressOption {
	return func(p *Progress) { p.config = cfg }
}

// WithProgressCursor replaces the stdout cursor.
func WithProgressCursor(cursor *console.Cursor) ProgressOption {
	return func(p *Progress) { p.cursor = cursor }
}

// WithProgressLogger sends progress events to logger.
func WithProgressLogger(logger Logger) ProgressOption {
	return func(p *Progress) { p.logger = logger }
}

// Progress draws a single progress line that each update overwrites.
type Progress struct {
	width  int
	header string
	config Config
	cursor *console.Cursor
	logger Logger
}

// NewProgress creates a progress line. Without WithWidth the terminal
// width is used, or 80 columns when it cannot be determined.
func NewProgress(opts ...ProgressOption) *Progress {
	p := &Progress{config: DefaultConfig()}
	for _, opt := range opts {
		opt(p)
	}
	if p.width <= 0 {
		p.width = utils.TerminalWidth()
	}
	if p.cursor == nil {
		p.cursor = console.NewTerminalCursor()
	}
	return p
}

// Width returns the line width in cells.
func (p *Progress) Width() int {
	return p.width
}

// Update redraws the line for step out of total.
func (p *Progress) Update(step, total int) error {
	line, err := p.Line(step, total)
	if err != nil {
		return err
	}
	return p.cursor.Print("\r" + line)
}

// Line composes the progress line for step out of total:
//
//	header: 042/100 ▐████      ▌ 042%
func (p *Progress) Line(step, total int) (string, error) {
	if total <= 0 {
		return "", fmt.Errorf("%w: total must be positive, got %d", ErrUsage, total)
	}
	if step < 0 || step > total {
		return "", fmt.Errorf("%w: step %d outside 0..%d", ErrUsage, step, total)
	}

	var prefix strings.Builder
	if p.header != "" {
		prefix.WriteString(p.config.style(p.header, "bold"))
		prefix.WriteString(": ")
	}
	fmt.Fprintf(&prefix, "%0*d/%d ", len(strconv.Itoa(total)), step, total)
	prefix.WriteString(p.config.Glyph(GlyphLeftEdge))

	suffix := p.config.Glyph(GlyphRightEdge) + fmt.Sprintf(" %03d%%", step*100/total)

	cells := max(p.width-console.VisibleLength(prefix.String()+suffix), minBarCells)
	filled := cells * step / total

	return prefix.String() +
		p.config.GlyphRun(GlyphBlock, filled) +
		strings.Repeat(" ", cells-filled) +
		suffix, nil
}

// Process calls fn for each item while drawing progress against total.
// The line is redrawn at most about a thousand times: every
// max(total/1000, 1) items and on the last one. Items past total are
// still processed but not drawn. The cursor is hidden while running and
// a newline ends the line on every exit path.
func Process[T any](p *Progress, items iter.Seq[T], total int, fn func(T) error) (err error) {
	if total <= 0 {
		return fmt.Errorf("%w: total must be positive, got %d", ErrUsage, total)
	}

	if err := p.cursor.Hide(); err != nil {
		return err
	}
	defer func() {
		showErr := p.cursor.Show()
		if printErr := p.cursor.Print("\n"); showErr == nil {
			showErr = printErr
		}
		if err == nil {
			err = showErr
		}
	}()

	if err := p.Update(0, total); err != nil {
		return err
	}

	every := max(total/maxFrames, 1)
	step := 0
	for item := range items {
		if fn != nil {
			if err := fn(item); err != nil {
				p.logf("progress stopped at %d/%d: %v", step, total, err)
				return err
			}
		}
		step++
		if step > total {
			continue
		}
		if step%every == 0 || step == total {
			if err := p.Update(step, total); err != nil {
				return err
			}
		}
	}
	p.logf("progress finished at %d/%d", step, total)
	return nil
}

// ProcessSlice is Process over a slice, with total taken from its length.
func ProcessSlice[T any](p *Progress, items []T, fn func(T) error) error {
	return Process(p, slices.Values(items), len(items), fn)
}

func (p *Progress) logf(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Logf(format, args...)
	}
}
