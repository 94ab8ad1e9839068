package ui

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alantheprice/promptkit/pkg/console"
)

// KeyReader supplies keypresses to a selector. *console.KeyDecoder is the
// terminal implementation.
type KeyReader interface {
	ReadKey(raw bool) (console.Key, error)
}

// Logger receives debug events from prompts. *utils.Logger satisfies it.
type Logger interface {
	Logf(format string, args ...interface{})
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithMultiSelect lets the user toggle any number of rows with space.
func WithMultiSelect() SelectorOption {
	return func(s *Selector) { s.multi = true }
}

// WithSkip appends a "[s]kip" row to a single-select prompt.
func WithSkip() SelectorOption {
	return func(s *Selector) { s.skip = true }
}

// WithQuit appends a "[q]uit" row to a single-select prompt.
func WithQuit() SelectorOption {
	return func(s *Selector) { s.quit = true }
}

// WithHeader draws a bold header line above the rows.
func WithHeader(header string) SelectorOption {
	return func(s *Selector) { s.header = header }
}

// WithConfig sets the glyphs and styles.
func WithConfig(cfg Config) SelectorOption {
	return func(s *Selector) { s.config = cfg }
}

// WithKeyReader replaces the stdin key decoder.
func WithKeyReader(keys KeyReader) SelectorOption {
	return func(s *Selector) { s.keys = keys }
}

// WithCursor replaces the stdout cursor.
func WithCursor(cursor *console.Cursor) SelectorOption {
	return func(s *Selector) { s.cursor = cursor }
}

// WithLogger sends key and outcome events to logger.
func WithLogger(logger Logger) SelectorOption {
	return func(s *Selector) { s.logger = logger }
}

// skipValue and quitValue mark the synthetic trailing rows.
type (
	skipValue struct{}
	quitValue struct{}
)

// Selector draws a list of choices once and then repaints only the glyph
// cells that change as the user moves and toggles. Between keypresses
// the cursor rests at column 0 of the highlighted row.
type Selector struct {
	choices []Displayable
	rows    []Displayable
	multi   bool
	skip    bool
	quit    bool
	header  string
	config  Config
	keys    KeyReader
	cursor  *console.Cursor
	logger  Logger

	mnemonics map[string]int
	navKeys   bool

	// per-prompt state
	line     int
	selected map[int]bool
}

// NewSelector creates a selector over choices. Duplicate choices are
// dropped, keeping the first. Duplicate mnemonics, and skip or quit on a
// multi-select prompt, are configuration errors.
func NewSelector(choices []Displayable, opts ...SelectorOption) (*Selector, error) {
	s := &Selector{config: DefaultConfig()}
	for _, opt := range opts {
		opt(s)
	}
	if s.multi && (s.skip || s.quit) {
		return nil, fmt.Errorf("%w: skip and quit are only available on single-select prompts", ErrConfig)
	}

	seen := make(map[string]bool, len(choices))
	for _, c := range choices {
		if c == nil {
			continue
		}
		key := displayKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		s.choices = append(s.choices, c)
	}

	s.rows = append([]Displayable{}, s.choices...)
	if s.skip {
		s.rows = append(s.rows, MustChoice(skipValue{}, "skip", "[s]", "dark"))
	}
	if s.quit {
		s.rows = append(s.rows, MustChoice(quitValue{}, "quit", "[q]", "dark"))
	}

	s.mnemonics = make(map[string]int)
	s.navKeys = true
	for i, row := range s.rows {
		m := mnemonicOf(row)
		if m == "" {
			continue
		}
		if prev, ok := s.mnemonics[m]; ok {
			return nil, fmt.Errorf("%w: mnemonic %q used by %q and %q", ErrConfig, m, s.rows[prev].Label(), row.Label())
		}
		s.mnemonics[m] = i
		if i < len(s.choices) {
			s.navKeys = false
		}
	}

	if s.keys == nil {
		s.keys = console.NewStdinKeyDecoder()
	}
	if s.cursor == nil {
		s.cursor = console.NewTerminalCursor()
	}
	return s, nil
}

// Prompt draws the list and blocks until the user commits or cancels.
// The returned error is reserved for terminal I/O failures; cancel, skip
// and quit are reported through Result.Status.
func (s *Selector) Prompt() (result Result, err error) {
	if len(s.choices) == 0 {
		return Result{Status: StatusCommitted, Index: -1}, nil
	}

	s.line = 0
	s.selected = make(map[int]bool)

	if err := s.cursor.Hide(); err != nil {
		return Result{Status: StatusCancelled, Index: -1}, err
	}
	defer func() {
		if ferr := s.finish(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	if err := s.render(); err != nil {
		return Result{Status: StatusCancelled, Index: -1}, err
	}

	for {
		key, err := s.keys.ReadKey(false)
		if err != nil {
			return Result{Status: StatusCancelled, Index: -1}, fmt.Errorf("failed to read key: %w", err)
		}
		s.logf("selector key %q at row %d", string(key), s.line)

		done, result, err := s.handleKey(key)
		if err != nil {
			return Result{Status: StatusCancelled, Index: -1}, err
		}
		if done {
			s.logf("selector finished: %s %v", result.Status, result.Indices)
			return result, nil
		}
	}
}

// handleKey applies one keypress. done reports that the prompt is over.
func (s *Selector) handleKey(key console.Key) (done bool, result Result, err error) {
	switch {
	case key == console.KeyUp || (s.navKeys && key == "k"):
		return false, Result{}, s.moveHighlight(-1)
	case key == console.KeyDown || (s.navKeys && key == "j"):
		return false, Result{}, s.moveHighlight(1)
	case key == console.KeySpace && s.multi:
		return false, Result{}, s.toggle()
	case key == console.KeyLF || key == console.KeyNL:
		return true, s.commit(), nil
	case isCancelKey(key):
		return true, Result{Status: StatusCancelled, Index: -1}, nil
	}

	index, ok := s.mnemonicRow(key)
	if !ok {
		return false, Result{}, nil
	}
	if index != s.line {
		return false, Result{}, s.moveHighlight(index - s.line)
	}
	if s.multi {
		return false, Result{}, s.toggle()
	}
	return true, s.commit(), nil
}

func isCancelKey(key console.Key) bool {
	switch key {
	case console.KeyCtrlC, console.KeyCtrlD, console.KeyCtrlZ, console.KeyEscape:
		return true
	}
	return key.IsEscapeSequence()
}

// mnemonicRow returns the row whose mnemonic matches a single-character key.
func (s *Selector) mnemonicRow(key console.Key) (int, bool) {
	if utf8.RuneCountInString(string(key)) != 1 {
		return 0, false
	}
	index, ok := s.mnemonics[foldString(string(key))]
	return index, ok
}

func (s *Selector) commit() Result {
	if s.multi {
		indices := make([]int, 0, len(s.selected))
		for i := range s.selected {
			indices = append(indices, i)
		}
		sort.Ints(indices)
		chosen := make([]Displayable, len(indices))
		for i, index := range indices {
			chosen[i] = s.rows[index]
		}
		return Result{Status: StatusCommitted, Index: -1, Indices: indices, Choices: chosen}
	}

	switch s.rows[s.line].Value().(type) {
	case skipValue:
		return Result{Status: StatusSkipped, Index: -1}
	case quitValue:
		return Result{Status: StatusQuit, Index: -1}
	}
	return Result{
		Status:  StatusCommitted,
		Index:   s.line,
		Indices: []int{s.line},
		Choices: []Displayable{s.rows[s.line]},
	}
}

// render draws the header and every row, then returns to the first row.
func (s *Selector) render() error {
	if s.config.EraseScreen {
		if err := s.cursor.EraseScreen(); err != nil {
			return err
		}
	}
	if s.header != "" {
		header := s.header
		if !strings.HasSuffix(header, ":") {
			header += ":"
		}
		if err := s.cursor.Print(s.config.style(header, "bold") + "\n"); err != nil {
			return err
		}
	}
	for i := range s.rows {
		if err := s.cursor.Print(s.rowLine(i) + "\n"); err != nil {
			return err
		}
	}
	return s.cursor.Move(-len(s.rows), 0)
}

// rowLine is the full text of row i as first drawn.
func (s *Selector) rowLine(i int) string {
	arrow := s.blankArrow()
	if i == s.line {
		arrow = s.config.Glyph(GlyphArrow)
	}
	label := s.rows[i].Render(!s.config.Plain)
	if s.multi {
		return arrow + s.config.Glyph(GlyphUnselected) + " " + label
	}
	return " " + arrow + " " + label
}

// arrowLead is what precedes the arrow cell on a row.
func (s *Selector) arrowLead() string {
	if s.multi {
		return ""
	}
	return " "
}

func (s *Selector) arrowWidth() int {
	return console.VisibleLength(s.config.Glyph(GlyphArrow))
}

func (s *Selector) blankArrow() string {
	return strings.Repeat(" ", s.arrowWidth())
}

// moveHighlight moves the highlight by distance rows, wrapping around.
// Only the two arrow cells are redrawn.
func (s *Selector) moveHighlight(distance int) error {
	n := len(s.rows)
	target := ((s.line+distance)%n + n) % n
	offset := target - s.line
	if offset == 0 {
		return nil
	}

	lead := s.arrowLead()
	cells := console.VisibleLength(lead) + s.arrowWidth()

	if err := s.cursor.Print(lead + s.blankArrow()); err != nil {
		return err
	}
	if err := s.cursor.Move(offset, -cells); err != nil {
		return err
	}
	if err := s.cursor.Print(lead + s.config.Glyph(GlyphArrow)); err != nil {
		return err
	}
	s.line = target
	return s.cursor.Move(0, -cells)
}

// toggle flips the selection of the highlighted row and redraws its
// toggle cell.
func (s *Selector) toggle() error {
	if s.selected[s.line] {
		delete(s.selected, s.line)
	} else {
		s.selected[s.line] = true
	}

	glyph := s.config.Glyph(GlyphUnselected)
	if s.selected[s.line] {
		glyph = s.config.Glyph(GlyphSelected)
	}
	offset := s.arrowWidth()
	if err := s.cursor.Move(0, offset); err != nil {
		return err
	}
	if err := s.cursor.Print(glyph); err != nil {
		return err
	}
	return s.cursor.Move(0, -(offset + console.VisibleLength(glyph)))
}

// finish leaves the cursor visible at column 0 below the list, or on a
// cleared screen.
func (s *Selector) finish() error {
	var err error
	if s.config.EraseScreen {
		err = s.cursor.EraseScreen()
	} else {
		err = s.cursor.Move(len(s.rows)-s.line, 0)
	}
	if showErr := s.cursor.Show(); err == nil {
		err = showErr
	}
	return err
}

func (s *Selector) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Logf(format, args...)
	}
}
