package ui

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/alantheprice/promptkit/pkg/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asciiPlain() Config {
	cfg := ASCIIConfig()
	cfg.Plain = true
	return cfg
}

func newTestProgress(opts ...ProgressOption) *Progress {
	cursor, _ := testTerminal()
	return NewProgress(append([]ProgressOption{WithProgressConfig(asciiPlain()), WithProgressCursor(cursor)}, opts...)...)
}

func TestProgressLine(t *testing.T) {
	tests := []struct {
		name   string
		header string
		step   int
		total  int
		width  int
		want   string
	}{
		{"half", "", 5, 10, 40, "05/10 |" + strings.Repeat("#", 13) + strings.Repeat(" ", 14) + "| 050%"},
		{"empty", "", 0, 10, 40, "00/10 |" + strings.Repeat(" ", 27) + "| 000%"},
		{"full", "", 10, 10, 40, "10/10 |" + strings.Repeat("#", 27) + "| 100%"},
		{"header", "Copy", 1, 4, 30, "Copy: 1/4 |" + strings.Repeat("#", 3) + strings.Repeat(" ", 10) + "| 025%"},
		{"minimum bar", "", 1, 2, 10, "1/2 |" + "##" + "   " + "| 050%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProgress(WithWidth(tt.width), WithProgressHeader(tt.header))
			line, err := p.Line(tt.step, tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestProgressLineFitsWidth(t *testing.T) {
	cursor, _ := testTerminal()
	cfg := ASCIIConfig()
	cfg.SetStyles([]string{"green"}, []string{"magenta", "bold"})
	p := NewProgress(WithWidth(60), WithProgressHeader("Styled"), WithProgressConfig(cfg), WithProgressCursor(cursor))
	for step := 0; step <= 7; step++ {
		line, err := p.Line(step, 7)
		require.NoError(t, err)
		assert.Equal(t, 60, console.VisibleLength(line), "step %d", step)
	}
}

func TestProgressFilledCellsMonotonic(t *testing.T) {
	p := newTestProgress(WithWidth(50))
	const total = 37

	prev := -1
	for step := 0; step <= total; step++ {
		line, err := p.Line(step, total)
		require.NoError(t, err)
		filled := strings.Count(line, "#")
		assert.GreaterOrEqual(t, filled, prev, "step %d", step)
		prev = filled

		bar := line[strings.Index(line, "|")+1 : strings.LastIndex(line, "|")]
		if step == total {
			assert.Equal(t, len(bar), filled, "full bar at the last step")
		} else {
			assert.Less(t, filled, len(bar), "step %d", step)
		}
	}
}

func TestProgressUsageErrors(t *testing.T) {
	cursor, buf := testTerminal()
	p := NewProgress(WithWidth(40), WithProgressCursor(cursor))

	assert.ErrorIs(t, p.Update(0, 0), ErrUsage)
	assert.ErrorIs(t, p.Update(-1, 10), ErrUsage)
	assert.ErrorIs(t, p.Update(11, 10), ErrUsage)
	assert.Zero(t, buf.Len())
}

func TestProgressUpdateOverwritesLine(t *testing.T) {
	cursor, buf := testTerminal()
	p := NewProgress(WithWidth(30), WithProgressConfig(asciiPlain()), WithProgressCursor(cursor))

	require.NoError(t, p.Update(1, 3))
	require.NoError(t, p.Update(2, 3))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\r"))
	assert.NotContains(t, out, "\n")

	scr := replay(out)
	require.Len(t, scr.text(), 1)
	assert.True(t, strings.HasPrefix(scr.text()[0], "2/3 |"))
}

func TestProcessThrottlesFrames(t *testing.T) {
	cursor, buf := testTerminal()
	p := NewProgress(WithWidth(40), WithProgressConfig(asciiPlain()), WithProgressCursor(cursor))

	items := make([]int, 5000)
	sum := 0
	err := ProcessSlice(p, items, func(int) error { sum++; return nil })
	require.NoError(t, err)
	assert.Equal(t, 5000, sum)

	out := buf.String()
	// step 0 plus every fifth item
	assert.Equal(t, 1001, strings.Count(out, "\r"))

	seq := console.ANSISequences()
	assert.True(t, strings.HasPrefix(out, seq.HideCursor+"\r"))
	assert.True(t, strings.HasSuffix(out, seq.ShowCursor+"\n"))
	assert.Contains(t, out, "5000/5000 |")
}

func TestProcessSmallTotalDrawsEveryStep(t *testing.T) {
	cursor, buf := testTerminal()
	p := NewProgress(WithWidth(40), WithProgressConfig(asciiPlain()), WithProgressCursor(cursor))

	require.NoError(t, Process(p, slices.Values([]string{"a", "b", "c"}), 3, nil))
	assert.Equal(t, 4, strings.Count(buf.String(), "\r"))
}

func TestProcessItemsBeyondTotal(t *testing.T) {
	cursor, buf := testTerminal()
	p := NewProgress(WithWidth(40), WithProgressConfig(asciiPlain()), WithProgressCursor(cursor))

	seen := 0
	require.NoError(t, Process(p, slices.Values([]int{1, 2, 3, 4}), 2, func(int) error { seen++; return nil }))
	assert.Equal(t, 4, seen)
	assert.Equal(t, 3, strings.Count(buf.String(), "\r"))
}

func TestProcessRejectsUnknownTotal(t *testing.T) {
	cursor, buf := testTerminal()
	p := NewProgress(WithWidth(40), WithProgressCursor(cursor))

	err := ProcessSlice(p, []int{}, nil)
	assert.ErrorIs(t, err, ErrUsage)
	err = Process(p, slices.Values([]int{1}), -1, nil)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Zero(t, buf.Len(), "nothing is drawn before the total is known")
}

func TestProcessStopsOnError(t *testing.T) {
	cursor, buf := testTerminal()
	logger := &recordingLogger{}
	p := NewProgress(WithWidth(40), WithProgressConfig(asciiPlain()), WithProgressCursor(cursor), WithProgressLogger(logger))

	boom := errors.New("boom")
	calls := 0
	err := ProcessSlice(p, []int{1, 2, 3}, func(i int) error {
		calls++
		if i == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
	assert.Len(t, logger.lines, 1)

	seq := console.ANSISequences()
	assert.True(t, strings.HasSuffix(buf.String(), seq.ShowCursor+"\n"))
}

func TestNewProgressDefaultsWidth(t *testing.T) {
	cursor, _ := testTerminal()
	p := NewProgress(WithProgressCursor(cursor))
	assert.Positive(t, p.Width())
}
