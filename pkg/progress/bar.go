// Package progress implements the terminal progress bar external
// collaborator named by the renderer's progress callback contract: the
// core only ever calls a func(fraction float64) error.
package progress

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Bar renders a single-line progress bar (percentage, elapsed time, ETA) to
// an alternate-screen tcell.Screen, restoring the terminal when Close is
// called.
type Bar struct {
	screen  tcell.Screen
	label   string
	started time.Time
}

// New initializes a tcell screen and returns a Bar that reports progress
// for a render titled label. Callers must call Close when rendering
// finishes, whether it succeeded or failed.
func New(label string) (*Bar, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize terminal screen")
	}
	screen.HideCursor()

	return &Bar{screen: screen, label: label, started: time.Now()}, nil
}

// Update draws the bar at the given completion fraction (0 to 1). It
// satisfies renderer.ProgressFunc.
func (b *Bar) Update(fraction float64) error {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	width, height := b.screen.Size()
	b.screen.Clear()

	elapsed := time.Since(b.started)
	var eta time.Duration
	if fraction > 0 {
		eta = time.Duration(float64(elapsed) / fraction * (1 - fraction))
	}

	barWidth := width - 2
	if barWidth < 10 {
		barWidth = 10
	}
	filled := int(fraction * float64(barWidth))

	row := height / 2
	b.drawText(0, row-1, fmt.Sprintf("%s: %5.1f%%  elapsed %s  eta %s",
		b.label, fraction*100, elapsed.Round(time.Second), eta.Round(time.Second)))

	const blockRune = '█' // █, full block

	style := tcell.StyleDefault
	for x := 0; x < barWidth; x++ {
		ch := blockRune
		cellStyle := style.Foreground(tcell.ColorGray)
		if x < filled {
			cellStyle = style.Foreground(tcell.ColorGreen)
		}
		b.screen.SetContent(x+1, row, ch, nil, cellStyle)
	}

	b.screen.Show()
	return nil
}

func (b *Bar) drawText(x, y int, text string) {
	for i, r := range text {
		b.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// Close restores the terminal to its original state.
func (b *Bar) Close() {
	b.screen.Fini()
}
