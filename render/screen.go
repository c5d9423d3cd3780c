package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// NewScreen initializes the terminal with mouse reporting enabled
// Caller owns Fini
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize terminal screen")
	}

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	screen.Clear()
	return screen, nil
}
