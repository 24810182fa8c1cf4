package object

import (
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/physics"
)

// Play button geometry and colors.
const (
	ButtonWidth  = 200
	ButtonHeight = 50
)

var (
	buttonColor     = config.RGB{R: 0, G: 135, B: 0}
	buttonTextColor = config.RGB{R: 255, G: 255, B: 255}
)

var _ Object = (*Button)(nil)

// Button is a labeled rectangle that reacts to clicks.
type Button struct {
	Rect  physics.Rect
	Label string
}

// NewPlayButton creates the "Play" button centered on screen.
func NewPlayButton(screen physics.Rect) *Button {
	return &Button{
		Rect:  screen.Centered(ButtonWidth, ButtonHeight),
		Label: "Play",
	}
}

// Contains reports whether the logical point (x, y) is on the button.
func (b *Button) Contains(x, y float64) bool {
	return b.Rect.ContainsPoint(x, y)
}

// Update is a no-op; buttons are static.
func (b *Button) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

// Draw fills the button and centers its label.
func (b *Button) Draw(ctx DrawContext) error {
	fill := ColorOf(buttonColor)
	ctx.Canvas.FillRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, fill)
	style := draw.TextStyle(ColorOf(buttonTextColor), fill)
	ctx.Canvas.DrawTextCentered(b.Rect.CenterX(), b.Rect.CenterY(), b.Label, style)
	return nil
}
