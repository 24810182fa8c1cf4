package object

import (
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
)

// Align selects which part of a Text sits at its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var _ Object = Text{}

// Text is a string drawn at a logical position over the canvas background.
type Text struct {
	X, Y  float64
	Value string
	Color config.RGB
	Align Align
}

// Draw queues the text on the canvas.
func (t Text) Draw(ctx DrawContext) error {
	if t.Value == "" {
		return nil
	}
	style := draw.TextStyle(ColorOf(t.Color), ctx.Canvas.Background())
	switch t.Align {
	case AlignCenter:
		ctx.Canvas.DrawTextCentered(t.X, t.Y, t.Value, style)
	case AlignRight:
		ctx.Canvas.DrawTextRight(t.X, t.Y, t.Value, style)
	default:
		ctx.Canvas.DrawText(t.X, t.Y, t.Value, style)
	}
	return nil
}

// Update is a no-op for static text.
func (t Text) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}
