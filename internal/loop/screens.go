package loop

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/object"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	hudColor   = config.RGB{R: 30, G: 30, B: 30}
	titleColor = config.RGB{R: 60, G: 140, B: 60}
	alertColor = config.RGB{R: 200, G: 40, B: 40}
)

var scorePrinter = message.NewPrinter(language.English)

// startGame resets the game and makes it active: dynamic settings back to
// their defaults, fresh stats, a new fleet and a centered ship.
func startGame(state *State) {
	state.Settings.InitializeDynamic()
	state.Stats.Reset(state.Settings.ShipLimit)

	state.Bullets = nil
	state.Aliens = nil
	createFleet(state)
	state.Ship.Center(state.Screen())
	state.Ship.Stop()

	state.Pause = 0
	state.Active = true
	state.PointerVisible = false
	state.GamesPlayed++

	state.Logger.Info("game started", "game", state.GamesPlayed, "high_score", state.Stats.HighScore)
}

// roundScore rounds to the nearest ten, ties to even.
func roundScore(score int) int {
	return int(math.RoundToEven(float64(score)/10)) * 10
}

// formatScore renders a score rounded to ten with thousands separators.
func formatScore(score int) string {
	return scorePrinter.Sprintf("%d", roundScore(score))
}

// drawUI draws the scoreboard and, depending on state, the start or game
// over screen or the hit banner.
func drawUI(state *State, ctx object.DrawContext) error {
	if err := drawScoreboard(state, ctx); err != nil {
		return err
	}

	switch {
	case !state.Active:
		return drawMenu(state, ctx)
	case state.Paused():
		return drawHitBanner(state, ctx)
	}
	return nil
}

// lineHeight is the logical height of one terminal row.
func lineHeight(canvas *draw.Canvas) float64 {
	return canvas.LogicalHeight() / float64(canvas.TerminalHeight())
}

// drawScoreboard draws score and level at the top right, the high score at
// the top center and one small ship per remaining life at the top left.
func drawScoreboard(state *State, ctx object.DrawContext) error {
	line := lineHeight(ctx.Canvas)
	right := float64(state.Settings.ScreenWidth) - hudMargin
	center := float64(state.Settings.ScreenWidth) / 2

	texts := []object.Text{
		{X: right, Y: hudMargin, Value: "Score " + formatScore(state.Stats.Score), Color: hudColor, Align: object.AlignRight},
		{X: right, Y: hudMargin + 2*line, Value: fmt.Sprintf("Level %d", state.Stats.Level), Color: hudColor, Align: object.AlignRight},
		{X: center, Y: hudMargin, Value: "High " + formatScore(state.Stats.HighScore), Color: hudColor, Align: object.AlignCenter},
	}
	for _, t := range texts {
		if err := t.Draw(ctx); err != nil {
			return err
		}
	}

	w := state.Settings.ShipWidth * hudShipScale
	h := state.Settings.ShipHeight * hudShipScale
	for i := 0; i < state.Stats.ShipsLeft; i++ {
		icon := &object.Ship{X: hudMargin/2 + float64(i)*(w+hudMargin/2), Y: hudMargin / 2, Width: w, Height: h}
		if err := icon.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawMenu draws the title or game over text, the play button and the
// controls.
func drawMenu(state *State, ctx object.DrawContext) error {
	line := lineHeight(ctx.Canvas)
	button := state.PlayButton.Rect
	center := button.CenterX()

	title := object.Text{X: center, Y: button.Top() - 6*line, Value: "A L I E N   I N V A S I O N", Color: titleColor, Align: object.AlignCenter}
	if state.GamesPlayed > 0 {
		title.Value = "G A M E   O V E R"
		title.Color = alertColor
	}

	texts := []object.Text{
		title,
		{X: center, Y: button.Bottom() + 3*line, Value: "Click Play or press P to start", Color: hudColor, Align: object.AlignCenter},
		{X: center, Y: button.Bottom() + 5*line, Value: "Arrows or A/D to move, SPACE to shoot, Q to quit", Color: hudColor, Align: object.AlignCenter},
	}
	if state.GamesPlayed > 0 {
		texts = append(texts, object.Text{
			X: center, Y: button.Top() - 3*line,
			Value: fmt.Sprintf("Score %s  Level %d", formatScore(state.Stats.Score), state.Stats.Level),
			Color: hudColor, Align: object.AlignCenter,
		})
	}

	if err := state.PlayButton.Draw(ctx); err != nil {
		return err
	}
	for _, t := range texts {
		if err := t.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawHitBanner tells the player a ship was lost while the game is stalled.
func drawHitBanner(state *State, ctx object.DrawContext) error {
	screen := state.Screen()
	banner := object.Text{
		X:     screen.CenterX(),
		Y:     screen.CenterY(),
		Value: fmt.Sprintf("SHIP HIT  %d left", state.Stats.ShipsLeft),
		Color: alertColor,
		Align: object.AlignCenter,
	}
	return banner.Draw(ctx)
}

// background returns the frame background, tinted red while the game is
// stalled after a hit.
func background(state *State) tcell.Color {
	bg := object.ColorOf(state.Settings.BgColor)
	if !state.Paused() {
		return bg
	}
	t := hitFlashBlend * float64(state.Pause) / float64(HitPause)
	return draw.Blend(bg, object.ColorOf(alertColor), t)
}
