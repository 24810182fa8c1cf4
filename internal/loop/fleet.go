package loop

import (
	"github.com/tomz197/alien-invasion/internal/object"
	"github.com/tomz197/alien-invasion/internal/physics"
)

// FleetPositions lays out the fleet grid. Aliens start one alien size from
// the top-left corner and are spaced two alien sizes apart; columns stop
// before screenWidth-2*alienWidth and rows before half the screen height.
func FleetPositions(screenWidth, screenHeight int, alienWidth, alienHeight float64) []physics.Rect {
	if alienWidth <= 0 || alienHeight <= 0 {
		return nil
	}

	maxX := float64(screenWidth) - 2*alienWidth
	maxY := float64(screenHeight) / 2

	var positions []physics.Rect
	for y := alienHeight; y < maxY; y += 2 * alienHeight {
		for x := alienWidth; x < maxX; x += 2 * alienWidth {
			positions = append(positions, physics.NewRect(x, y, alienWidth, alienHeight))
		}
	}
	return positions
}

// createFleet adds a full fleet to the alien collection. Bullets are left
// alone.
func createFleet(state *State) {
	s := state.Settings
	for _, r := range FleetPositions(s.ScreenWidth, s.ScreenHeight, s.AlienWidth, s.AlienHeight) {
		state.Aliens = append(state.Aliens, object.NewAlien(r.X, r.Y, r.W, r.H))
	}
}

// checkFleetEdges drops the fleet and reverses it once if any alien touches
// a side of the screen.
func checkFleetEdges(state *State) {
	screen := state.Screen()
	for _, a := range state.Aliens {
		if a.CheckEdge(screen) {
			changeFleetDirection(state)
			return
		}
	}
}

// changeFleetDirection moves every alien down and flips the direction.
func changeFleetDirection(state *State) {
	for _, a := range state.Aliens {
		a.Drop(state.Settings.FleetDropSpeed)
	}
	state.Settings.ReverseFleet()
}
