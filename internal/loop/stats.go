package loop

// GameStats tracks the numbers shown on the scoreboard. HighScore survives
// Reset for the lifetime of the process.
type GameStats struct {
	ShipsLeft int
	Score     int
	Level     int
	HighScore int
}

// NewGameStats creates stats for a fresh game.
func NewGameStats(shipLimit int) *GameStats {
	g := &GameStats{}
	g.Reset(shipLimit)
	return g
}

// Reset starts a new game: full lives, zero score, level 1.
func (g *GameStats) Reset(shipLimit int) {
	g.ShipsLeft = shipLimit
	g.Score = 0
	g.Level = 1
}

// AddScore adds points and raises the high score when it is beaten.
func (g *GameStats) AddScore(points int) {
	g.Score += points
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
}
