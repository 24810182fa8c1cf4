package config

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// Settings holds every tunable game parameter. The dynamic fields change as
// the player clears waves and are restored by InitializeDynamic.
type Settings struct {
	// Screen (logical pixels)
	ScreenWidth  int
	ScreenHeight int
	BgColor      RGB

	// Ship
	ShipLimit  int
	ShipWidth  float64
	ShipHeight float64
	ShipColor  RGB

	// Bullets
	BulletWidth    float64
	BulletHeight   float64
	BulletColor    RGB
	BulletsAllowed int

	// Aliens
	AlienWidth     float64
	AlienHeight    float64
	AlienColor     RGB
	FleetDropSpeed float64

	// Pace of the game per cleared wave
	SpeedupScale float64
	ScoreScale   float64

	// Dynamic
	ShipSpeed      float64 // px per frame
	BulletSpeed    float64 // px per frame
	AlienSpeed     float64 // px per frame
	FleetDirection int     // 1 moves right, -1 moves left
	AlienPoints    int
}

// NewSettings returns the default settings with dynamic values initialized.
func NewSettings() *Settings {
	s := &Settings{
		ScreenWidth:  1200,
		ScreenHeight: 800,
		BgColor:      RGB{230, 230, 230},

		ShipLimit:  3,
		ShipWidth:  60,
		ShipHeight: 48,
		ShipColor:  RGB{40, 70, 140},

		BulletWidth:    3,
		BulletHeight:   15,
		BulletColor:    RGB{60, 60, 60},
		BulletsAllowed: 3,

		AlienWidth:     50,
		AlienHeight:    30,
		AlienColor:     RGB{60, 140, 60},
		FleetDropSpeed: 10,

		SpeedupScale: 1.1,
		ScoreScale:   1.5,
	}
	s.InitializeDynamic()
	return s
}

// InitializeDynamic restores the values that change during a game.
func (s *Settings) InitializeDynamic() {
	s.ShipSpeed = 2.0
	s.BulletSpeed = 3.0
	s.AlienSpeed = 1.0
	s.FleetDirection = 1
	s.AlienPoints = 50
}

// IncreaseSpeed speeds the game up and raises the value of each alien.
// Points are truncated to an integer.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(s.ScoreScale * float64(s.AlienPoints))
}

// ReverseFleet flips the horizontal direction of the fleet.
func (s *Settings) ReverseFleet() {
	if s.FleetDirection > 0 {
		s.FleetDirection = -1
	} else {
		s.FleetDirection = 1
	}
}
