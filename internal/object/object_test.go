package object

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/physics"
)

type collectSpawner struct {
	objects []Object
}

func (c *collectSpawner) Spawn(obj Object) {
	c.objects = append(c.objects, obj)
}

func testContext(s *config.Settings) UpdateContext {
	return UpdateContext{
		Delta:    time.Second / 60,
		Settings: s,
		Screen:   ScreenRect(s),
	}
}

func TestNewShipCentered(t *testing.T) {
	s := config.NewSettings()
	ship := NewShip(s)

	r := ship.Rect()
	if r.CenterX() != 600 {
		t.Errorf("ship center x = %v, want 600", r.CenterX())
	}
	if r.Bottom() != 800 {
		t.Errorf("ship bottom = %v, want 800", r.Bottom())
	}
}

func TestShipMovement(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		wantDX      float64
	}{
		{name: "idle", wantDX: 0},
		{name: "right", right: true, wantDX: 2},
		{name: "left", left: true, wantDX: -2},
		{name: "both cancel", left: true, right: true, wantDX: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.NewSettings()
			ship := NewShip(s)
			ship.MovingLeft = tt.left
			ship.MovingRight = tt.right
			startX := ship.X

			if _, err := ship.Update(testContext(s)); err != nil {
				t.Fatalf("Update error: %v", err)
			}
			if got := ship.X - startX; got != tt.wantDX {
				t.Errorf("moved %v, want %v", got, tt.wantDX)
			}
		})
	}
}

func TestShipStaysOnScreen(t *testing.T) {
	s := config.NewSettings()
	ship := NewShip(s)
	ctx := testContext(s)

	ship.MovingRight = true
	for i := 0; i < 1000; i++ {
		ship.Update(ctx)
	}
	if ship.Rect().Right() != 1200 {
		t.Errorf("ship right = %v, want clamped to 1200", ship.Rect().Right())
	}

	ship.Stop()
	ship.MovingLeft = true
	for i := 0; i < 1000; i++ {
		ship.Update(ctx)
	}
	if ship.X != 0 {
		t.Errorf("ship left = %v, want clamped to 0", ship.X)
	}
}

func TestBulletSpawnsAtShipMidtop(t *testing.T) {
	s := config.NewSettings()
	ship := NewShip(s)
	b := NewBullet(ship, s)

	if b.Rect().CenterX() != ship.Rect().CenterX() {
		t.Errorf("bullet center %v != ship center %v", b.Rect().CenterX(), ship.Rect().CenterX())
	}
	if b.Y != ship.Y {
		t.Errorf("bullet top %v != ship top %v", b.Y, ship.Y)
	}
	if b.Width != 3 || b.Height != 15 {
		t.Errorf("bullet size %vx%v, want 3x15", b.Width, b.Height)
	}
}

func TestBulletRemovedAboveScreen(t *testing.T) {
	s := config.NewSettings()
	ctx := testContext(s)

	b := &Bullet{X: 100, Y: -11, Width: 3, Height: 15}
	remove, _ := b.Update(ctx)
	if remove {
		t.Fatalf("bullet with bottom at %v should stay", b.Rect().Bottom())
	}

	remove, _ = b.Update(ctx)
	if !remove {
		t.Errorf("bullet with bottom at %v should be removed", b.Rect().Bottom())
	}
}

func TestAlienEdges(t *testing.T) {
	s := config.NewSettings()
	screen := ScreenRect(s)

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{name: "middle", x: 500, want: false},
		{name: "left edge", x: 0, want: true},
		{name: "past left edge", x: -1, want: true},
		{name: "right edge", x: 1150, want: true},
		{name: "just inside right", x: 1149, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAlien(tt.x, 100, 50, 30)
			if got := a.CheckEdge(screen); got != tt.want {
				t.Errorf("CheckEdge at x=%v = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestAlienFollowsFleetDirection(t *testing.T) {
	s := config.NewSettings()
	ctx := testContext(s)
	a := NewAlien(100, 100, 50, 30)

	a.Update(ctx)
	if a.X != 101 {
		t.Errorf("x = %v, want 101", a.X)
	}

	s.FleetDirection = -1
	s.AlienSpeed = 3
	a.Update(ctx)
	if a.X != 98 {
		t.Errorf("x = %v, want 98", a.X)
	}

	a.Drop(10)
	if a.Y != 110 {
		t.Errorf("y = %v, want 110", a.Y)
	}
}

func TestExplosionParticlesExpire(t *testing.T) {
	s := config.NewSettings()
	spawner := &collectSpawner{}
	SpawnExplosion(600, 400, 12, 100, 0.5, tcell.ColorRed, spawner)

	if len(spawner.objects) != 12 {
		t.Fatalf("spawned %d particles, want 12", len(spawner.objects))
	}

	ctx := testContext(s)
	ctx.Delta = 100 * time.Millisecond
	for _, obj := range spawner.objects {
		removed := false
		for i := 0; i < 10 && !removed; i++ {
			var err error
			removed, err = obj.Update(ctx)
			if err != nil {
				t.Fatalf("Update error: %v", err)
			}
		}
		if !removed {
			t.Errorf("particle still alive after its max lifetime: %+v", obj)
		}
		ReleaseObject(obj)
	}
}

func TestSpawnExplosionNilSpawner(t *testing.T) {
	SpawnExplosion(0, 0, 5, 10, 1, tcell.ColorRed, nil)
}

func TestPlayButton(t *testing.T) {
	b := NewPlayButton(physics.NewRect(0, 0, 1200, 800))

	if !b.Contains(600, 400) {
		t.Error("center should be on the button")
	}
	if b.Contains(400, 400) {
		t.Error("point left of the button should miss")
	}
	if b.Rect.W != ButtonWidth || b.Rect.H != ButtonHeight {
		t.Errorf("button size %vx%v", b.Rect.W, b.Rect.H)
	}
}

func TestDrawObjects(t *testing.T) {
	s := config.NewSettings()
	canvas := draw.NewScaledCanvas(120, 40, 1200, 800)
	canvas.Clear(ColorOf(s.BgColor))
	ctx := DrawContext{Canvas: canvas, Settings: s}

	objects := []Object{
		NewShip(s),
		NewAlien(100, 100, 50, 30),
		&Bullet{X: 600, Y: 300, Width: 3, Height: 15},
		NewPlayButton(ScreenRect(s)),
		Text{X: 10, Y: 10, Value: "Score", Color: config.RGB{}},
	}
	for _, obj := range objects {
		if err := obj.Draw(ctx); err != nil {
			t.Fatalf("Draw(%T) error: %v", obj, err)
		}
	}
}

func TestStaticObjectsStay(t *testing.T) {
	s := config.NewSettings()
	ctx := UpdateContext{Settings: s, Screen: ScreenRect(s)}

	for _, obj := range []Object{
		NewPlayButton(ScreenRect(s)),
		Text{X: 10, Y: 10, Value: "Score"},
	} {
		remove, err := obj.Update(ctx)
		if err != nil {
			t.Fatalf("Update(%T) error: %v", obj, err)
		}
		if remove {
			t.Errorf("Update(%T) asked for removal", obj)
		}
	}
}
