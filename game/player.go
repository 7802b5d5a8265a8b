package game

import "image/color"

// Ship layout and firing constants
const (
	shipRow      = 4.2 / 5 // Starting height as a fraction of window height
	muzzleOffset = 5.0     // Shots spawn this far above the ship's center
)

// Intent is the player's input for one frame
type Intent struct {
	Left  bool // Held: move left this frame
	Right bool // Held: move right this frame
	Fire  bool // True only on the frame the fire key went down
}

// FireTrigger turns a held fire key into a single shot per press
type FireTrigger struct {
	held bool
}

// Update takes the current key state and reports whether it was just pressed
func (t *FireTrigger) Update(pressed bool) bool {
	fired := pressed && !t.held
	t.held = pressed
	return fired
}

// Player is the ship and the shots it has fired
type Player struct {
	ship  *GameObject
	shots *ProjectileSet

	windowWidth float64
	speed       float64 // Ship pixels per frame
	laserSpeed  float64 // Projectile pixels per frame
}

// NewPlayer creates the ship at the bottom center of the window
func NewPlayer(cfg Config, geom SheetGeometry, tint color.Color) (*Player, error) {
	x := float64(cfg.WindowWidth()) / 2
	y := shipRow * float64(cfg.WindowHeight())

	ship, err := NewGameObject("player", geom, cfg.Player.Rect(), tint, x, y)
	if err != nil {
		return nil, err
	}
	shots, err := NewProjectileSet(geom, cfg.Laser.Rect(), tint)
	if err != nil {
		return nil, err
	}

	return &Player{
		ship:        ship,
		shots:       shots,
		windowWidth: float64(cfg.WindowWidth()),
		speed:       float64(cfg.Speed),
		laserSpeed:  float64(cfg.LaserSpeed),
	}, nil
}

// Ship returns the player's ship
func (p *Player) Ship() *GameObject {
	return p.ship
}

// Shots returns the projectiles in flight
func (p *Player) Shots() *ProjectileSet {
	return p.shots
}

// Update applies one frame of input, then ages every projectile.
// The ship never moves past either window edge.
func (p *Player) Update(in Intent, obstacles []Rect) AdvanceResult {
	x, y := p.ship.Position()
	half, _ := p.ship.Size()
	half /= 2

	if in.Left && x-half-p.speed >= 0 {
		x -= p.speed
	}
	if in.Right && x+half+p.speed <= p.windowWidth {
		x += p.speed
	}
	p.ship.SetPosition(x, y)

	if in.Fire {
		p.shots.Spawn(x, y-muzzleOffset)
	}

	return p.shots.Advance(p.laserSpeed, obstacles)
}

// Draw draws the shots, then the ship on top of them
func (p *Player) Draw(dst Surface, sheet Sheet) {
	p.shots.Draw(dst, sheet)
	p.ship.Draw(dst, sheet)
}
