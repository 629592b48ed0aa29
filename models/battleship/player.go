package battleship

type Player struct {
	IsBot       bool
	SunkenShips int
	Board       *Board
	Fleet       []*Ship
}

func NewPlayer(isBot bool, gridSize int, rng Rand) *Player {
	return &Player{
		IsBot:       isBot,
		SunkenShips: 0,
		Board:       NewBoard(gridSize),
		Fleet:       NewFleet(rng),
	}
}

func (p *Player) Side() string {
	if p.IsBot {
		return "bot"
	}
	return "player"
}

func (p *Player) PlaceFleet(rng Rand) {
	PlaceFleet(p.Board, p.Fleet, rng)
}

func (p *Player) IsLoser() bool {
	return p.Board.AllSunk()
}

// Called after a hit on c. Returns the ship that got hit
// and whether this hit sank it.
func (p *Player) IsShipSunken(c Coordinates) (*Ship, bool) {
	ship, prs := p.Board.ShipAt(c)
	if !prs {
		return nil, false
	}
	if ship.IsSunk() {
		p.SunkenShips++
		return ship, true
	}
	return ship, false
}
