package battleship

import "github.com/dolthub/swiss"

type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeAlreadyTargeted
	OutcomeOutOfRange
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeAlreadyTargeted:
		return "already targeted"
	default:
		return "out of range"
	}
}

// Board keeps two independent grids. occupancy is the ground
// truth of the owner's ships and is mutated by opponent fire.
// marks records what the owner learned about the opponent's
// board from its own attacks.
type Board struct {
	size      int
	occupancy Grid
	marks     Grid
	occupants *swiss.Map[Coordinates, *Ship]
}

func NewBoard(size int) *Board {
	return &Board{
		size:      size,
		occupancy: NewGrid(size),
		marks:     NewGrid(size),
		occupants: swiss.NewMap[Coordinates, *Ship](uint32(size)),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(c Coordinates) bool {
	return c.Row >= 1 && c.Row <= b.size && c.Col >= 1 && c.Col <= b.size
}

func (b *Board) IsValidPlacement(origin Coordinates, size int, vertical bool) bool {
	if size <= 0 {
		return false
	}
	end := origin
	if vertical {
		end.Row += size - 1
	} else {
		end.Col += size - 1
	}
	if !b.InBounds(origin) || !b.InBounds(end) {
		return false
	}

	for i := 0; i < size; i++ {
		c := origin
		if vertical {
			c.Row += i
		} else {
			c.Col += i
		}
		if b.occupancy[c.Row][c.Col] != CellEmpty {
			return false
		}
	}
	return true
}

// PlaceShip expects the ship origin to be already validated
// with IsValidPlacement. marks is never touched.
func (b *Board) PlaceShip(ship *Ship) {
	for _, c := range ship.Cells() {
		b.occupancy[c.Row][c.Col] = CellShip
		b.occupants.Put(c, ship)
	}
}

// TargetCell represents the opponent firing at this board.
func (b *Board) TargetCell(c Coordinates) Outcome {
	if !b.InBounds(c) {
		return OutcomeOutOfRange
	}

	switch b.occupancy[c.Row][c.Col] {
	case CellHit, CellMiss:
		return OutcomeAlreadyTargeted
	case CellShip:
		b.occupancy[c.Row][c.Col] = CellHit
		if ship, prs := b.occupants.Get(c); prs {
			ship.GotHit()
		}
		return OutcomeHit
	default:
		b.occupancy[c.Row][c.Col] = CellMiss
		return OutcomeMiss
	}
}

// Returns the ship covering c, if any
func (b *Board) ShipAt(c Coordinates) (*Ship, bool) {
	return b.occupants.Get(c)
}

func (b *Board) AllSunk() bool {
	return b.occupancy.Count(CellShip) == 0
}

// Cell and Mark report CellEmpty outside the playable area.
func (b *Board) Cell(c Coordinates) CellState {
	if !b.InBounds(c) {
		return CellEmpty
	}
	return b.occupancy[c.Row][c.Col]
}

func (b *Board) Mark(c Coordinates) CellState {
	if !b.InBounds(c) {
		return CellEmpty
	}
	return b.marks[c.Row][c.Col]
}

// SetMark only accepts the result of an attack on the opponent.
func (b *Board) SetMark(c Coordinates, outcome Outcome) {
	if !b.InBounds(c) {
		return
	}
	switch outcome {
	case OutcomeHit:
		b.marks[c.Row][c.Col] = CellHit
	case OutcomeMiss:
		b.marks[c.Row][c.Col] = CellMiss
	}
}

func (b *Board) Occupancy() Grid {
	return b.occupancy.Copy()
}

func (b *Board) Marks() Grid {
	return b.marks.Copy()
}
