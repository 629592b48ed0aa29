package battleship

type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

func (cs CellState) Symbol() byte {
	switch cs {
	case CellShip:
		return 'S'
	case CellHit:
		return 'H'
	case CellMiss:
		return 'M'
	default:
		return '.'
	}
}

// A cell that was already fired at, either by hitting
// a ship or missing one, cannot be targeted again
func (cs CellState) IsTargeted() bool {
	return cs == CellHit || cs == CellMiss
}

// Row and column 0 are never playable
type Coordinates struct {
	Row int
	Col int
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

type Grid [][]CellState

// Creates a new default grid with dimension of
// size+1 so the playable area is 1-indexed.
// All indexes are CellEmpty
func NewGrid(size int) Grid {
	grid := make(Grid, size+1)

	for i := 0; i <= size; i++ {
		grid[i] = make([]CellState, size+1)
	}
	return grid
}

func (g Grid) Copy() Grid {
	cp := make(Grid, len(g))
	for i := range g {
		cp[i] = make([]CellState, len(g[i]))
		copy(cp[i], g[i])
	}
	return cp
}

func (g Grid) Count(state CellState) int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == state {
				count++
			}
		}
	}
	return count
}
