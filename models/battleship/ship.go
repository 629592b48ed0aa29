package battleship

type ShipKind uint8

const (
	ShipCarrier ShipKind = iota
	ShipBattleship
	ShipCruiser
	ShipSubmarine
	ShipDestroyer
)

const FleetSize = 5

var shipSizes = map[ShipKind]int{
	ShipCarrier:    5,
	ShipBattleship: 4,
	ShipCruiser:    3,
	ShipSubmarine:  3,
	ShipDestroyer:  2,
}

var shipNames = map[ShipKind]string{
	ShipCarrier:    "carrier",
	ShipBattleship: "battleship",
	ShipCruiser:    "cruiser",
	ShipSubmarine:  "submarine",
	ShipDestroyer:  "destroyer",
}

func (k ShipKind) Size() int {
	return shipSizes[k]
}

func (k ShipKind) String() string {
	return shipNames[k]
}

type Ship struct {
	kind     ShipKind
	size     int
	origin   Coordinates
	vertical bool
	placed   bool
	hits     int
}

// Orientation is decided once here with a coin flip
// and stays the same for every placement attempt.
func NewShip(kind ShipKind, rng Rand) *Ship {
	return &Ship{
		kind:     kind,
		size:     kind.Size(),
		vertical: rng.IntN(2) == 1,
	}
}

// Creates the five ships of a fleet in the order of
// carrier, battleship, cruiser, submarine and destroyer
func NewFleet(rng Rand) []*Ship {
	fleet := make([]*Ship, 0, FleetSize)
	for _, kind := range []ShipKind{ShipCarrier, ShipBattleship, ShipCruiser, ShipSubmarine, ShipDestroyer} {
		fleet = append(fleet, NewShip(kind, rng))
	}
	return fleet
}

func (sh *Ship) Kind() ShipKind {
	return sh.kind
}

func (sh *Ship) Size() int {
	return sh.size
}

func (sh *Ship) Origin() Coordinates {
	return sh.origin
}

func (sh *Ship) IsVertical() bool {
	return sh.vertical
}

func (sh *Ship) IsPlaced() bool {
	return sh.placed
}

// Cells covered by the ship when its origin is at the given coordinates
func (sh *Ship) cellsFrom(origin Coordinates) []Coordinates {
	cells := make([]Coordinates, 0, sh.size)
	for i := 0; i < sh.size; i++ {
		if sh.vertical {
			cells = append(cells, NewCoordinates(origin.Row+i, origin.Col))
		} else {
			cells = append(cells, NewCoordinates(origin.Row, origin.Col+i))
		}
	}
	return cells
}

func (sh *Ship) Cells() []Coordinates {
	return sh.cellsFrom(sh.origin)
}

func (sh *Ship) setOrigin(origin Coordinates) {
	if sh.placed {
		return
	}
	sh.origin = origin
	sh.placed = true
}

func (sh *Ship) GotHit() {
	sh.hits++
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == sh.size
}
