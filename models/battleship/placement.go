package battleship

import "math/rand/v2"

// Rand is the subset of *rand.Rand the game needs.
// Tests inject a scripted source to make placement and
// bot fire deterministic.
type Rand interface {
	IntN(n int) int
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Samples a coordinate uniformly in [1, size] for both axes
func randomCoordinates(rng Rand, size int) Coordinates {
	return NewCoordinates(rng.IntN(size)+1, rng.IntN(size)+1)
}

// PlaceShipRandomly resamples the origin until the ship fits.
// There is no cap on attempts and the ship orientation is never
// flipped, so the board must be large enough for the fleet.
func PlaceShipRandomly(b *Board, ship *Ship, rng Rand) {
	for {
		origin := randomCoordinates(rng, b.size)
		if b.IsValidPlacement(origin, ship.size, ship.vertical) {
			ship.setOrigin(origin)
			b.PlaceShip(ship)
			return
		}
	}
}

func PlaceFleet(b *Board, fleet []*Ship, rng Rand) {
	for _, ship := range fleet {
		PlaceShipRandomly(b, ship, rng)
	}
}
