package battleship

// Bot fires at uniformly random cells. It keeps no memory of
// its previous shots, the occupancy grid of the target board
// already rules out cells that were fired at.
type Bot struct {
	rng Rand
}

func NewBot(rng Rand) *Bot {
	return &Bot{rng: rng}
}

// Attack picks cells until it finds one that was never targeted
// and fires at it. A board with no untargeted cell left returns
// OutcomeAlreadyTargeted without mutation.
func (bt *Bot) Attack(b *Board) (Coordinates, Outcome) {
	if b.occupancy.Count(CellHit)+b.occupancy.Count(CellMiss) == b.size*b.size {
		return Coordinates{}, OutcomeAlreadyTargeted
	}

	for {
		target := randomCoordinates(bt.rng, b.size)
		if b.Cell(target).IsTargeted() {
			continue
		}
		return target, b.TargetCell(target)
	}
}
