package battleship

import "testing"

func targetedCells(b *Board) int {
	return b.occupancy.Count(CellHit) + b.occupancy.Count(CellMiss)
}

func TestBotAttackFlipsOneNewCell(t *testing.T) {
	const size = 6
	rng := NewRand(42)
	board := NewBoard(size)
	PlaceFleet(board, NewFleet(rng), rng)
	bot := NewBot(rng)

	seen := make(map[Coordinates]bool)
	for call := 1; call <= size*size; call++ {
		before := board.Occupancy()
		target, outcome := bot.Attack(board)

		if seen[target] {
			t.Fatalf("call %d: bot re-selected %+v", call, target)
		}
		seen[target] = true

		if outcome != OutcomeHit && outcome != OutcomeMiss {
			t.Fatalf("call %d: expected hit or miss\tgot: %s", call, outcome)
		}
		if before[target.Row][target.Col].IsTargeted() {
			t.Fatalf("call %d: bot fired at targeted cell %+v", call, target)
		}
		if got := targetedCells(board); got != call {
			t.Fatalf("expected targeted cells: %d\tgot: %d", call, got)
		}
	}

	if !board.AllSunk() {
		t.Fatal("every cell targeted but fleet not sunk")
	}
}

func TestBotAttackSkipsTargetedCells(t *testing.T) {
	board := NewBoard(6)
	board.TargetCell(NewCoordinates(1, 1))
	board.TargetCell(NewCoordinates(2, 2))

	// First two samples land on targeted cells, the third is fresh.
	bot := NewBot(&scriptedRand{values: []int{0, 0, 1, 1, 2, 2}})
	target, outcome := bot.Attack(board)

	if target != NewCoordinates(3, 3) {
		t.Fatalf("expected target: %+v\tgot: %+v", NewCoordinates(3, 3), target)
	}
	if outcome != OutcomeMiss {
		t.Fatalf("expected outcome: %s\tgot: %s", OutcomeMiss, outcome)
	}
	if !isEmptyGrid(board.Marks()) {
		t.Fatal("bot attack wrote marks")
	}
}

func TestBotAttackExhaustedBoard(t *testing.T) {
	board := NewBoard(6)
	for row := 1; row <= 6; row++ {
		for col := 1; col <= 6; col++ {
			board.TargetCell(NewCoordinates(row, col))
		}
	}

	_, outcome := NewBot(NewRand(1)).Attack(board)
	if outcome != OutcomeAlreadyTargeted {
		t.Fatalf("expected outcome: %s\tgot: %s", OutcomeAlreadyTargeted, outcome)
	}
}

func isEmptyGrid(g Grid) bool {
	return g.Count(CellEmpty) == len(g)*len(g)
}
