package battleship

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-bot/internal/error"
)

const (
	MinBoardSize int = 6
	MaxBoardSize int = 9
)

type State uint8

const (
	StateAwaitingPlayerInput State = iota
	StateResolving
	StateBotTurn
	StatePlayerWins
	StateBotWins
)

func (s State) String() string {
	switch s {
	case StateAwaitingPlayerInput:
		return "awaiting player input"
	case StateResolving:
		return "resolving"
	case StateBotTurn:
		return "bot turn"
	case StatePlayerWins:
		return "player wins"
	default:
		return "bot wins"
	}
}

func (s State) IsTerminal() bool {
	return s == StatePlayerWins || s == StateBotWins
}

func IsBoardSizeValid(size int) bool {
	return size >= MinBoardSize && size <= MaxBoardSize
}

// TurnReport describes one accepted or rejected player attack.
// Bot fields are only set when the player attack was accepted.
// ShipHit and ShipSunk are only meaningful when Outcome is
// OutcomeHit; ShipHit holds its zero value otherwise.
type TurnReport struct {
	Target      Coordinates
	Outcome     Outcome
	ShipHit     ShipKind
	ShipSunk    bool
	BotFired    bool
	BotTarget   Coordinates
	BotOutcome  Outcome
	BotShipSunk bool
}

// Accepted reports whether the player attack consumed a turn.
func (tr TurnReport) Accepted() bool {
	return tr.Outcome == OutcomeHit || tr.Outcome == OutcomeMiss
}

type Game struct {
	Uuid      string
	size      int
	state     State
	turns     int
	HumanSide *Player
	BotSide   *Player
	bot       *Bot
	logger    *log.Logger
}

type Option func(*Game)

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame creates both fleets and places them on their boards.
// The game starts awaiting the player's first attack.
func NewGame(size int, rng Rand, opts ...Option) (*Game, error) {
	if !IsBoardSizeValid(size) {
		return nil, cerr.ErrInvalidBoardSize(size)
	}

	game := &Game{
		Uuid:   uuid.NewString()[:6],
		size:   size,
		bot:    NewBot(rng),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(game)
	}
	game.logger = game.logger.With("game", game.Uuid)

	game.HumanSide = NewPlayer(false, size, rng)
	game.BotSide = NewPlayer(true, size, rng)
	game.HumanSide.PlaceFleet(rng)
	game.BotSide.PlaceFleet(rng)
	game.state = StateAwaitingPlayerInput

	game.logger.Info("game created", "size", size)
	return game, nil
}

func (g *Game) Size() int {
	return g.size
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Turns() int {
	return g.turns
}

// CheckTerminal runs at the start of every loop iteration.
// The bot board is checked first so the player wins ties.
func (g *Game) CheckTerminal() State {
	if g.state.IsTerminal() {
		return g.state
	}

	if g.BotSide.IsLoser() {
		g.state = StatePlayerWins
	} else if g.HumanSide.IsLoser() {
		g.state = StateBotWins
	}

	if g.state.IsTerminal() {
		g.logger.Info("game finished", "result", g.state, "turns", g.turns,
			"bot_sunk_ships", g.BotSide.SunkenShips, "player_sunk_ships", g.HumanSide.SunkenShips)
	}
	return g.state
}

// PlayerAttack validates the target, fires at the bot board and
// mirrors the result to the player's marks. An accepted attack is
// followed by exactly one bot attack. Rejected targets leave both
// boards untouched and the bot does not fire.
func (g *Game) PlayerAttack(row, col int) (TurnReport, error) {
	if g.state.IsTerminal() {
		return TurnReport{}, cerr.ErrGameFinished(g.Uuid)
	}

	target := NewCoordinates(row, col)
	report := TurnReport{Target: target}

	botBoard := g.BotSide.Board
	if !botBoard.InBounds(target) {
		report.Outcome = OutcomeOutOfRange
		g.logger.Debug("player target rejected", "row", row, "col", col, "outcome", report.Outcome)
		return report, nil
	}
	if botBoard.Cell(target).IsTargeted() {
		report.Outcome = OutcomeAlreadyTargeted
		g.logger.Debug("player target rejected", "row", row, "col", col, "outcome", report.Outcome)
		return report, nil
	}

	g.state = StateResolving
	report.Outcome = botBoard.TargetCell(target)
	g.HumanSide.Board.SetMark(target, report.Outcome)
	if report.Outcome == OutcomeHit {
		if ship, sunk := g.BotSide.IsShipSunken(target); ship != nil {
			report.ShipHit = ship.Kind()
			report.ShipSunk = sunk
		}
	}
	g.turns++
	g.logger.Debug("fired", "side", g.HumanSide.Side(), "row", row, "col", col, "outcome", report.Outcome, "sunk", report.ShipSunk)

	g.state = StateBotTurn
	g.botAttack(&report)

	g.state = StateAwaitingPlayerInput
	return report, nil
}

// The bot never writes marks, only the human side keeps an
// opponent view.
func (g *Game) botAttack(report *TurnReport) {
	target, outcome := g.bot.Attack(g.HumanSide.Board)
	if outcome != OutcomeHit && outcome != OutcomeMiss {
		return
	}

	report.BotFired = true
	report.BotTarget = target
	report.BotOutcome = outcome
	if outcome == OutcomeHit {
		_, report.BotShipSunk = g.HumanSide.IsShipSunken(target)
	}
	g.logger.Debug("fired", "side", g.BotSide.Side(), "row", target.Row, "col", target.Col, "outcome", outcome, "sunk", report.BotShipSunk)
}
