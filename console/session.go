package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/battleship-bot/internal/error"
	mb "github.com/saeidalz13/battleship-bot/models/battleship"
)

// Session drives one interactive game: it asks for the board
// size, creates the game and alternates player input with the
// bot's reply until one fleet is sunk.
type Session struct {
	console *Console
	rng     mb.Rand
	logger  *log.Logger
	game    *mb.Game
}

type SessionOption func(*Session)

func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

func NewSession(c *Console, rng mb.Rand, opts ...SessionOption) *Session {
	s := &Session{
		console: c,
		rng:     rng,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Game is nil until Run has read a valid board size.
func (s *Session) Game() *mb.Game {
	return s.game
}

// ReadBoardSize prompts until a size in [6, 9] is entered.
// Only a read failure of the underlying input is returned.
func (s *Session) ReadBoardSize() (int, error) {
	for {
		s.console.Prompt(MsgBoardSizePrompt)
		line, err := s.console.ReadLine()
		if err != nil {
			return 0, err
		}

		ints, err := ParseInts(line, 1)
		if err != nil {
			s.logger.Debug("board size rejected", "err", err)
			s.console.Printf(MsgInvalidBoardSize, strings.TrimSpace(line))
			continue
		}
		if !mb.IsBoardSizeValid(ints[0]) {
			s.logger.Debug("board size rejected", "err", cerr.ErrInvalidBoardSize(ints[0]))
			s.console.Printf(MsgInvalidBoardSize, strconv.Itoa(ints[0]))
			continue
		}
		return ints[0], nil
	}
}

func (s *Session) display() {
	s.console.Clear()
	board := s.game.HumanSide.Board
	s.console.Prompt(Render(board.Occupancy(), board.Marks()))
}

// Run returns nil once a winner was announced. Any other
// return is a failure to read from the console.
func (s *Session) Run() error {
	s.console.Clear()
	size, err := s.ReadBoardSize()
	if err != nil {
		return err
	}

	game, err := mb.NewGame(size, s.rng, mb.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.game = game
	s.display()

	for {
		switch game.CheckTerminal() {
		case mb.StatePlayerWins:
			s.display()
			s.console.Println(MsgPlayerWins)
			return nil
		case mb.StateBotWins:
			s.display()
			s.console.Println("\n" + MsgBotWins)
			return nil
		}

		s.console.Prompt(MsgTargetPrompt)
		line, err := s.console.ReadLine()
		if err != nil {
			return err
		}
		ints, err := ParseInts(line, 2)
		if err != nil {
			s.logger.Debug("target input rejected", "err", err)
			s.display()
			s.console.Println(MsgInvalidTarget)
			continue
		}

		report, err := game.PlayerAttack(ints[0], ints[1])
		if err != nil {
			return err
		}
		s.display()
		s.console.Println(statusMessage(report.Outcome))
	}
}

func statusMessage(outcome mb.Outcome) string {
	switch outcome {
	case mb.OutcomeHit:
		return MsgBotShipHit
	case mb.OutcomeMiss:
		return MsgBotShipMissed
	case mb.OutcomeAlreadyTargeted:
		return MsgTargetAlreadyHit
	default:
		return MsgInvalidTarget
	}
}
