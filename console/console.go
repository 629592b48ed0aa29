package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-bot/internal/error"
)

const clearScreenSeq = "\033[H\033[2J"

const (
	MsgBoardSizePrompt  = "Enter board size (6x6 - 9x9): "
	MsgTargetPrompt     = "Enter target coordinates (x, y): "
	MsgInvalidBoardSize = "Invalid board size, entered: %s\n"
	MsgBotShipHit       = "Bot ship hit."
	MsgBotShipMissed    = "Bot ship missed."
	MsgInvalidTarget    = "Invalid target coordinates. Try again."
	MsgTargetAlreadyHit = "Target already hit. Try again."
	MsgPlayerWins       = "Player wins"
	MsgBotWins          = "Bot wins"
)

// Console reads whole lines of integers from in and writes
// prompts and boards to out.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	clearScreen bool
}

type Option func(*Console)

func WithClearScreen(clear bool) Option {
	return func(c *Console) {
		c.clearScreen = clear
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Prompt(msg string) {
	fmt.Fprint(c.out, msg)
}

func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Clear() {
	if c.clearScreen {
		fmt.Fprint(c.out, clearScreenSeq)
	}
}

// ReadLine returns the next line without its line ending.
// io.EOF is only returned once nothing is left to read.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseInts parses the first n whitespace separated fields of
// line. Anything after them is discarded.
func ParseInts(line string, n int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, cerr.ErrMissingInput(n, len(fields))
	}

	ints := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, cerr.ErrNotAnInteger(fields[i])
		}
		ints[i] = v
	}
	return ints, nil
}
