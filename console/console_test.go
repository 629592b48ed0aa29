package console

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	mb "github.com/saeidalz13/battleship-bot/models/battleship"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		n           int
		expected    []int
		expectedErr bool
	}{
		{name: "two ints", line: "3 4", n: 2, expected: []int{3, 4}},
		{name: "extra fields discarded", line: " 1   2 foo 9", n: 2, expected: []int{1, 2}},
		{name: "negative", line: "-1 0", n: 2, expected: []int{-1, 0}},
		{name: "single int", line: "7", n: 1, expected: []int{7}},
		{name: "missing field", line: "5", n: 2, expectedErr: true},
		{name: "empty line", line: "", n: 1, expectedErr: true},
		{name: "not a number", line: "a 2", n: 2, expectedErr: true},
		{name: "trailing letters on a field", line: "3 4abc", n: 2, expectedErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseInts(test.line, test.n)
			if test.expectedErr {
				if err == nil {
					t.Fatalf("expected error for line %q", test.line)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, test.expected) {
				t.Fatalf("expected: %v\tgot: %v", test.expected, got)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	c := New(strings.NewReader("6\r\nlast"), io.Discard)

	line, err := c.ReadLine()
	if err != nil || line != "6" {
		t.Fatalf("expected: %q\tgot: %q, %v", "6", line, err)
	}
	line, err = c.ReadLine()
	if err != nil || line != "last" {
		t.Fatalf("expected: %q\tgot: %q, %v", "last", line, err)
	}
	if _, err = c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected: %v\tgot: %v", io.EOF, err)
	}
}

func TestRender(t *testing.T) {
	own := mb.NewGrid(6)
	marks := mb.NewGrid(6)
	own[1][1] = mb.CellShip
	own[1][2] = mb.CellHit
	own[6][6] = mb.CellMiss
	marks[2][3] = mb.CellHit
	marks[6][1] = mb.CellMiss

	expected := "" +
		"  1 2 3 4 5 6      1 2 3 4 5 6 \n" +
		"1 S H . . . .    1 . . . . . . \n" +
		"2 . . . . . .    2 . . H . . . \n" +
		"3 . . . . . .    3 . . . . . . \n" +
		"4 . . . . . .    4 . . . . . . \n" +
		"5 . . . . . .    5 . . . . . . \n" +
		"6 . . . . . M    6 M . . . . . \n" +
		"\n"

	if got := Render(own, marks); got != expected {
		t.Fatalf("expected:\n%s\tgot:\n%s", expected, got)
	}
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).Clear()
	if out.Len() != 0 {
		t.Fatal("clear wrote output while disabled")
	}

	New(strings.NewReader(""), &out, WithClearScreen(true)).Clear()
	if out.String() != clearScreenSeq {
		t.Fatalf("expected: %q\tgot: %q", clearScreenSeq, out.String())
	}
}
