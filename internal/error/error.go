package error

import "fmt"

func ErrInvalidBoardSize(size int) error {
	return fmt.Errorf("board size must be between 6 and 9, entered: %d", size)
}

func ErrGameFinished(gameUuid string) error {
	return fmt.Errorf("game is already finished, uuid: %s", gameUuid)
}

func ErrNotAnInteger(value string) error {
	return fmt.Errorf("the value is not an integer:\t%s", value)
}

func ErrMissingInput(expected, got int) error {
	return fmt.Errorf("expected %d integers on the line, got: %d", expected, got)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrInvalidEnvValue(key, value string) error {
	return fmt.Errorf("invalid value for %s:\t%s", key, value)
}
