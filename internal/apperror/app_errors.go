package apperror

import "errors"

var (
	ErrGameOver         = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameStarted      = errors.New("game is already started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrIllegalMove      = errors.New("illegal move")
	ErrEmptyDeck        = errors.New("deck is empty")
	ErrCardNotInPlay    = errors.New("card is not in play")
	ErrCorruptState     = errors.New("game state is inconsistent")
	ErrUnknownCharacter = errors.New("unknown character")
	ErrInvalidPlayers   = errors.New("invalid number of players")
)
