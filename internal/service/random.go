package service

import (
	"github.com/rocketscienceinc/apologies/internal/entity"
)

type randomCharacter struct {
	source Source
}

// NewRandomCharacter returns a character that picks uniformly among the legal moves.
func NewRandomCharacter(source Source) Character {
	return &randomCharacter{source: source}
}

func (that *randomCharacter) Name() string {
	return CharacterRandom
}

func (that *randomCharacter) ChooseMove(_ entity.GameMode, _ entity.PlayerView, moves []entity.Move) (*entity.Move, error) {
	if len(moves) == 0 {
		return nil, nil
	}

	chosen := moves[that.source.Intn(len(moves))]

	return &chosen, nil
}
