// Package service holds the computer-driven characters that choose moves for a color.
package service

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/apologies/internal/apperror"
	"github.com/rocketscienceinc/apologies/internal/entity"
)

const (
	CharacterRandom = "random"
	CharacterReward = "reward"
)

// Character picks one move out of the legal set for the color it plays.
type Character interface {
	Name() string
	ChooseMove(mode entity.GameMode, view entity.PlayerView, moves []entity.Move) (*entity.Move, error)
}

// Source is the random source a character draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// CharacterNames lists every name NewCharacter accepts.
var CharacterNames = []string{CharacterRandom, CharacterReward}

// NewCharacter builds the character registered under name. The source is only used by
// characters that need randomness.
func NewCharacter(name string, source Source) (Character, error) {
	switch name {
	case CharacterRandom:
		return NewRandomCharacter(source), nil
	case CharacterReward:
		return NewRewardCharacter(RewardCalculatorV1{}), nil
	default:
		return nil, fmt.Errorf("%w: %q, want one of %v", apperror.ErrUnknownCharacter, name, CharacterNames)
	}
}

// ValidCharacter reports whether NewCharacter knows name.
func ValidCharacter(name string) bool {
	return slices.Contains(CharacterNames, name)
}
