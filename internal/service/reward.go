package service

import (
	"fmt"

	"github.com/rocketscienceinc/apologies/internal/board"
	"github.com/rocketscienceinc/apologies/internal/entity"
	"github.com/rocketscienceinc/apologies/internal/rules"
)

const (
	safeIncentive   = 10
	winnerIncentive = 100
	// maxRewardPerOpponent bounds the gap between the player and a single opponent.
	maxRewardPerOpponent = 400
)

// RewardCalculator scores how strong a view is for its player.
type RewardCalculator interface {
	Calculate(view entity.PlayerView) int
	Range(players int) (int, int)
}

// RewardCalculatorV1 values a pawn by how close it is to home, adds a bonus for pawns that
// can no longer be bumped and a larger one for winning, and compares the player against the
// sum of its opponents.
type RewardCalculatorV1 struct{}

func (that RewardCalculatorV1) Calculate(view entity.PlayerView) int {
	reward := len(view.Opponents) * playerScore(view.Player)
	for _, opponent := range view.Opponents {
		reward -= playerScore(opponent)
	}

	return max(reward, 0)
}

func (that RewardCalculatorV1) Range(players int) (int, int) {
	return 0, (players - 1) * maxRewardPerOpponent
}

func playerScore(player *entity.Player) int {
	score := entity.PawnsPerPlayer * board.StartDistance

	for _, pawn := range player.Pawns {
		score -= board.DistanceToHome(player.Color, pawn.Position)

		if pawn.Position.IsSafe() || pawn.Position.IsHome() {
			score += safeIncentive
		}
	}

	if player.AllPawnsInHome() {
		score += winnerIncentive
	}

	return score
}

type rewardCharacter struct {
	calculator RewardCalculator
}

// NewRewardCharacter returns a character that plays the move whose resulting view scores
// highest. Ties go to the earliest move.
func NewRewardCharacter(calculator RewardCalculator) Character {
	return &rewardCharacter{calculator: calculator}
}

func (that *rewardCharacter) Name() string {
	return CharacterReward
}

func (that *rewardCharacter) ChooseMove(_ entity.GameMode, view entity.PlayerView, moves []entity.Move) (*entity.Move, error) {
	var (
		best  *entity.Move
		score int
	)

	for i := range moves {
		result, err := rules.Evaluate(view, moves[i])
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate move %s: %w", moves[i], err)
		}

		if reward := that.calculator.Calculate(result); best == nil || reward > score {
			best, score = &moves[i], reward
		}
	}

	if best == nil {
		return nil, nil
	}

	chosen := *best

	return &chosen, nil
}
