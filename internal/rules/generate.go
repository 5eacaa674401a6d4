package rules

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/apologies/internal/board"
	"github.com/rocketscienceinc/apologies/internal/entity"
)

var positionOrder = map[entity.PositionKind]int{
	entity.KindStart:  0,
	entity.KindSquare: 1,
	entity.KindSafe:   2,
	entity.KindHome:   3,
}

// LegalMoves returns every legal play of card by color in the current game. An empty result
// means the card cannot be played and the turn passes. The result is sorted by the moving
// pawn and then by destination, so identical inputs always yield identical output.
func LegalMoves(game *entity.Game, color entity.Color, card entity.Card) []entity.Move {
	if !card.Valid() {
		return nil
	}

	return legalMoves(newTable(game.Players), color, card)
}

// PlayableMoves returns the legal moves over every card in color's hand. In adult mode a hand
// with nothing playable yields one forfeit per distinct card, letting the player choose the
// discard.
func PlayableMoves(game *entity.Game, color entity.Color) []entity.Move {
	player := game.Player(color)
	if player == nil {
		return nil
	}

	t := newTable(game.Players)
	cards := distinctCards(player.Hand)

	var moves []entity.Move
	for _, card := range cards {
		moves = append(moves, legalMoves(t, color, card)...)
	}

	if len(moves) == 0 && game.Mode == entity.ModeAdult {
		for _, card := range cards {
			moves = append(moves, entity.Move{Color: color, Card: card})
		}
	}

	return moves
}

func legalMoves(t *table, color entity.Color, card entity.Card) []entity.Move {
	player := t.player(color)
	if player == nil {
		return nil
	}

	var moves []entity.Move
	add := func(actions []entity.Action, ok bool) {
		if ok {
			moves = append(moves, entity.Move{Color: color, Card: card, Actions: actions})
		}
	}

	switch card {
	case entity.Card1, entity.Card2:
		for _, pawn := range player.Pawns {
			add(t.leaveStart(pawn))
			add(t.moveBy(pawn, card.Forward()))
		}
	case entity.Card3, entity.Card5, entity.Card8, entity.Card12:
		for _, pawn := range player.Pawns {
			add(t.moveBy(pawn, card.Forward()))
		}
	case entity.Card4:
		for _, pawn := range player.Pawns {
			add(t.moveBy(pawn, -card.Backward()))
		}
	case entity.Card10:
		for _, pawn := range player.Pawns {
			add(t.moveBy(pawn, card.Forward()))
			add(t.moveBy(pawn, -card.Backward()))
		}
	case entity.Card7:
		for _, pawn := range player.Pawns {
			add(t.moveBy(pawn, card.Forward()))
		}

		for _, actions := range t.splits(player, card.Forward()) {
			add(actions, true)
		}
	case entity.Card11:
		for _, pawn := range player.Pawns {
			add(t.moveBy(pawn, card.Forward()))
		}

		for _, actions := range t.swaps(player) {
			add(actions, true)
		}
	case entity.CardApologies:
		for _, actions := range t.apologies(player) {
			add(actions, true)
		}
	default:
		panic(fmt.Sprintf("rules: unhandled card %q", card))
	}

	sortMoves(moves)

	return moves
}

// leaveStart moves a pawn from start onto its exit square.
func (that *table) leaveStart(pawn *entity.Pawn) ([]entity.Action, bool) {
	if !pawn.Position.IsStart() {
		return nil, false
	}

	return that.land(pawn, entity.SquarePosition(board.ExitSquare(pawn.Color)))
}

// moveBy moves a pawn on the board n squares along its path.
func (that *table) moveBy(pawn *entity.Pawn, n int) ([]entity.Action, bool) {
	if n == 0 || (!pawn.Position.IsSquare() && !pawn.Position.IsSafe()) {
		return nil, false
	}

	to, err := board.Position(pawn.Color, pawn.Position, n)
	if err != nil {
		return nil, false
	}

	return that.land(pawn, to)
}

// land builds the actions for pawn arriving at to: the move itself, a bump of any opponent
// already there, and the slide with every pawn it sweeps off. Landing on a pawn of the same
// color is illegal.
func (that *table) land(pawn *entity.Pawn, to entity.Position) ([]entity.Action, bool) {
	id := pawn.ID()
	move := entity.Action{Type: entity.ActionMove, Pawn: id, From: pawn.Position, To: to}

	var bumps []entity.Action
	for _, occupant := range that.occupants(pawn.Color, to) {
		if occupant.ID() == id {
			continue
		}

		if occupant.Color == pawn.Color {
			return nil, false
		}

		bumps = append(bumps, bump(occupant))
	}

	if to.IsSquare() {
		if end, swept, ok := that.slide(pawn, to.Index); ok {
			move.To = end
			move.Slide = true
			bumps = append(bumps, swept...)
		}
	}

	return append([]entity.Action{move}, bumps...), true
}

// slide resolves a pawn of another color's slide starting at square: where the pawn ends up
// and a bump for every other pawn on the squares it sweeps.
func (that *table) slide(pawn *entity.Pawn, square int) (entity.Position, []entity.Action, bool) {
	slide, ok := board.SlideAt(pawn.Color, square)
	if !ok {
		return entity.Position{}, nil, false
	}

	var bumps []entity.Action
	for _, covered := range slide.Covers() {
		for _, occupant := range that.occupants(pawn.Color, entity.SquarePosition(covered)) {
			if occupant.ID() != pawn.ID() {
				bumps = append(bumps, bump(occupant))
			}
		}
	}

	return entity.SquarePosition(slide.End), bumps, true
}

// splits enumerates every way to divide total forward squares between two different pawns.
// The halves are played in sequence; when the first ordering is blocked the reverse one is
// tried.
func (that *table) splits(player *entity.Player, total int) [][]entity.Action {
	var results [][]entity.Action
	for i, first := range player.Pawns {
		for _, second := range player.Pawns[i+1:] {
			for left := 1; left < total; left++ {
				if actions, ok := that.sequence(first.ID(), left, second.ID(), total-left); ok {
					results = append(results, actions)
					continue
				}

				if actions, ok := that.sequence(second.ID(), total-left, first.ID(), left); ok {
					results = append(results, actions)
				}
			}
		}
	}

	return results
}

func (that *table) sequence(first entity.PawnID, firstSquares int, second entity.PawnID, secondSquares int) ([]entity.Action, bool) {
	scratch := that.clone()

	firstActions, ok := scratch.moveBy(scratch.pawn(first), firstSquares)
	if !ok {
		return nil, false
	}

	scratch.apply(firstActions)

	secondActions, ok := scratch.moveBy(scratch.pawn(second), secondSquares)
	if !ok {
		return nil, false
	}

	return append(firstActions, secondActions...), true
}

// swaps enumerates every exchange of an own pawn and an opponent pawn, both on the main track.
// The mover's landing resolves first. If the opponent survives it and was put on a slide
// trigger of another color, it slides too and sweeps whoever stands on that slide.
func (that *table) swaps(player *entity.Player) [][]entity.Action {
	var results [][]entity.Action
	for _, pawn := range player.Pawns {
		if !board.IsShared(pawn.Position) {
			continue
		}

		for _, opponent := range that.opponentsOnTrack(player.Color) {
			swap := entity.Action{Type: entity.ActionSwap, Pawn: opponent.ID(), From: opponent.Position, To: pawn.Position}

			scratch := that.clone()
			scratch.apply([]entity.Action{swap})

			landing, ok := scratch.land(scratch.pawn(pawn.ID()), opponent.Position)
			if !ok {
				continue
			}

			scratch.apply(landing)

			var swept []entity.Action
			if swapped := scratch.pawn(opponent.ID()); swapped.Position == swap.To {
				if end, bumps, ok := scratch.slide(swapped, swap.To.Index); ok {
					swap.To = end
					swap.Slide = true
					swept = bumps
				}
			}

			actions := append([]entity.Action{landing[0], swap}, landing[1:]...)
			results = append(results, append(actions, swept...))
		}
	}

	return results
}

// apologies enumerates every start pawn taking the place of an opponent on the main track.
func (that *table) apologies(player *entity.Player) [][]entity.Action {
	targets := that.opponentsOnTrack(player.Color)

	var results [][]entity.Action
	for _, pawn := range player.Pawns {
		if !pawn.Position.IsStart() {
			continue
		}

		for _, target := range targets {
			if actions, ok := that.land(pawn, target.Position); ok {
				results = append(results, actions)
			}
		}
	}

	return results
}

func bump(pawn *entity.Pawn) entity.Action {
	return entity.Action{Type: entity.ActionBump, Pawn: pawn.ID(), From: pawn.Position, To: entity.StartPosition()}
}

func distinctCards(hand []entity.Card) []entity.Card {
	cards := make([]entity.Card, 0, len(hand))
	for _, card := range hand {
		if !slices.Contains(cards, card) {
			cards = append(cards, card)
		}
	}

	return cards
}

func sortMoves(moves []entity.Move) {
	slices.SortStableFunc(moves, func(a, b entity.Move) int {
		// forfeits first, in hand order
		switch {
		case a.IsForfeit() && b.IsForfeit():
			return 0
		case a.IsForfeit():
			return -1
		case b.IsForfeit():
			return 1
		}

		first, second := a.Actions[0], b.Actions[0]
		if c := cmp.Compare(first.Pawn.Index, second.Pawn.Index); c != 0 {
			return c
		}

		if c := cmp.Compare(positionOrder[first.To.Kind], positionOrder[second.To.Kind]); c != 0 {
			return c
		}

		return cmp.Compare(first.To.Index, second.To.Index)
	})
}
