package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/apologies/internal/apperror"
)

// Shuffler is the random source used to reorder the draw pile. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck owns the draw pile, the discard pile and the cards currently held by players.
// Every card is always in exactly one of the three.
type Deck struct {
	DrawPile    []Card `json:"draw_pile"`
	DiscardPile []Card `json:"discard_pile"`
	InPlay      []Card `json:"in_play"`

	source Shuffler
}

// NewDeck assembles a full deck and shuffles it with source.
func NewDeck(source Shuffler) *Deck {
	deck := &Deck{
		DrawPile:    make([]Card, 0, DeckSize),
		DiscardPile: make([]Card, 0, DeckSize),
		source:      source,
	}

	for _, card := range Cards {
		for range CardCounts[card] {
			deck.DrawPile = append(deck.DrawPile, card)
		}
	}

	deck.shuffle()

	return deck
}

// SetSource replaces the random source, e.g. after a deck was restored from storage.
func (that *Deck) SetSource(source Shuffler) {
	that.source = source
}

// Draw takes the top card of the draw pile, reshuffling the discard pile into a new draw pile
// when the draw pile is exhausted.
func (that *Deck) Draw() (Card, error) {
	if len(that.DrawPile) == 0 {
		that.reshuffle()
	}

	if len(that.DrawPile) == 0 {
		return "", apperror.ErrEmptyDeck
	}

	last := len(that.DrawPile) - 1
	card := that.DrawPile[last]
	that.DrawPile = that.DrawPile[:last]
	that.InPlay = append(that.InPlay, card)

	return card, nil
}

// Discard returns a card that is in play to the discard pile.
func (that *Deck) Discard(card Card) error {
	for i, held := range that.InPlay {
		if held == card {
			that.InPlay = append(that.InPlay[:i], that.InPlay[i+1:]...)
			that.DiscardPile = append(that.DiscardPile, card)

			return nil
		}
	}

	return fmt.Errorf("%w: %s", apperror.ErrCardNotInPlay, card)
}

func (that *Deck) DrawCount() int {
	return len(that.DrawPile)
}

func (that *Deck) DiscardCount() int {
	return len(that.DiscardPile)
}

func (that *Deck) InPlayCount() int {
	return len(that.InPlay)
}

func (that *Deck) Total() int {
	return len(that.DrawPile) + len(that.DiscardPile) + len(that.InPlay)
}

// Validate checks that the deck still holds exactly one full set of cards.
func (that *Deck) Validate() error {
	counts := make(map[Card]int, len(CardCounts))
	for _, pile := range [][]Card{that.DrawPile, that.DiscardPile, that.InPlay} {
		for _, card := range pile {
			counts[card]++
		}
	}

	for _, card := range Cards {
		if counts[card] != CardCounts[card] {
			return fmt.Errorf("%w: deck holds %d of card %s, want %d", apperror.ErrCorruptState, counts[card], card, CardCounts[card])
		}
	}

	if total := that.Total(); total != DeckSize {
		return fmt.Errorf("%w: deck holds %d cards, want %d", apperror.ErrCorruptState, total, DeckSize)
	}

	return nil
}

func (that *Deck) Clone() *Deck {
	return &Deck{
		DrawPile:    slices.Clone(that.DrawPile),
		DiscardPile: slices.Clone(that.DiscardPile),
		InPlay:      slices.Clone(that.InPlay),
		source:      that.source,
	}
}

func (that *Deck) reshuffle() {
	that.DrawPile = append(that.DrawPile, that.DiscardPile...)
	that.DiscardPile = that.DiscardPile[:0]
	that.shuffle()
}

func (that *Deck) shuffle() {
	if that.source == nil {
		return
	}

	that.source.Shuffle(len(that.DrawPile), func(i, j int) {
		that.DrawPile[i], that.DrawPile[j] = that.DrawPile[j], that.DrawPile[i]
	})
}
