package entity

// Card is an immutable card value. Cards of the same type are interchangeable.
type Card string

const (
	Card1         Card = "1"
	Card2         Card = "2"
	Card3         Card = "3"
	Card4         Card = "4"
	Card5         Card = "5"
	Card7         Card = "7"
	Card8         Card = "8"
	Card10        Card = "10"
	Card11        Card = "11"
	Card12        Card = "12"
	CardApologies Card = "apologies"
)

// CardCounts is the number of copies of each card in a full deck.
var CardCounts = map[Card]int{
	Card1:         5,
	Card2:         4,
	Card3:         4,
	Card4:         4,
	Card5:         4,
	Card7:         4,
	Card8:         4,
	Card10:        4,
	Card11:        4,
	Card12:        4,
	CardApologies: 4,
}

// Cards lists the card types in a stable order.
var Cards = []Card{Card1, Card2, Card3, Card4, Card5, Card7, Card8, Card10, Card11, Card12, CardApologies}

// DeckSize is the total number of cards in a full deck.
const DeckSize = 45

func (that Card) Valid() bool {
	_, ok := CardCounts[that]
	return ok
}

// LeavesStart reports whether the card can move a pawn from start to its exit square.
func (that Card) LeavesStart() bool {
	return that == Card1 || that == Card2
}

// Forward returns how far the card moves a pawn forward, or 0 when it has no forward move.
func (that Card) Forward() int {
	switch that {
	case Card1:
		return 1
	case Card2:
		return 2
	case Card3:
		return 3
	case Card5:
		return 5
	case Card7:
		return 7
	case Card8:
		return 8
	case Card10:
		return 10
	case Card11:
		return 11
	case Card12:
		return 12
	case Card4, CardApologies:
		return 0
	default:
		return 0
	}
}

// Backward returns how far the card moves a pawn backward, or 0 when it has no backward move.
func (that Card) Backward() int {
	switch that {
	case Card4:
		return 4
	case Card10:
		return 1
	default:
		return 0
	}
}

func (that Card) Splits() bool {
	return that == Card7
}

func (that Card) Swaps() bool {
	return that == Card11
}

func (that Card) DrawsAgain() bool {
	return that == Card2
}
