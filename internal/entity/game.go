package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/apologies/internal/apperror"
)

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// transitions lists the allowed status changes. Completion is one-way.
var transitions = map[string][]string{
	StatusWaiting:  {StatusOngoing},
	StatusOngoing:  {StatusFinished},
	StatusFinished: {},
}

type GameMode string

const (
	ModeStandard GameMode = "standard"
	ModeAdult    GameMode = "adult"
)

// AdultHandSize is the number of cards each player holds in adult mode.
const AdultHandSize = 5

func (that GameMode) Valid() bool {
	return that == ModeStandard || that == ModeAdult
}

// Rules holds the optional rule variants of a game.
type Rules struct {
	DrawAgainOnTwo bool `json:"draw_again_on_two"`
}

// HistoryEntry records one executed move or passed turn.
type HistoryEntry struct {
	Turn  int   `json:"turn"`
	Color Color `json:"color"`
	Move  Move  `json:"move"`
	Pass  bool  `json:"pass,omitempty"`
}

type Game struct {
	ID      string         `json:"id"`
	Mode    GameMode       `json:"mode"`
	Rules   Rules          `json:"rules"`
	Status  string         `json:"status"`
	Players []*Player      `json:"players"`
	Deck    *Deck          `json:"deck"`
	Turn    Color          `json:"turn"`
	Winner  Color          `json:"winner,omitempty"`
	Turns   int            `json:"turns"`
	History []HistoryEntry `json:"history,omitempty"`
}

// NewGame creates a game waiting to start with every pawn in its start and a freshly shuffled
// deck.
func NewGame(id string, mode GameMode, players int, source Shuffler) (*Game, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown game mode %q", mode)
	}

	colors, err := ColorsFor(players)
	if err != nil {
		return nil, err
	}

	game := &Game{
		ID:      id,
		Mode:    mode,
		Status:  StatusWaiting,
		Players: make([]*Player, 0, len(colors)),
		Deck:    NewDeck(source),
		Turn:    colors[0],
	}

	for _, color := range colors {
		game.Players = append(game.Players, NewPlayer(color))
	}

	return game, nil
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// Transition moves the game to status to, refusing any change the status table does not list.
func (that *Game) Transition(to string) error {
	if !slices.Contains(transitions[that.Status], to) {
		return fmt.Errorf("%w: cannot move from %q to %q", apperror.ErrCorruptState, that.Status, to)
	}

	that.Status = to

	return nil
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameOver
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: unknown game status %q", apperror.ErrCorruptState, that.Status)
	}
}

func (that *Game) Player(color Color) *Player {
	for _, player := range that.Players {
		if player.Color == color {
			return player
		}
	}

	return nil
}

func (that *Game) Colors() []Color {
	colors := make([]Color, 0, len(that.Players))
	for _, player := range that.Players {
		colors = append(colors, player.Color)
	}

	return colors
}

// NextColor returns the color that plays after color in the fixed rotation.
func (that *Game) NextColor(color Color) Color {
	for i, player := range that.Players {
		if player.Color == color {
			return that.Players[(i+1)%len(that.Players)].Color
		}
	}

	return that.Players[0].Color
}

func (that *Game) Pawn(id PawnID) *Pawn {
	player := that.Player(id.Color)
	if player == nil {
		return nil
	}

	return player.Pawn(id.Index)
}

// View returns a copy of the game from color's point of view.
func (that *Game) View(color Color) (PlayerView, error) {
	player := that.Player(color)
	if player == nil {
		return PlayerView{}, fmt.Errorf("no player with color %s", color)
	}

	view := PlayerView{
		Player:    player.Clone(),
		Opponents: make(map[Color]*Player, len(that.Players)-1),
	}

	for _, opponent := range that.Players {
		if opponent.Color == color {
			continue
		}

		opponent = opponent.Clone()
		opponent.Hand = nil
		view.Opponents[opponent.Color] = opponent
	}

	return view, nil
}

// Clone returns a deep copy sharing only the deck's random source.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Players = make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		clone.Players = append(clone.Players, player.Clone())
	}

	if that.Deck != nil {
		clone.Deck = that.Deck.Clone()
	}

	clone.History = slices.Clone(that.History)

	return &clone
}

// PlayerView is a player's copy of the game: its own state including the hand, and its
// opponents without their hands.
type PlayerView struct {
	Player    *Player           `json:"player"`
	Opponents map[Color]*Player `json:"opponents"`
}

// AllPlayers returns the viewing player followed by its opponents in rotation order.
func (that PlayerView) AllPlayers() []*Player {
	players := []*Player{that.Player}
	for _, color := range Colors {
		if opponent, ok := that.Opponents[color]; ok {
			players = append(players, opponent)
		}
	}

	return players
}

func (that PlayerView) Clone() PlayerView {
	clone := PlayerView{
		Player:    that.Player.Clone(),
		Opponents: make(map[Color]*Player, len(that.Opponents)),
	}

	for color, opponent := range that.Opponents {
		clone.Opponents[color] = opponent.Clone()
	}

	return clone
}
