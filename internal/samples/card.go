package samples

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/model"
)

var (
	Ranks = []string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}
	Suits = []string{"Clubs", "Diamonds", "Hearts", "Spades"}
)

// Card is a playing card with a chess piece attached. Its fields are
// unexported and reached through setters.
type Card struct {
	model.ItemMarker

	rank  string `form:"Enter the rank"`
	suit  string `form:"Enter the suit"`
	piece Piece  `form:""`
}

// NewCard returns the n-th card of a 52 card deck; out of range values map
// to the first card.
func NewCard(n int) *Card {
	if n < 0 || n >= 52 {
		n = 0
	}
	return &Card{rank: Ranks[n%13], suit: Suits[n/13]}
}

func (c *Card) Rank() string        { return c.rank }
func (c *Card) Suit() string        { return c.suit }
func (c *Card) Piece() Piece        { return c.piece }
func (c *Card) SetRank(rank string) { c.rank = rank }
func (c *Card) SetSuit(suit string) { c.suit = suit }
func (c *Card) SetPiece(p Piece)    { c.piece = p }

func (c *Card) String() string {
	return fmt.Sprintf("%s of %s with piece: %s", c.rank, c.suit, c.piece)
}
