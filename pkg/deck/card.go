package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants, using the single-letter codes the wire format expects
const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Suits is the deck-building order of the four suits
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// Card is an individual playing card
type Card struct {
	Rank int
	Suit Suit
}

// String returns the compact token for the card, i.e., "AS" or "10H"
func (c *Card) String() string {
	return fmt.Sprintf("%s%s", rankToken(c.Rank), c.Suit)
}

func rankToken(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(rank)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank returns the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^(10|[2-9]|[JQKA])([SHDC])\z`)

// ParseCard parses a card token in the format of <rank><suit> where
// rank is 2-10, J, Q, K, or A and suit is S, H, D, or C
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	var rank int
	switch token := strings.ToUpper(match[1]); token {
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		rank, _ = strconv.Atoi(token)
	}

	return &Card{
		Rank: rank,
		Suit: Suit(strings.ToUpper(match[2])),
	}, nil
}

// CardFromString returns a Card from the token
// Panics if the token is invalid, so only use with trusted input (i.e., tests)
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// CardsFromString will return a slice of cards from a comma-separated token list
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Spades) to a token (AS)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return card.String()
}

// CardsToString will convert a slice of cards to a string in the format of 2C,3H,4S,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}

// MarshalJSON encodes the card as its wire token
func (c *Card) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalJSON decodes a card from its wire token
func (c *Card) UnmarshalJSON(data []byte) error {
	token, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	card, err := ParseCard(token)
	if err != nil {
		return err
	}

	*c = *card
	return nil
}
