package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)

	deck := New()
	a.Equal(52, deck.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Spades}, *deck.Cards[0])
	a.Equal(Card{Rank: Ace, Suit: Clubs}, *deck.Cards[51])

	// exactly the 52 canonical rank x suit combinations
	seen := make(map[Card]int)
	for _, card := range deck.Cards {
		seen[*card]++
	}

	a.Equal(52, len(seen))
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			a.Equal(1, seen[Card{Rank: rank, Suit: suit}])
		}
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	deck := New()
	unshuffled := deck.HashCode()

	deck.SetSeed(1)
	deck.Shuffle()
	a.NotEqual(unshuffled, deck.HashCode())
	a.Equal(52, deck.CardsLeft())

	// same seed shuffles into the same order
	deck2 := New()
	deck2.SetSeed(1)
	deck2.Shuffle()
	a.Equal(deck.HashCode(), deck2.HashCode())

	// shuffling the same deck again moves on to the next permutation
	shuffled := deck.HashCode()
	deck.Shuffle()
	a.NotEqual(shuffled, deck.HashCode())

	// a shuffle is still a permutation of the full deck
	seen := make(map[Card]bool)
	for _, card := range deck.Cards {
		seen[*card] = true
	}
	a.Equal(52, len(seen))
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	top := *deck.Cards[0]
	card, err := deck.Draw()
	if err != nil {
		t.Errorf("expected err to be nil, got %v", err)
	}

	if !card.Equal(&top) {
		t.Errorf("expected Draw() to remove from the top, got %s", card)
	}

	for i := 0; i < 51; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err = deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	deck.Shuffle()
	if !deck.CanDraw(52) {
		t.Errorf("expected Shuffle() to rebuild the deck")
	}
}

func TestDeck_GetSeed(t *testing.T) {
	d := New()
	assert.Equal(t, int64(-1), d.GetSeed())

	d.SetSeed(77)
	assert.Equal(t, int64(77), d.GetSeed())
}
