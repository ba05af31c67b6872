package texasholdem

import (
	"testing"

	"casino-server/pkg/deck"
)

func cards(t *testing.T, s string) deck.Hand {
	t.Helper()
	return deck.CardsFromString(s)
}
