package texasholdem

import (
	"casino-server/pkg/deck"
)

// participant is a single seat in the hand, human or CPU
type participant struct {
	name       string
	stack      int
	roundBet   int
	folded     bool
	cards      deck.Hand
	lastAction Action
}

func newParticipant(name string, stack int) *participant {
	return &participant{
		name:  name,
		stack: stack,
		cards: make(deck.Hand, 0, 2),
	}
}

// newRound resets the per-round betting state
func (p *participant) newRound() {
	p.roundBet = 0
}
