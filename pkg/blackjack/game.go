package blackjack

import (
	"github.com/sirupsen/logrus"

	"casino-server/pkg/deck"
)

// Status is the outcome state of a hand of blackjack
type Status string

// statuses a hand can be in
const (
	StatusInProgress Status = "in_progress"
	StatusPlayerBust Status = "player_bust"
	StatusDealerBust Status = "dealer_bust"
	StatusPlayerWin  Status = "player_win"
	StatusDealerWin  Status = "dealer_win"
	StatusPush       Status = "push"
)

// Error is a user-facing game error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// dealerStandsAt is the total the dealer stops hitting at
const dealerStandsAt = 17

// Game is a single hand of blackjack against the dealer
type Game struct {
	logger logrus.FieldLogger

	deck   *deck.Deck
	player deck.Hand
	dealer deck.Hand
	bet    int
	status Status
}

// NewGame deals a fresh hand: two cards to the player and two to the
// dealer. A natural 21 on either side resolves the hand immediately.
func NewGame(logger logrus.FieldLogger, bet int) (*Game, error) {
	if bet <= 0 {
		return nil, Error("bet must be > 0")
	}

	d := deck.New()
	d.Shuffle()

	g := &Game{
		logger: logger.WithField("game", "blackjack"),
		deck:   d,
		player: make(deck.Hand, 0, 5),
		dealer: make(deck.Hand, 0, 5),
		bet:    bet,
		status: StatusInProgress,
	}

	for i := 0; i < 2; i++ {
		if err := g.dealTo(&g.player); err != nil {
			return nil, err
		}
		if err := g.dealTo(&g.dealer); err != nil {
			return nil, err
		}
	}

	playerTotal := HandTotal(g.player)
	dealerTotal := HandTotal(g.dealer)
	switch {
	case playerTotal == 21 && dealerTotal == 21:
		g.status = StatusPush
	case playerTotal == 21:
		g.status = StatusPlayerWin
	case dealerTotal == 21:
		g.status = StatusDealerWin
	}

	g.logger.WithFields(logrus.Fields{
		"bet":    bet,
		"status": g.status,
	}).Info("started new hand")

	return g, nil
}

func (g *Game) dealTo(hand *deck.Hand) error {
	card, err := g.deck.Draw()
	if err != nil {
		return err
	}

	hand.AddCard(card)
	return nil
}

// Hit draws one more card for the player, busting the hand if the total
// passes 21
func (g *Game) Hit() error {
	if g.status != StatusInProgress {
		return Error("round is not active: " + string(g.status))
	}

	if err := g.dealTo(&g.player); err != nil {
		return err
	}

	if HandTotal(g.player) > 21 {
		g.status = StatusPlayerBust
	}

	return nil
}

// Stand ends the player's turn: the dealer draws to 17 and the hand
// resolves
func (g *Game) Stand() error {
	if g.status != StatusInProgress {
		return Error("round is not active: " + string(g.status))
	}

	for HandTotal(g.dealer) < dealerStandsAt {
		if err := g.dealTo(&g.dealer); err != nil {
			return err
		}
	}

	g.resolve()
	return nil
}

// resolve sets the final status from the two totals
func (g *Game) resolve() {
	playerTotal := HandTotal(g.player)
	dealerTotal := HandTotal(g.dealer)

	switch {
	case dealerTotal > 21:
		g.status = StatusDealerBust
	case playerTotal > dealerTotal:
		g.status = StatusPlayerWin
	case playerTotal < dealerTotal:
		g.status = StatusDealerWin
	default:
		g.status = StatusPush
	}

	g.logger.WithFields(logrus.Fields{
		"player": playerTotal,
		"dealer": dealerTotal,
		"status": g.status,
	}).Info("hand resolved")
}

// HandTotal scores a blackjack hand. Face cards count 10, aces count 11
// but downgrade to 1 one at a time while the total is over 21.
func HandTotal(hand deck.Hand) int {
	total := 0
	aces := 0
	for _, c := range hand {
		switch {
		case c.Rank >= deck.Jack && c.Rank <= deck.King:
			total += 10
		case c.Rank == deck.Ace:
			total += 11
			aces++
		default:
			total += c.Rank
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// State is a snapshot of the hand suitable for returning to clients
type State struct {
	PlayerHand  deck.Hand `json:"playerHand"`
	DealerHand  deck.Hand `json:"dealerHand"`
	PlayerTotal int       `json:"playerTotal"`
	DealerTotal int       `json:"dealerTotal"`
	Bet         int       `json:"bet"`
	Status      Status    `json:"status"`
}

// State returns the current snapshot of the hand
func (g *Game) State() *State {
	return &State{
		PlayerHand:  g.player.Clone(),
		DealerHand:  g.dealer.Clone(),
		PlayerTotal: HandTotal(g.player),
		DealerTotal: HandTotal(g.dealer),
		Bet:         g.bet,
		Status:      g.status,
	}
}
