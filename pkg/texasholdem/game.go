package texasholdem

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"casino-server/pkg/deck"
	"casino-server/pkg/poker"
)

// HumanSeat is the name of the human player's seat
const HumanSeat = "Player"

// whose turn it is
const (
	toActPlayer = "player"
	toActCPU    = "cpu"
)

// Game is a single-player hand of Texas Hold'em: one human seat against
// one to seven CPU seats. The human posts the small blind and the first
// CPU posts the big blind; the deck backing the hand is never exposed.
type Game struct {
	id      uuid.UUID
	options Options
	logger  logrus.FieldLogger

	deck      *deck.Deck
	seats     map[string]*participant
	turnOrder []string
	cpuNames  []string

	community    deck.Hand
	stage        Stage
	pot          int
	currentBet   int
	toAct        string
	smallBlind   string
	winners      []string
	winningScore *poker.Evaluation
}

// NewGame starts a new hand: shuffles a fresh deck, posts the blinds,
// deals two hole cards to every seat, and lets the later-position CPUs
// respond to the blinds before handing the first action to the player.
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	smallBlind := opts.Blind / 2
	if smallBlind < 1 {
		smallBlind = 1
	}

	if opts.PlayerBankroll < smallBlind {
		return nil, Error("small blind stack too low")
	}

	if opts.CPUBankroll < opts.Blind {
		return nil, Error("big blind stack too low")
	}

	d := deck.New()
	if opts.seed != 0 {
		d.SetSeed(opts.seed)
	}
	d.Shuffle()

	cpuNames := make([]string, opts.CPUCount)
	turnOrder := make([]string, 0, opts.CPUCount+1)
	turnOrder = append(turnOrder, HumanSeat)

	seats := make(map[string]*participant)
	seats[HumanSeat] = newParticipant(HumanSeat, opts.PlayerBankroll)
	for i := range cpuNames {
		name := fmt.Sprintf("CPU%d", i+1)
		cpuNames[i] = name
		turnOrder = append(turnOrder, name)
		seats[name] = newParticipant(name, opts.CPUBankroll)
	}

	g := &Game{
		id:        uuid.New(),
		options:   opts,
		logger:    logger.WithField("game", "texas-holdem"),
		deck:      d,
		seats:     seats,
		turnOrder: turnOrder,
		cpuNames:  cpuNames,
		community: make(deck.Hand, 0, 5),
		stage:     StagePreflop,
		toAct:     toActPlayer,
	}

	for _, name := range turnOrder {
		for i := 0; i < 2; i++ {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			seats[name].cards.AddCard(card)
		}
	}

	// player posts the small blind, the first CPU posts the big blind
	g.smallBlind = HumanSeat
	if err := g.postBet(HumanSeat, smallBlind); err != nil {
		return nil, err
	}
	if err := g.postBet(cpuNames[0], opts.Blind); err != nil {
		return nil, err
	}

	// later-position CPUs respond to the blinds right away
	if err := g.initialCPUActions(); err != nil {
		return nil, err
	}
	g.toAct = toActPlayer

	g.logger.WithFields(logrus.Fields{
		"id":    g.id,
		"blind": opts.Blind,
		"cpus":  opts.CPUCount,
	}).Info("started new hand")

	return g, nil
}

// initialCPUActions lets CPU seats two through four take one action
// responding to the blinds before the hand's first player action. With a
// single CPU opponent no seat pre-acts.
func (g *Game) initialCPUActions() error {
	last := len(g.cpuNames)
	if last > 4 {
		last = 4
	}

	for _, name := range g.cpuNames[1:last] {
		if g.stage == StageFinished {
			break
		}

		if err := g.applyCPUAction(name); err != nil {
			return err
		}
	}

	return nil
}

// ID returns the unique identifier for this hand
func (g *Game) ID() string {
	return g.id.String()
}

// Stage returns the stage the hand is in
func (g *Game) Stage() Stage {
	return g.stage
}

// activePlayers returns the seats still in the hand, in turn order
func (g *Game) activePlayers() []string {
	active := make([]string, 0, len(g.turnOrder))
	for _, name := range g.turnOrder {
		if !g.seats[name].folded {
			active = append(active, name)
		}
	}

	return active
}
