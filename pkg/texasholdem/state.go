package texasholdem

import (
	"casino-server/pkg/deck"
	"casino-server/pkg/poker"
)

// State is a snapshot of the hand suitable for returning to clients. The
// deck itself is never included.
type State struct {
	RoundID        string               `json:"roundId"`
	Seats          []string             `json:"seats"`
	CPUPlayers     []string             `json:"cpuPlayers"`
	Hands          map[string]deck.Hand `json:"hands"`
	CommunityCards deck.Hand            `json:"communityCards"`
	Stage          Stage                `json:"stage"`
	Blind          int                  `json:"blind"`
	Pot            int                  `json:"pot"`
	CurrentBet     int                  `json:"currentBet"`
	RoundBets      map[string]int       `json:"roundBets"`
	Stacks         map[string]int       `json:"stacks"`
	Folded         []string             `json:"folded"`
	LastActions    map[string]Action    `json:"lastActions"`
	ToAct          string               `json:"toAct"`
	SmallBlind     string               `json:"smallBlind"`
	WinningScore   *poker.Evaluation    `json:"winningScore,omitempty"`
	Winners        []string             `json:"winners,omitempty"`
}

// State returns the current snapshot of the hand
func (g *Game) State() *State {
	hands := make(map[string]deck.Hand, len(g.seats))
	roundBets := make(map[string]int, len(g.seats))
	stacks := make(map[string]int, len(g.seats))
	lastActions := make(map[string]Action)
	folded := make([]string, 0)

	for _, name := range g.turnOrder {
		p := g.seats[name]
		hands[name] = p.cards.Clone()
		roundBets[name] = p.roundBet
		stacks[name] = p.stack
		if p.lastAction != "" {
			lastActions[name] = p.lastAction
		}
		if p.folded {
			folded = append(folded, name)
		}
	}

	return &State{
		RoundID:        g.id.String(),
		Seats:          append([]string(nil), g.turnOrder...),
		CPUPlayers:     append([]string(nil), g.cpuNames...),
		Hands:          hands,
		CommunityCards: g.community.Clone(),
		Stage:          g.stage,
		Blind:          g.options.Blind,
		Pot:            g.pot,
		CurrentBet:     g.currentBet,
		RoundBets:      roundBets,
		Stacks:         stacks,
		Folded:         folded,
		LastActions:    lastActions,
		ToAct:          g.toAct,
		SmallBlind:     g.smallBlind,
		WinningScore:   g.winningScore,
		Winners:        g.winners,
	}
}
