package texasholdem

import (
	"github.com/sirupsen/logrus"

	"casino-server/pkg/poker"
)

// postBet moves amount from the participant's stack into the pot and
// raises the bet-to-match if the participant's round contribution now
// exceeds it
func (g *Game) postBet(name string, amount int) error {
	p := g.seats[name]

	if amount <= 0 {
		return Error("bet amount must be > 0")
	}

	if p.stack < amount {
		return ErrInsufficientStack
	}

	p.stack -= amount
	p.roundBet += amount
	g.pot += amount
	if p.roundBet > g.currentBet {
		g.currentBet = p.roundBet
	}

	return nil
}

// callOrCheck calls up to the current bet, or checks if there is nothing
// to call. A participant short on chips calls for their whole stack.
// Returns the amount moved into the pot.
func (g *Game) callOrCheck(name string) int {
	p := g.seats[name]

	toCall := g.currentBet - p.roundBet
	if toCall <= 0 {
		return 0
	}

	if toCall > p.stack {
		toCall = p.stack
	}

	p.stack -= toCall
	p.roundBet += toCall
	g.pot += toCall

	return toCall
}

// roundSettled returns true if every active participant with chips behind
// has matched the current bet. All-in seats are exempt, and an empty
// active set is vacuously settled.
func (g *Game) roundSettled() bool {
	for _, name := range g.activePlayers() {
		p := g.seats[name]
		if p.stack == 0 {
			continue
		}

		if p.roundBet != g.currentBet {
			return false
		}
	}

	return true
}

// dealCommunity draws n cards onto the board
func (g *Game) dealCommunity(n int) error {
	for i := 0; i < n; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.community.AddCard(card)
	}

	return nil
}

// advanceStage moves the hand to the next stage, reveals the community
// cards that stage calls for, and resets the round betting state with the
// player first to act
func (g *Game) advanceStage() error {
	switch g.stage {
	case StagePreflop:
		if err := g.dealCommunity(3); err != nil {
			return err
		}
		g.stage = StageFlop
	case StageFlop:
		if err := g.dealCommunity(1); err != nil {
			return err
		}
		g.stage = StageTurn
	case StageTurn:
		if err := g.dealCommunity(1); err != nil {
			return err
		}
		g.stage = StageRiver
	case StageRiver:
		g.stage = StageShowdown
	}

	for _, p := range g.seats {
		p.newRound()
	}
	g.currentBet = 0
	g.toAct = toActPlayer

	return nil
}

// awardPot splits the pot among the winners by integer division, handing
// the remainder out one chip at a time in turn order starting from the
// first winner
func (g *Game) awardPot(winners []string) {
	if len(winners) == 0 {
		return
	}

	split := g.pot / len(winners)
	remainder := g.pot % len(winners)
	for i, name := range winners {
		amount := split
		if i < remainder {
			amount++
		}

		g.seats[name].stack += amount
	}
}

// finishOnFold marks the participant folded. If the human folded, or only
// one seat remains, the hand ends immediately and the pot goes to the
// remaining active seats.
func (g *Game) finishOnFold(name string) {
	g.seats[name].folded = true

	remaining := g.activePlayers()
	if name == HumanSeat || len(remaining) <= 1 {
		g.winners = remaining
		g.awardPot(remaining)
		g.stage = StageFinished

		g.logger.WithFields(logrus.Fields{
			"folded":  name,
			"winners": remaining,
		}).Info("hand ended on fold")
	}
}

// settleShowdown evaluates every non-folded hand against the board,
// records the co-winners at the top score, splits the pot, and finishes
// the hand. Winners keep turn order so remainder chips land
// deterministically.
func (g *Game) settleShowdown() {
	var winners []string
	var best *poker.Evaluation

	for _, name := range g.activePlayers() {
		ev := poker.Evaluate(append(g.seats[name].cards.Clone(), g.community...))
		if best == nil || poker.Compare(ev, *best) > 0 {
			best = &ev
			winners = []string{name}
		} else if poker.Compare(ev, *best) == 0 {
			winners = append(winners, name)
		}
	}

	g.winners = winners
	g.winningScore = best
	g.awardPot(winners)
	g.stage = StageFinished

	g.logger.WithFields(logrus.Fields{
		"winners": winners,
		"pot":     g.pot,
	}).Info("hand settled at showdown")
}

// maybeProgressRound advances the stage once betting is settled,
// settling the showdown when the river round closes. If all but one
// seat folded the hand ends immediately.
func (g *Game) maybeProgressRound() error {
	switch g.stage {
	case StageFinished:
		return nil
	case StageShowdown:
		g.settleShowdown()
		return nil
	}

	if active := g.activePlayers(); len(active) <= 1 {
		g.winners = active
		g.awardPot(active)
		g.stage = StageFinished
		return nil
	}

	if !g.roundSettled() {
		return nil
	}

	if err := g.advanceStage(); err != nil {
		return err
	}

	if g.stage == StageShowdown {
		g.settleShowdown()
	}

	return nil
}

// applyCPUAction asks the policy for a decision and applies it for the
// named CPU seat
func (g *Game) applyCPUAction(name string) error {
	action, amount := g.decideCPUAction(name)
	g.seats[name].lastAction = action

	g.logger.WithFields(logrus.Fields{
		"seat":   name,
		"action": action,
		"amount": amount,
	}).Debug("cpu action")

	switch action {
	case ActionFold:
		g.finishOnFold(name)
	case ActionStay:
		g.callOrCheck(name)
	case ActionRaise:
		g.callOrCheck(name)

		// the call may have eaten into the planned raise
		if stack := g.seats[name].stack; amount > stack {
			amount = stack
		}
		if amount > 0 {
			if err := g.postBet(name, amount); err != nil {
				return err
			}
		}
	}

	return nil
}

// cpuTakeTurns runs each active CPU seat in order, then hands the turn
// back to the player. Stops early if a fold ends the hand.
func (g *Game) cpuTakeTurns() error {
	for _, name := range g.cpuNames {
		if g.seats[name].folded {
			continue
		}

		if g.stage == StageFinished {
			return nil
		}

		if err := g.applyCPUAction(name); err != nil {
			return err
		}

		if g.stage == StageFinished {
			return nil
		}
	}

	g.toAct = toActPlayer
	return nil
}

// PlayerAction performs the human player's action for the current betting
// round, then drives all CPU turns and any stage advancement before
// returning
func (g *Game) PlayerAction(action Action, amount int) error {
	if !g.stage.isBetting() {
		return newError("invalid state: %s", g.stage)
	}

	if g.toAct != toActPlayer {
		return Error("not player's turn")
	}

	player := g.seats[HumanSeat]

	if action == ActionRaise {
		if amount <= 0 {
			return Error("raise amount must be > 0")
		}

		toCall := g.currentBet - player.roundBet
		if toCall < 0 {
			toCall = 0
		}
		if player.stack < toCall+amount {
			return ErrInsufficientStack
		}
	}

	player.lastAction = action

	switch action {
	case ActionFold:
		g.finishOnFold(HumanSeat)
		return nil
	case ActionStay:
		g.callOrCheck(HumanSeat)
	case ActionRaise:
		g.callOrCheck(HumanSeat)
		if err := g.postBet(HumanSeat, amount); err != nil {
			return err
		}
	default:
		return newError("%s is not a valid action", action)
	}

	g.toAct = toActCPU
	if err := g.cpuTakeTurns(); err != nil {
		return err
	}

	if g.stage != StageFinished && g.toAct == toActPlayer && g.roundSettled() {
		return g.maybeProgressRound()
	}

	return nil
}

// DealFlop reveals the flop once preflop betting is settled
func (g *Game) DealFlop() error {
	return g.manualAdvance(StagePreflop)
}

// DealTurn reveals the turn once flop betting is settled
func (g *Game) DealTurn() error {
	return g.manualAdvance(StageFlop)
}

// DealRiver reveals the river once turn betting is settled
func (g *Game) DealRiver() error {
	return g.manualAdvance(StageTurn)
}

// Showdown settles the hand once river betting is settled
func (g *Game) Showdown() error {
	return g.manualAdvance(StageRiver)
}

// manualAdvance performs an explicit stage transition requested by the
// caller, enforcing that the hand is in the expected prior stage with all
// bets settled
func (g *Game) manualAdvance(from Stage) error {
	if g.stage != from {
		return newError("invalid state for %s: %s", from.next(), g.stage)
	}

	if !g.roundSettled() {
		return Error("not all players have settled their bets")
	}

	if err := g.advanceStage(); err != nil {
		return err
	}

	if g.stage == StageShowdown {
		g.settleShowdown()
	}

	return nil
}
