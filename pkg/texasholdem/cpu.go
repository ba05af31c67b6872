package texasholdem

import (
	"sort"

	"casino-server/pkg/deck"
	"casino-server/pkg/poker"
)

// decision thresholds, tuned by hand. Strengths are on a 0-1 scale.
const (
	// unopened pot
	strongOpenThreshold = 0.7
	mediumOpenThreshold = 0.5

	// facing a bet
	threeBetThreshold       = 0.75
	callThreshold           = 0.55
	secondaryRaiseThreshold = 0.65
	mediumCallThreshold     = 0.35
	desperationThreshold    = 0.2

	// pot odds (to_call / (pot + to_call)); lower is a better price
	potOddsCallThreshold      = 0.35
	potOddsDesperateThreshold = 0.2

	// draw potential strong enough to call a bet on its own
	drawCallPotential = 0.6
)

// strength/potential blend weights per stage
const (
	lateStrengthWeight  = 0.9
	earlyStrengthWeight = 0.6
)

// decideCPUAction picks an action for the named CPU seat from its hand
// strength, pot odds, draw potential, opponent count, and stack depth.
// Returns the action plus the raise amount on top of any call.
func (g *Game) decideCPUAction(name string) (Action, int) {
	p := g.seats[name]
	community := g.community

	toCall := g.currentBet - p.roundBet

	var strength float64
	if g.stage == StagePreflop {
		strength = poker.PreflopStrength(p.cards[0], p.cards[1]) / 10.0
	} else {
		strength = float64(poker.Evaluate(append(p.cards.Clone(), community...)).Rank) / 10.0
	}

	potOdds := g.potOdds(toCall)
	opponents := len(g.activePlayers()) - 1
	potential := handPotential(p.cards, community)

	// on the turn and river the hand is mostly known, so the made
	// strength dominates; earlier the draw potential matters more
	var adjusted float64
	if g.stage == StageTurn || g.stage == StageRiver {
		adjusted = strength*lateStrengthWeight + potential*(1-lateStrengthWeight)
	} else {
		adjusted = strength*earlyStrengthWeight + potential*(1-earlyStrengthWeight)
	}

	action := ActionFold
	amount := 0

	if toCall <= 0 {
		// nothing to call: open-raise or check
		switch {
		case adjusted >= strongOpenThreshold:
			amount = g.pot / 2
			if amount > p.stack {
				amount = p.stack
			}
			if amount < 1 {
				amount = 1
			}
			action = ActionRaise
		case adjusted >= mediumOpenThreshold && (opponents <= 1 || p.stack > g.pot*2):
			amount = g.pot / 4
			if amount > p.stack {
				amount = p.stack
			}
			action = ActionRaise
		default:
			action = ActionStay
		}
	} else {
		switch {
		case adjusted >= threeBetThreshold:
			// raise only with enough behind to cover a 3-bet
			if p.stack > toCall*2 {
				action = ActionRaise
				amount = minInt(toCall*2, p.stack-toCall)
			} else {
				action = ActionStay
			}

		case adjusted >= callThreshold || potOdds <= potOddsCallThreshold:
			if adjusted >= secondaryRaiseThreshold && p.stack > toCall*2 {
				action = ActionRaise
				amount = minInt(toCall*3/2, p.stack-toCall)
			} else {
				action = ActionStay
			}

		case adjusted >= mediumCallThreshold:
			if potOdds <= potOddsCallThreshold || potential >= drawCallPotential {
				action = ActionStay
			} else {
				action = ActionFold
			}

		case (p.stack <= toCall*2 && adjusted >= desperationThreshold) || potOdds <= potOddsDesperateThreshold:
			// short stacks push with marginal hands rather than bleed out
			action = ActionStay

		default:
			action = ActionFold
		}
	}

	if amount > p.stack {
		amount = p.stack
	}
	if action == ActionRaise && amount <= 0 {
		action = ActionStay
		amount = 0
	}

	return action, amount
}

// potOdds returns to_call / (pot + to_call), or 0 when there is nothing
// to call. A lower ratio is a better price to continue.
func (g *Game) potOdds(toCall int) float64 {
	if toCall <= 0 {
		return 0
	}

	return float64(toCall) / float64(g.pot+toCall)
}

// handPotential estimates how likely the hand is to improve, on a 0-1
// scale. Hands that are already strong get a small fixed value since
// there is little upside left; otherwise flush draws, straight draws, and
// overcards accumulate potential.
func handPotential(hole deck.Hand, community deck.Hand) float64 {
	if len(hole) != 2 {
		return 0
	}

	made := poker.Evaluate(append(hole.Clone(), community...)).Rank
	switch {
	case made >= poker.FourOfAKind:
		return 0.1
	case made >= poker.Flush:
		return 0.3
	case made >= poker.Straight:
		return 0.4
	}

	potential := 0.0

	// flush draw: suited hole cards with two or more of the suit on board
	if hole[0].Suit == hole[1].Suit {
		suited := 0
		for _, c := range community {
			if c.Suit == hole[0].Suit {
				suited++
			}
		}

		if suited >= 2 {
			potential += 0.5
		}
	}

	if hasStraightDraw(hole, community) {
		potential += 0.4
	}

	// overcards: both hole cards above the whole board
	if len(community) > 0 {
		high := 0
		for _, c := range community {
			if c.Rank > high {
				high = c.Rank
			}
		}

		if hole[0].Rank > high && hole[1].Rank > high {
			potential += 0.3
		}
	}

	if potential > 1.0 {
		potential = 1.0
	}

	return potential
}

// hasStraightDraw detects open-ended or gutshot straight draws: two or
// more one-rank holes across the distinct ranks in play, or hole cards
// within three ranks of each other
func hasStraightDraw(hole deck.Hand, community deck.Hand) bool {
	holeGap := hole[0].Rank - hole[1].Rank
	if holeGap < 0 {
		holeGap = -holeGap
	}
	if holeGap <= 3 {
		return true
	}

	distinct := make(map[int]bool)
	for _, c := range hole {
		distinct[c.Rank] = true
	}
	for _, c := range community {
		distinct[c.Rank] = true
	}

	ranks := make([]int, 0, len(distinct))
	for r := range distinct {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)

	oneGaps := 0
	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] == 2 {
			oneGaps++
		}
	}

	return oneGaps >= 2
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
