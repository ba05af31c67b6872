package poker

import "casino-server/pkg/deck"

// PreflopStrength scores a two-card starting hand on a 0-10 scale.
//
// This is a handcrafted tiering over pairs, suitedness, connectedness, and
// high-card buckets (AA/KK at the top, junk offsuit low cards at the bottom),
// not a derived equity model. It is only consulted before the flop.
func PreflopStrength(a, b *deck.Card) float64 {
	isPair := a.Rank == b.Rank
	isSuited := a.Suit == b.Suit

	gap := a.Rank - b.Rank
	if gap < 0 {
		gap = -gap
	}
	isConnected := gap == 1
	isOneGap := gap == 2

	highRank := a.Rank
	lowRank := b.Rank
	if lowRank > highRank {
		highRank, lowRank = lowRank, highRank
	}

	// pocket pairs
	if isPair {
		switch {
		case highRank >= deck.King: // AA, KK
			return 9.5
		case highRank >= deck.Jack: // QQ, JJ
			return 8.5
		case highRank >= 9: // 10-10, 99
			return 7.0
		case highRank >= 5: // 88-55
			return 5.5
		}
		return 4.0 // 44-22
	}

	// ace-high hands
	if highRank >= deck.King {
		switch {
		case lowRank >= deck.Queen: // AK, AQ
			return suitedOr(isSuited, 9.0, 8.5)
		case lowRank >= deck.Jack: // AJ
			return suitedOr(isSuited, 8.0, 7.5)
		case lowRank >= 10: // A10
			return suitedOr(isSuited, 7.0, 5.5)
		case lowRank >= 5: // A9-A5 (wheel potential)
			return suitedOr(isSuited, 5.0, 3.5)
		}
		return 2.5
	}

	// king-high and queen-high hands
	if highRank >= deck.Queen {
		switch {
		case lowRank >= deck.Queen: // KQ
			return suitedOr(isSuited, 8.0, 7.5)
		case lowRank >= deck.Jack: // KJ, QJ
			return suitedOr(isSuited, 7.0, 6.5)
		case lowRank >= 10: // K10, Q10
			return suitedOr(isSuited, 6.0, 5.0)
		case lowRank >= 9 && isSuited:
			return 5.5
		case lowRank >= 5 && isSuited:
			return 4.5
		}
		return suitedOr(isSuited, 3.0, 2.0)
	}

	// suited or connected middling hands
	if isSuited {
		if isConnected {
			switch {
			case highRank >= 10: // J10-98 suited
				return 6.5
			case highRank >= 8: // 87-76 suited
				return 5.0
			}
			return 4.0 // 65 and below, suited connected
		}

		if isOneGap {
			if highRank >= 9 { // J9-97 suited gapped
				return 5.5
			}
			return 4.0
		}

		if highRank >= 10 { // high suited but disconnected
			return 5.0
		}
		return 3.5
	}

	// unsuited connectors
	if isConnected {
		switch {
		case highRank >= 10: // J10-98 offsuit
			return 5.5
		case highRank >= 8: // 87-76 offsuit
			return 4.0
		}
		return 2.5
	}

	if highRank >= 10 {
		return 2.0
	}

	return 1.0
}

func suitedOr(isSuited bool, suited, offsuit float64) float64 {
	if isSuited {
		return suited
	}

	return offsuit
}
