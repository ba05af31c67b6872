package poker

import (
	"errors"
	"sort"

	"casino-server/pkg/deck"
)

// ErrHandSize is an error when a fixed-size hand doesn't have exactly five cards
var ErrHandSize = errors.New("a poker hand must contain exactly five cards")

// Evaluation is the result of evaluating a set of cards: the best reachable
// ranking category plus the ordered tie-break key within that category.
// Evaluations form a total order; see Compare.
type Evaluation struct {
	Rank      HandRank `json:"rank"`
	TieBreaks []int    `json:"tieBreaks"`
}

// Compare returns 1 if a beats b, -1 if b beats a, and 0 on an exact tie.
// The category is compared first, then the tie-break keys lexicographically.
func Compare(a, b Evaluation) int {
	if a.Rank != b.Rank {
		if a.Rank > b.Rank {
			return 1
		}

		return -1
	}

	n := len(a.TieBreaks)
	if len(b.TieBreaks) < n {
		n = len(b.TieBreaks)
	}

	for i := 0; i < n; i++ {
		if a.TieBreaks[i] != b.TieBreaks[i] {
			if a.TieBreaks[i] > b.TieBreaks[i] {
				return 1
			}

			return -1
		}
	}

	if len(a.TieBreaks) != len(b.TieBreaks) {
		if len(a.TieBreaks) > len(b.TieBreaks) {
			return 1
		}

		return -1
	}

	return 0
}

// Evaluate returns the best five-card hand reachable from the cards.
// For Texas Hold'em this receives the two hole cards plus up to five
// community cards; it also tolerates shorter inputs (i.e., preflop hole
// cards only), in which case only pair and high-card categories can hit.
func Evaluate(cards []*deck.Card) Evaluation {
	counts := make(map[int]int)
	suitRanks := make(map[deck.Suit][]int)
	ranks := make([]int, 0, len(cards))

	for _, c := range cards {
		counts[c.Rank]++
		suitRanks[c.Suit] = append(suitRanks[c.Suit], c.Rank)
		ranks = append(ranks, c.Rank)
	}

	uniqueDesc := uniqueRanksDesc(ranks)

	// flush pool: all ranks of the first suit holding five or more cards
	var flushRanks []int
	for _, suit := range deck.Suits {
		if rs := suitRanks[suit]; len(rs) >= 5 {
			flushRanks = append([]int(nil), rs...)
			sort.Sort(sort.Reverse(sort.IntSlice(flushRanks)))
			break
		}
	}

	// straight flush and royal flush use the straight rule restricted to the flush suit
	if flushRanks != nil {
		if high := straightHigh(flushRanks); high > 0 {
			if high == deck.Ace {
				return Evaluation{Rank: RoyalFlush, TieBreaks: []int{deck.Ace}}
			}

			return Evaluation{Rank: StraightFlush, TieBreaks: []int{high}}
		}
	}

	if quad := bestRankWithCount(counts, 4); quad > 0 {
		tieBreaks := []int{quad}
		for _, r := range uniqueDesc {
			if r != quad {
				tieBreaks = append(tieBreaks, r)
				break
			}
		}

		return Evaluation{Rank: FourOfAKind, TieBreaks: tieBreaks}
	}

	trips := ranksWithAtLeast(counts, 3)
	pairs := pairsBelowTrips(counts, trips)

	if len(trips) > 0 && (len(pairs) > 0 || len(trips) >= 2) {
		pair := 0
		if len(pairs) > 0 {
			pair = pairs[0]
		} else {
			pair = trips[1]
		}

		return Evaluation{Rank: FullHouse, TieBreaks: []int{trips[0], pair}}
	}

	if flushRanks != nil {
		return Evaluation{Rank: Flush, TieBreaks: flushRanks[:5]}
	}

	if high := straightHigh(ranks); high > 0 {
		return Evaluation{Rank: Straight, TieBreaks: []int{high}}
	}

	if len(trips) > 0 {
		return Evaluation{Rank: ThreeOfAKind, TieBreaks: append([]int{trips[0]}, kickers(uniqueDesc, 2, trips[0])...)}
	}

	pairRanks := ranksWithExactly(counts, 2)
	if len(pairRanks) >= 2 {
		tieBreaks := []int{pairRanks[0], pairRanks[1]}
		tieBreaks = append(tieBreaks, kickers(uniqueDesc, 1, pairRanks[0], pairRanks[1])...)

		return Evaluation{Rank: TwoPair, TieBreaks: tieBreaks}
	}

	if len(pairRanks) == 1 {
		return Evaluation{Rank: OnePair, TieBreaks: append([]int{pairRanks[0]}, kickers(uniqueDesc, 3, pairRanks[0])...)}
	}

	if len(uniqueDesc) > 5 {
		uniqueDesc = uniqueDesc[:5]
	}

	return Evaluation{Rank: HighCard, TieBreaks: uniqueDesc}
}

// EvaluateFive evaluates a fixed-size hand of exactly five cards
func EvaluateFive(cards []*deck.Card) (Evaluation, error) {
	if len(cards) != 5 {
		return Evaluation{}, ErrHandSize
	}

	return Evaluate(cards), nil
}

// straightHigh returns the high card of the best straight in the ranks, or 0
// if there's no run of five or more consecutive ranks. An ace additionally
// counts as rank 1 for the wheel (A-2-3-4-5).
func straightHigh(ranks []int) int {
	distinct := make(map[int]bool)
	for _, r := range ranks {
		distinct[r] = true
	}

	if distinct[deck.Ace] {
		distinct[deck.LowAce] = true
	}

	sorted := make([]int, 0, len(distinct))
	for r := range distinct {
		sorted = append(sorted, r)
	}
	sort.Ints(sorted)

	consec := 1
	bestHigh := 0
	for i, r := range sorted {
		if i == 0 || r != sorted[i-1]+1 {
			consec = 1
		} else {
			consec++
		}

		if consec >= 5 {
			bestHigh = r
		}
	}

	return bestHigh
}

func uniqueRanksDesc(ranks []int) []int {
	distinct := make(map[int]bool)
	for _, r := range ranks {
		distinct[r] = true
	}

	unique := make([]int, 0, len(distinct))
	for r := range distinct {
		unique = append(unique, r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(unique)))

	return unique
}

func bestRankWithCount(counts map[int]int, count int) int {
	best := 0
	for r, c := range counts {
		if c == count && r > best {
			best = r
		}
	}

	return best
}

// ranksWithAtLeast returns ranks with count >= n, best first
func ranksWithAtLeast(counts map[int]int, n int) []int {
	ranks := make([]int, 0, 2)
	for r, c := range counts {
		if c >= n {
			ranks = append(ranks, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	return ranks
}

// ranksWithExactly returns ranks with count == n, best first
func ranksWithExactly(counts map[int]int, n int) []int {
	ranks := make([]int, 0, 2)
	for r, c := range counts {
		if c == n {
			ranks = append(ranks, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	return ranks
}

// pairsBelowTrips returns pair-capable ranks (count >= 2) excluding any rank
// already claimed as trips, best first
func pairsBelowTrips(counts map[int]int, trips []int) []int {
	isTrips := make(map[int]bool, len(trips))
	for _, r := range trips {
		isTrips[r] = true
	}

	pairs := make([]int, 0, 2)
	for r, c := range counts {
		if c >= 2 && !isTrips[r] {
			pairs = append(pairs, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))

	return pairs
}

// kickers returns up to n of the best ranks not matching any of the excluded ranks
func kickers(uniqueDesc []int, n int, exclude ...int) []int {
	excluded := make(map[int]bool, len(exclude))
	for _, r := range exclude {
		excluded[r] = true
	}

	found := make([]int, 0, n)
	for _, r := range uniqueDesc {
		if excluded[r] {
			continue
		}

		found = append(found, r)
		if len(found) == n {
			break
		}
	}

	return found
}
