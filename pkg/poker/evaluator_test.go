package poker

import (
	"testing"

	"casino-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func evaluate(t *testing.T, cards string) Evaluation {
	t.Helper()
	return Evaluate(deck.CardsFromString(cards))
}

func TestEvaluate_RoyalFlush(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "10S,JS,QS,KS,AS")
	a.Equal(RoyalFlush, ev.Rank)
	a.Equal([]int{14}, ev.TieBreaks)

	// seven cards with the royal flush buried
	ev = evaluate(t, "2D,10H,10S,JS,QS,KS,AS")
	a.Equal(RoyalFlush, ev.Rank)
	a.Equal([]int{14}, ev.TieBreaks)
}

func TestEvaluate_StraightFlush(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "5C,6C,7C,8C,9C")
	a.Equal(StraightFlush, ev.Rank)
	a.Equal([]int{9}, ev.TieBreaks)

	// steel wheel
	ev = evaluate(t, "AD,2D,3D,4D,5D")
	a.Equal(StraightFlush, ev.Rank)
	a.Equal([]int{5}, ev.TieBreaks)
}

func TestEvaluate_FourOfAKind(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "2C,2D,2H,2S,9C")
	a.Equal(FourOfAKind, ev.Rank)
	a.Equal([]int{2, 9}, ev.TieBreaks)

	ev = evaluate(t, "KC,KD,KH,KS,2C,AD,9H")
	a.Equal(FourOfAKind, ev.Rank)
	a.Equal([]int{13, 14}, ev.TieBreaks)
}

func TestEvaluate_FullHouse(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "7C,7D,7H,4S,4C")
	a.Equal(FullHouse, ev.Rank)
	a.Equal([]int{7, 4}, ev.TieBreaks)

	// two sets of trips: the second set fills in as the pair
	ev = evaluate(t, "7C,7D,7H,6C,6D,6H,2S")
	a.Equal(FullHouse, ev.Rank)
	a.Equal([]int{7, 6}, ev.TieBreaks)
}

func TestEvaluate_Flush(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "2H,5H,9H,JH,KH")
	a.Equal(Flush, ev.Rank)
	a.Equal([]int{13, 11, 9, 5, 2}, ev.TieBreaks)

	// six hearts: the tie-break key keeps only the top five
	ev = evaluate(t, "2H,5H,9H,JH,KH,AH,3C")
	a.Equal(Flush, ev.Rank)
	a.Equal([]int{14, 13, 11, 9, 5}, ev.TieBreaks)
}

func TestEvaluate_Straight(t *testing.T) {
	a := assert.New(t)

	// wheel: the ace plays low
	ev := evaluate(t, "AS,2D,3C,4H,5S")
	a.Equal(Straight, ev.Rank)
	a.Equal([]int{5}, ev.TieBreaks)

	ev = evaluate(t, "9C,10D,JH,QS,KC")
	a.Equal(Straight, ev.Rank)
	a.Equal([]int{13}, ev.TieBreaks)

	// seven cards holding a six-card run report the top of the run
	ev = evaluate(t, "4C,5D,6H,7S,8C,9D,KH")
	a.Equal(Straight, ev.Rank)
	a.Equal([]int{9}, ev.TieBreaks)
}

func TestEvaluate_ThreeOfAKind(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "8C,8D,8H,KS,2C")
	a.Equal(ThreeOfAKind, ev.Rank)
	a.Equal([]int{8, 13, 2}, ev.TieBreaks)

	ev = evaluate(t, "8C,8D,8H,KS,2C,5D,JH")
	a.Equal(ThreeOfAKind, ev.Rank)
	a.Equal([]int{8, 13, 11}, ev.TieBreaks)
}

func TestEvaluate_TwoPair(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "3C,3D,9S,9H,KC")
	a.Equal(TwoPair, ev.Rank)
	a.Equal([]int{9, 3, 13}, ev.TieBreaks)

	// three pairs: the two highest play, best remaining card kicks
	ev = evaluate(t, "3C,3D,9S,9H,KC,KD,5S")
	a.Equal(TwoPair, ev.Rank)
	a.Equal([]int{13, 9, 5}, ev.TieBreaks)
}

func TestEvaluate_OnePair(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "6C,6D,AS,10H,4C")
	a.Equal(OnePair, ev.Rank)
	a.Equal([]int{6, 14, 10, 4}, ev.TieBreaks)

	// preflop hole cards only
	ev = evaluate(t, "QC,QD")
	a.Equal(OnePair, ev.Rank)
	a.Equal([]int{12}, ev.TieBreaks)
}

func TestEvaluate_HighCard(t *testing.T) {
	a := assert.New(t)

	ev := evaluate(t, "2C,5D,9S,JH,KC")
	a.Equal(HighCard, ev.Rank)
	a.Equal([]int{13, 11, 9, 5, 2}, ev.TieBreaks)

	ev = evaluate(t, "2C,5D,9S,JH,KC,3D,7H")
	a.Equal(HighCard, ev.Rank)
	a.Equal([]int{13, 11, 9, 7, 5}, ev.TieBreaks)
}

func TestCompare(t *testing.T) {
	a := assert.New(t)

	royal := evaluate(t, "10S,JS,QS,KS,AS")
	quads := evaluate(t, "2C,2D,2H,2S,9C")
	kings := evaluate(t, "KC,KD,4S,10H,2C")
	queens := evaluate(t, "QC,QD,AS,10H,2C")

	a.Equal(1, Compare(royal, quads))
	a.Equal(-1, Compare(quads, royal))
	a.Equal(1, Compare(kings, queens))
	a.Equal(0, Compare(kings, kings))

	// same category, kicker decides
	aceKicker := evaluate(t, "6C,6D,AS,10H,4C")
	kingKicker := evaluate(t, "6H,6S,KS,10D,4D")
	a.Equal(1, Compare(aceKicker, kingKicker))

	// transitivity spot-check over the fixtures
	a.Equal(1, Compare(royal, kings))
	a.Equal(1, Compare(quads, kings))
}

func TestEvaluateFive(t *testing.T) {
	a := assert.New(t)

	ev, err := EvaluateFive(deck.CardsFromString("10S,JS,QS,KS,AS"))
	a.NoError(err)
	a.Equal(RoyalFlush, ev.Rank)

	_, err = EvaluateFive(deck.CardsFromString("10S,JS,QS,KS"))
	a.Equal(ErrHandSize, err)

	_, err = EvaluateFive(deck.CardsFromString("10S,JS,QS,KS,AS,2D"))
	a.Equal(ErrHandSize, err)
}
