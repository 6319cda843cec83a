package game

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrBadHarufBet = errors.New("haruf bet outside valid domain")

var ten = decimal.NewFromInt(10)

// ExpandHaruf flattens one haruf bet slip into per-outcome stake amounts.
// Straight bets map a two-digit outcome to an amount. Andar bets on digit
// d spread the amount over d0..d9, bahar bets over 0d..9d, a tenth each;
// the last expanded outcome absorbs any rounding remainder so the sum of
// expanded amounts equals the submitted amount exactly. Overlapping bets
// merge per outcome. The returned total is what must be debited.
func ExpandHaruf(straight, andar, bahar map[int]decimal.Decimal) (map[int]decimal.Decimal, decimal.Decimal, error) {
	out := make(map[int]decimal.Decimal)
	total := decimal.Zero

	for num, amount := range straight {
		if num < 0 || num > 99 || !amount.IsPositive() {
			return nil, decimal.Zero, ErrBadHarufBet
		}
		amount = amount.Round(2)
		out[num] = out[num].Add(amount)
		total = total.Add(amount)
	}

	expand := func(digit int, amount decimal.Decimal, outcome func(d, j int) int) error {
		if digit < 0 || digit > 9 || !amount.IsPositive() {
			return ErrBadHarufBet
		}
		amount = amount.Round(2)
		share := amount.DivRound(ten, 2)
		spent := decimal.Zero
		for j := 0; j < 10; j++ {
			part := share
			if j == 9 {
				part = amount.Sub(spent)
			}
			out[outcome(digit, j)] = out[outcome(digit, j)].Add(part)
			spent = spent.Add(part)
		}
		total = total.Add(amount)
		return nil
	}

	for digit, amount := range andar {
		if err := expand(digit, amount, func(d, j int) int { return d*10 + j }); err != nil {
			return nil, decimal.Zero, err
		}
	}
	for digit, amount := range bahar {
		if err := expand(digit, amount, func(d, j int) int { return j*10 + d }); err != nil {
			return nil, decimal.Zero, err
		}
	}

	if len(out) == 0 {
		return nil, decimal.Zero, ErrBadHarufBet
	}
	return out, total, nil
}
