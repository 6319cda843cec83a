package game

import "github.com/shopspring/decimal"

// DecideOutcome picks the winning outcome for a closed round. Stake-driven
// games use the least-staked rule; the rest draw uniformly over the domain.
func (c Config) DecideOutcome(totals map[int]decimal.Decimal, rng Rand) int {
	if c.StakeDriven {
		return decideLowestStaked(c.MinSelection, c.MaxSelection, totals, rng)
	}
	return c.MinSelection + rng.Intn(c.MaxSelection-c.MinSelection+1)
}

// decideLowestStaked sums stakes per candidate outcome and returns the one
// with the minimum total, breaking ties uniformly. Outcomes nobody staked
// on count as zero, so an empty round degenerates to a uniform draw.
func decideLowestStaked(min, max int, totals map[int]decimal.Decimal, rng Rand) int {
	var minTotal decimal.Decimal
	var candidates []int
	for n := min; n <= max; n++ {
		total := totals[n]
		if len(candidates) == 0 || total.LessThan(minTotal) {
			minTotal = total
			candidates = []int{n}
		} else if total.Equal(minTotal) {
			candidates = append(candidates, n)
		}
	}
	return candidates[rng.Intn(len(candidates))]
}
