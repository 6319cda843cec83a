package game

import (
	"testing"

	"github.com/shopspring/decimal"
)

// stubRand returns canned values in order, wrapping around.
type stubRand struct {
	vals []int
	i    int
}

func (s *stubRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDecideOutcomeLowestStaked(t *testing.T) {
	tests := []struct {
		name   string
		totals map[int]decimal.Decimal
		rng    []int
		want   []int // acceptable winners
	}{
		{
			"unique minimum wins",
			map[int]decimal.Decimal{1: amt(100), 2: amt(50), 3: amt(200), 4: amt(80), 5: amt(90), 6: amt(70), 7: amt(60), 8: amt(110), 9: amt(120), 10: amt(130), 11: amt(140), 12: amt(150)},
			[]int{0},
			[]int{2},
		},
		{
			"tie broken among minima only",
			map[int]decimal.Decimal{1: amt(100), 2: amt(50), 3: amt(50), 4: amt(75), 5: amt(75), 6: amt(75), 7: amt(75), 8: amt(75), 9: amt(75), 10: amt(75), 11: amt(75), 12: amt(75)},
			[]int{1},
			[]int{3},
		},
		{
			"unstaked outcomes count as zero",
			map[int]decimal.Decimal{5: amt(10), 7: amt(10)},
			[]int{0},
			[]int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WinGame.DecideOutcome(tt.totals, &stubRand{vals: tt.rng})
			ok := false
			for _, w := range tt.want {
				if got == w {
					ok = true
				}
			}
			if !ok {
				t.Errorf("DecideOutcome() = %d, want one of %v", got, tt.want)
			}
		})
	}
}

func TestDecideOutcomeNeverPicksStakedOverUnstaked(t *testing.T) {
	// Only 5 and 7 carry money, so the winner must be one of the other ten.
	totals := map[int]decimal.Decimal{5: amt(500), 7: amt(300)}
	for r := 0; r < 12; r++ {
		got := WinGame.DecideOutcome(totals, &stubRand{vals: []int{r}})
		if got == 5 || got == 7 {
			t.Fatalf("rng=%d picked staked outcome %d", r, got)
		}
		if got < 1 || got > 12 {
			t.Fatalf("rng=%d picked out-of-domain outcome %d", r, got)
		}
	}
}

func TestDecideOutcomeEmptyRound(t *testing.T) {
	// Nobody staked: every outcome ties at zero and the draw is uniform.
	for r := 0; r < 12; r++ {
		got := WinGame.DecideOutcome(map[int]decimal.Decimal{}, &stubRand{vals: []int{r}})
		if got != 1+r {
			t.Errorf("rng=%d: got %d, want %d", r, got, 1+r)
		}
	}
}

func TestDecideOutcomeUniform(t *testing.T) {
	// Haruf ignores stake totals entirely.
	totals := map[int]decimal.Decimal{42: amt(1000)}
	if got := Haruf.DecideOutcome(totals, &stubRand{vals: []int{42}}); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if got := Haruf.DecideOutcome(totals, &stubRand{vals: []int{0}}); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := Haruf.DecideOutcome(totals, &stubRand{vals: []int{99}}); got != 99 {
		t.Errorf("got %d, want 99", got)
	}
}
