package game

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpandHarufStraight(t *testing.T) {
	out, total, err := ExpandHaruf(map[int]decimal.Decimal{42: amt(100), 7: amt(25)}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(amt(125)) {
		t.Errorf("total = %s, want 125", total)
	}
	if len(out) != 2 || !out[42].Equal(amt(100)) || !out[7].Equal(amt(25)) {
		t.Errorf("out = %v", out)
	}
}

func TestExpandHarufAndar(t *testing.T) {
	// 100 on andar digit 3 spreads over 30..39, a tenth each.
	out, total, err := ExpandHaruf(nil, map[int]decimal.Decimal{3: amt(100)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(amt(100)) {
		t.Errorf("total = %s, want 100", total)
	}
	if len(out) != 10 {
		t.Fatalf("expanded to %d outcomes, want 10", len(out))
	}
	for n := 30; n <= 39; n++ {
		if !out[n].Equal(amt(10)) {
			t.Errorf("outcome %d = %s, want 10", n, out[n])
		}
	}
}

func TestExpandHarufBahar(t *testing.T) {
	// Bahar digit 4 covers 04, 14, .. 94.
	out, _, err := ExpandHaruf(nil, nil, map[int]decimal.Decimal{4: amt(50)})
	if err != nil {
		t.Fatal(err)
	}
	for j := 0; j < 10; j++ {
		n := j*10 + 4
		if !out[n].Equal(amt(5)) {
			t.Errorf("outcome %d = %s, want 5", n, out[n])
		}
	}
}

func TestExpandHarufRemainder(t *testing.T) {
	// 10.01 does not split evenly into ten cents-exact parts; the last
	// outcome absorbs the remainder and the sum stays exact.
	amount := decimal.NewFromFloat(10.01)
	out, total, err := ExpandHaruf(nil, map[int]decimal.Decimal{5: amount}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(amount) {
		t.Errorf("total = %s, want %s", total, amount)
	}
	sum := decimal.Zero
	for _, v := range out {
		sum = sum.Add(v)
	}
	if !sum.Equal(amount) {
		t.Errorf("expanded sum = %s, want %s", sum, amount)
	}
}

func TestExpandHarufMergesOverlaps(t *testing.T) {
	// Straight on 35 overlaps andar digit 3.
	out, total, err := ExpandHaruf(
		map[int]decimal.Decimal{35: amt(20)},
		map[int]decimal.Decimal{3: amt(100)},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(amt(120)) {
		t.Errorf("total = %s, want 120", total)
	}
	if !out[35].Equal(amt(30)) {
		t.Errorf("outcome 35 = %s, want 30", out[35])
	}
}

func TestExpandHarufRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		straight map[int]decimal.Decimal
		andar    map[int]decimal.Decimal
		bahar    map[int]decimal.Decimal
	}{
		{"empty slip", nil, nil, nil},
		{"straight out of range", map[int]decimal.Decimal{100: amt(10)}, nil, nil},
		{"negative straight", map[int]decimal.Decimal{-1: amt(10)}, nil, nil},
		{"zero amount", map[int]decimal.Decimal{5: decimal.Zero}, nil, nil},
		{"negative amount", map[int]decimal.Decimal{5: amt(-10)}, nil, nil},
		{"andar digit out of range", nil, map[int]decimal.Decimal{10: amt(10)}, nil},
		{"bahar digit negative", nil, nil, map[int]decimal.Decimal{-2: amt(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ExpandHaruf(tt.straight, tt.andar, tt.bahar)
			if !errors.Is(err, ErrBadHarufBet) {
				t.Errorf("err = %v, want ErrBadHarufBet", err)
			}
		})
	}
}
