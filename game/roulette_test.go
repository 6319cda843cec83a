package game

import "testing"

func TestSpinWheel(t *testing.T) {
	if len(WheelSlots) != 38 {
		t.Fatalf("wheel has %d slots, want 38", len(WheelSlots))
	}
	seen := map[string]bool{}
	for i := range WheelSlots {
		seen[SpinWheel(&stubRand{vals: []int{i}})] = true
	}
	if len(seen) != 38 {
		t.Errorf("spins reached %d distinct slots, want 38", len(seen))
	}
	if !seen["0"] || !seen["00"] {
		t.Error("zero slots unreachable")
	}
}

func TestValidRouletteBet(t *testing.T) {
	valid := []string{"0", "00", "1", "17", "36", "red", "black", "even", "odd", "1-18", "19-36", "1st12", "2nd12", "3rd12", "col1", "col2", "col3"}
	for _, b := range valid {
		if !ValidRouletteBet(b) {
			t.Errorf("ValidRouletteBet(%q) = false", b)
		}
	}
	// Leading zeroes are not canonical spellings: "05" would never equal
	// a drawn outcome, so it must be rejected at placement.
	invalid := []string{"", "37", "-1", "000", "05", "007", "green", "split", "1st"}
	for _, b := range invalid {
		if ValidRouletteBet(b) {
			t.Errorf("ValidRouletteBet(%q) = true", b)
		}
	}
}

func TestEvaluateRoulette(t *testing.T) {
	tests := []struct {
		betType  string
		outcome  string
		wantMult int64
		wantWin  bool
	}{
		{"17", "17", 36, true},
		{"17", "18", 0, false},
		{"0", "0", 36, true},
		{"00", "00", 36, true},
		{"0", "00", 0, false},

		{"red", "1", 2, true},
		{"red", "2", 0, false},
		{"black", "2", 2, true},
		{"black", "1", 0, false},
		{"even", "4", 2, true},
		{"even", "7", 0, false},
		{"odd", "7", 2, true},
		{"1-18", "18", 2, true},
		{"1-18", "19", 0, false},
		{"19-36", "19", 2, true},

		{"1st12", "12", 3, true},
		{"1st12", "13", 0, false},
		{"2nd12", "13", 3, true},
		{"2nd12", "24", 3, true},
		{"3rd12", "25", 3, true},
		{"3rd12", "24", 0, false},

		{"col1", "1", 3, true},
		{"col1", "34", 3, true},
		{"col2", "2", 3, true},
		{"col2", "35", 3, true},
		{"col3", "3", 3, true},
		{"col3", "36", 3, true},
		{"col1", "2", 0, false},

		// Non-canonical straight bets never match a drawn outcome.
		{"05", "5", 0, false},

		// Zeroes beat every outside bet.
		{"red", "0", 0, false},
		{"black", "00", 0, false},
		{"even", "0", 0, false},
		{"odd", "00", 0, false},
		{"1-18", "0", 0, false},
		{"1st12", "00", 0, false},
		{"col1", "0", 0, false},
	}

	for _, tt := range tests {
		mult, win := EvaluateRoulette(tt.betType, tt.outcome)
		if mult != tt.wantMult || win != tt.wantWin {
			t.Errorf("EvaluateRoulette(%q, %q) = %d, %v; want %d, %v",
				tt.betType, tt.outcome, mult, win, tt.wantMult, tt.wantWin)
		}
	}
}

func TestSecureRandBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		if v := Secure.Intn(38); v < 0 || v >= 38 {
			t.Fatalf("Secure.Intn(38) = %d out of range", v)
		}
	}
}
