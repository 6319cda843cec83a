package game

// American roulette wheel in physical order. "00" keeps its own slot, so
// outcomes are strings rather than ints.
var WheelSlots = []string{
	"0", "28", "9", "26", "30", "11", "7", "20", "32", "17", "5", "22",
	"34", "15", "3", "24", "36", "13", "1", "00", "27", "10", "25", "29",
	"12", "8", "19", "31", "18", "6", "21", "33", "16", "4", "23", "35",
	"14", "2",
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true,
	16: true, 18: true, 19: true, 21: true, 23: true, 25: true, 27: true,
	30: true, 32: true, 34: true, 36: true,
}

// SpinWheel draws one outcome uniformly over the 38 slots.
func SpinWheel(rng Rand) string {
	return WheelSlots[rng.Intn(len(WheelSlots))]
}

// ValidRouletteBet reports whether betType is a known bet descriptor:
// a straight number ("0".."36", "00") or one of the outside bets.
func ValidRouletteBet(betType string) bool {
	if _, ok := wheelValue(betType); ok || betType == "0" || betType == "00" {
		return true
	}
	switch betType {
	case "red", "black", "even", "odd", "1-18", "19-36",
		"1st12", "2nd12", "3rd12", "col1", "col2", "col3":
		return true
	}
	return false
}

// EvaluateRoulette resolves a bet against the drawn outcome and returns
// the payout multiplier (total returned per unit staked). Straight pays
// 36x, even-money bets 2x, dozens and columns 3x. Zero and double zero
// only ever win straight bets.
func EvaluateRoulette(betType, outcome string) (int64, bool) {
	if betType == outcome {
		return 36, true
	}

	n, ok := wheelValue(outcome)
	if !ok {
		// 0 / 00 beat every outside bet
		return 0, false
	}

	switch betType {
	case "red":
		if redNumbers[n] {
			return 2, true
		}
	case "black":
		if !redNumbers[n] {
			return 2, true
		}
	case "even":
		if n%2 == 0 {
			return 2, true
		}
	case "odd":
		if n%2 == 1 {
			return 2, true
		}
	case "1-18":
		if n <= 18 {
			return 2, true
		}
	case "19-36":
		if n >= 19 {
			return 2, true
		}
	case "1st12":
		if n <= 12 {
			return 3, true
		}
	case "2nd12":
		if n >= 13 && n <= 24 {
			return 3, true
		}
	case "3rd12":
		if n >= 25 {
			return 3, true
		}
	case "col1":
		if n%3 == 1 {
			return 3, true
		}
	case "col2":
		if n%3 == 2 {
			return 3, true
		}
	case "col3":
		if n%3 == 0 {
			return 3, true
		}
	}
	return 0, false
}

// wheelValue parses a spinnable number 1..36; "0" and "00" return false.
// Leading zeroes are rejected so every number has one canonical spelling
// and straight bets compare by string equality.
func wheelValue(s string) (int, bool) {
	if s == "" || s[0] == '0' {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 || n > 36 {
		return 0, false
	}
	return n, true
}
