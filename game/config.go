package game

import "time"

// Config describes one clock-driven round game.
type Config struct {
	Key  string // game_state key, e.g. "win_game_1_to_12"
	Name string // display name used on winner records

	RoundTotal time.Duration
	Lockout    time.Duration // suffix of the round where betting is closed

	MinSelection int
	MaxSelection int
	Multiplier   int64

	// StakeDriven games pick the least-staked outcome; otherwise the
	// outcome is a uniform draw over the selection domain.
	StakeDriven bool
}

var WinGame = Config{
	Key:          "win_game_1_to_12",
	Name:         "1 to 12 Win",
	RoundTotal:   120 * time.Second,
	Lockout:      60 * time.Second,
	MinSelection: 1,
	MaxSelection: 12,
	Multiplier:   10,
	StakeDriven:  true,
}

var Haruf = Config{
	Key:          "haruf_game",
	Name:         "Haruf",
	RoundTotal:   60 * time.Second,
	Lockout:      10 * time.Second,
	MinSelection: 0,
	MaxSelection: 99,
	Multiplier:   20,
	StakeDriven:  false,
}

var Games = []Config{WinGame, Haruf}

func ConfigByKey(key string) (Config, bool) {
	for _, cfg := range Games {
		if cfg.Key == key {
			return cfg, true
		}
	}
	return Config{}, false
}

func (c Config) ValidSelection(n int) bool {
	return n >= c.MinSelection && n <= c.MaxSelection
}
