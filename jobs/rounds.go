package jobs

import (
	"log"
	"time"

	"matka/game"
	"matka/services"
)

// StartRoundSchedulers runs one settlement loop per clock-driven game.
// The tick interval only bounds how late a settlement can start; the
// settlement service itself decides whether a round is due and guards
// against double processing, so overlapping or missed ticks are harmless.
func StartRoundSchedulers() {
	for _, cfg := range game.Games {
		go runScheduler(cfg)
	}
}

func runScheduler(cfg game.Config) {
	// Immediate check so rounds that ended while the process was down
	// are settled on boot, and the opening round is published.
	settle(cfg)

	ticker := time.NewTicker(time.Second)
	for {
		<-ticker.C
		settle(cfg)
	}
}

func settle(cfg game.Config) {
	out, err := services.SettleDue(cfg, time.Now(), game.Secure)
	if err != nil {
		log.Printf("❌ error settling %s: %v", cfg.Key, err)
		return
	}
	if out.Claimed {
		log.Printf("✅ settled %s round %d: outcome %d, %d stakes, %d winners",
			cfg.Key, out.RoundID, out.WinningOutcome, out.StakeCount, out.WinnerCount)
	}
}
