package tasks

import (
	"log"
	"time"

	"matka/database"
	"matka/models"
)

// CleanupSettledStakes trims stake history so the table does not grow
// without bound; the ledger rows keep the money trail.
func CleanupSettledStakes() {
	cutoff := time.Now().AddDate(0, 0, -90)
	result := database.DB.
		Where("created_at < ? AND status <> ?", cutoff, models.StakePending).
		Delete(&models.Stake{})

	if result.Error != nil {
		log.Println("❌ Failed to delete old stakes:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d settled stakes older than 90 days\n", result.RowsAffected)
	}
}

// CleanupExpiredSessions drops sessions past their expiry.
func CleanupExpiredSessions() {
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{})

	if result.Error != nil {
		log.Println("❌ Failed to delete expired sessions:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d expired sessions\n", result.RowsAffected)
	}
}

// StartCleanupScheduler runs the retention tasks every six hours.
func StartCleanupScheduler() {
	ticker := time.NewTicker(6 * time.Hour)
	go func() {
		for {
			<-ticker.C
			CleanupSettledStakes()
			CleanupExpiredSessions()
		}
	}()
}
