package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"studio-booking-server/database"
	"studio-booking-server/models"
)

// StartTokenCleanupJob purges used or expired password-setup tokens
// every hour. Returns the scheduler so callers can Stop it.
func StartTokenCleanupJob() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		result := database.DB.
			Where("used = ? OR expires_at < ?", true, time.Now()).
			Delete(&models.PasswordToken{})
		if result.Error != nil {
			log.Printf("❌ Password token cleanup failed: %v", result.Error)
			return
		}
		if result.RowsAffected > 0 {
			log.Printf("🧹 Cleaned up %d stale password tokens", result.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("❌ Failed to schedule token cleanup job: %v", err)
		return c
	}

	c.Start()
	log.Println("⏰ Password token cleanup job scheduled (hourly)")
	return c
}
