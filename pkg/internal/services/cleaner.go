package services

import (
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/database"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DoAutoDatabaseCleanup purges conference records soft-deleted more than an hour ago.
func DoAutoDatabaseCleanup(db *gorm.DB) int64 {
	deadline := time.Now().Add(-60 * time.Minute)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := db.Unscoped().Delete(model, "deleted_at <= ?", deadline)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running database cleanup...")
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
	return count
}
