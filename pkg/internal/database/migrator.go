package database

import (
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.ConferenceRecord{},
	&models.ParticipantRecord{},
	&models.EndpointRecord{},
	&models.CivilianRoomRecord{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
