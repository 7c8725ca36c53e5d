package db

import (
	"fmt"

	"github.com/quailyquaily/datelog/db/models"
	"gorm.io/gorm"
)

func AutoMigrate(gdb *gorm.DB) error {
	if gdb == nil {
		return fmt.Errorf("nil gorm db")
	}
	return gdb.AutoMigrate(
		&models.Entry{},
		&models.Media{},
		&models.CustomTag{},
		&models.UserProfile{},
		&models.ChatSession{},
		&models.ChatMessage{},
	)
}
