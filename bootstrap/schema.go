package bootstrap

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"alumni-portal/internal/kv"
)

// EnsureKVTable creates or migrates the kv_entries table of the SQL backends.
func EnsureKVTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&kv.KVEntry{}); err != nil {
		return fmt.Errorf("migrate kv_entries: %w", err)
	}
	log.Println("✅ kv_entries table ready")
	return nil
}
