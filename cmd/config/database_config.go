package config

import (
	"strings"

	"github.com/OojayFidel/plp-hackathon-2/internal/utils"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the backend named by DATABASE_URL: a postgres DSN, a
// sqlite:// URL, or a bare file path (the default local database).
func ConnectDB() (*gorm.DB, error) {
	dsn := utils.GetConfig("DATABASE_URL")
	if dsn == "" {
		dsn = "app.db"
	}

	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.HasPrefix(dsn, "host="):
		dialector = postgres.Open(dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		dialector = sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
	default:
		dialector = sqlite.Open(dsn)
	}

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the save flow relies on.
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}
