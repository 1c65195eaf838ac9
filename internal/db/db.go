// Package db opens the record database, migrates the schema, and seeds the
// fixed demo dataset.
package db

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/models"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// NormalizeDSN trims quotes and whitespace and, for key=value postgres DSNs,
// supplements a missing sslmode with disable.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	if !kvPairRegex.MatchString(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// IsPostgresDSN reports whether the DSN targets postgres (URL form or
// key=value form); anything else is treated as a sqlite DSN.
func IsPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return true
	}
	return kvPairRegex.MatchString(dsn)
}

// Open connects to the database selected by the config DSN and migrates the
// schema. The default DSN is an in-memory sqlite database, so the record
// collections live and die with the process unless a real DSN is supplied.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}
	dsn := NormalizeDSN(cfg.DatabaseDSN)
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is empty")
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	driver := "sqlite"
	dial := sqlite.Open(dsn)
	if IsPostgresDSN(dsn) {
		driver = "postgres"
		dial = postgres.Open(dsn)
	}

	db, err := gorm.Open(dial, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database ready", zap.String("driver", driver))
	return db, nil
}

// Migrate applies the schema for every model.
func Migrate(db *gorm.DB) error {
	toMigrate := []interface{}{
		&models.User{},
		&models.Property{},
		&models.Tenant{},
		&models.Payment{},
		&models.Invoice{},
		&models.InvoiceItem{},
	}
	for _, m := range toMigrate {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}
