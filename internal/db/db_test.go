package db

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/models"
)

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  file:test.db  ", "file:test.db"},
		{`"file::memory:?cache=shared"`, "file::memory:?cache=shared"},
		{"host=localhost user=app dbname=app", "host=localhost user=app dbname=app sslmode=disable"},
		{"host=localhost   user=app\tdbname=app sslmode=require", "host=localhost user=app dbname=app sslmode=require"},
		{"postgres://app@localhost/app", "postgres://app@localhost/app"},
	}
	for _, c := range cases {
		if got := NormalizeDSN(c.in); got != c.want {
			t.Errorf("NormalizeDSN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsPostgresDSN(t *testing.T) {
	cases := []struct {
		dsn  string
		want bool
	}{
		{"postgres://app@localhost/app", true},
		{"POSTGRESQL://app@localhost/app", true},
		{"host=localhost dbname=app", true},
		{"file::memory:?cache=shared", false},
		{"rentdesk.db", false},
	}
	for _, c := range cases {
		if got := IsPostgresDSN(c.dsn); got != c.want {
			t.Errorf("IsPostgresDSN(%q) = %v, want %v", c.dsn, got, c.want)
		}
	}
}

func TestOpenMigrates(t *testing.T) {
	cfg := config.Config{DatabaseDSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())}
	conn, err := Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, m := range []interface{}{&models.User{}, &models.Property{}, &models.Invoice{}} {
		if !conn.Migrator().HasTable(m) {
			t.Errorf("missing table for %T", m)
		}
	}
}

func TestSeedIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := Seed(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Seed(conn); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var users, properties, payments int64
	conn.Model(&models.User{}).Count(&users)
	conn.Model(&models.Property{}).Count(&properties)
	conn.Model(&models.Payment{}).Count(&payments)
	if users != 3 || properties != 3 || payments != 3 {
		t.Errorf("counts after double seed: users=%d properties=%d payments=%d", users, properties, payments)
	}
}
