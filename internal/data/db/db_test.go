package db

import (
	"testing"

	types "github.com/crumbs/restaurant-service/internal/domain"
)

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "restaurants"}
	want := "postgres://u:p@db:5432/restaurants?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN: got=%q want=%q", got, want)
	}
	cfg.SSLMode = "require"
	if got := cfg.DSN(); got != "postgres://u:p@db:5432/restaurants?sslmode=require" {
		t.Fatalf("DSN with sslmode: %q", got)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Options{Driver: "oracle"}, nil); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpenSQLiteMigratesAndWipes(t *testing.T) {
	gdb, err := Open(Options{Driver: DriverSQLite, SQLitePath: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	user := &types.UserDetail{FirstName: "Ray", LastName: "Kroc", Email: "rkroc@example.com"}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("create user detail: %v", err)
	}
	if err := gdb.Create(&types.Category{Name: "Burger"}).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	if err := WipeAll(gdb); err != nil {
		t.Fatalf("WipeAll: %v", err)
	}
	for _, model := range types.AllModels() {
		var n int64
		if err := gdb.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %T: %v", model, err)
		}
		if n != 0 {
			t.Fatalf("%T not wiped: %d rows", model, n)
		}
	}
}
