package admin

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

var entryColumns = []string{
	"id", "first_name", "last_name", "email", "phone",
	"preferred_date", "concern", "message", "kind", "created_at",
}

func TestListNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	newer := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	mock.ExpectQuery("SELECT (.+) FROM appointments ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow("b", "Minh", "Le", "minh@example.com", "+84 91", "2026-09-20", "Whitening", "", "appointment", newer).
			AddRow("a", "Lan", "Pham", "lan@example.com", "+84 90", "2026-09-15", "Braces Consultation", "", "appointment", older))

	repo := NewRepository(db)
	entries, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "b" || entries[1].ID != "a" {
		t.Errorf("unexpected order: %+v", entries)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListEmptyReturnsSlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WillReturnRows(sqlmock.NewRows(entryColumns))

	repo := NewRepository(db)
	entries, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if entries == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(entryColumns))

	repo := NewRepository(db)
	e, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil for missing row, got %+v", e)
	}
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM appointments WHERE id").
		WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db)
	if err := repo.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
