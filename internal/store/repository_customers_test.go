package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/webstore/seller-sync/internal/logger"
)

func newTestCustomerRepo(t *testing.T) (*customerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &customerRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func customerColumns() []string {
	return []string{
		"id", "email", "first_name", "last_name", "phone", "company",
		"active", "deleted", "created_at", "updated_at", "last_login_at",
	}
}

func TestGetCustomers_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(customerColumns()).
		AddRow(1, "a@example.com", "Ann", "Archer", "555-0100", "", true, false, now, now, nil).
		AddRow(2, "b@example.com", "Bob", "Baker", "555-0101", "Baker LLC", true, true, now, now, now)

	mock.ExpectQuery("SELECT (.+) FROM customers").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	customers, err := repo.GetCustomers(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	if customers[0].ID != 1 || customers[1].ID != 2 {
		t.Errorf("unexpected ids: %d, %d", customers[0].ID, customers[1].ID)
	}
	if customers[0].LastLoginAt != nil {
		t.Errorf("expected nil LastLoginAt for customer 1")
	}
	if customers[1].LastLoginAt == nil {
		t.Errorf("expected non-nil LastLoginAt for customer 2")
	}
	if !customers[1].Deleted {
		t.Errorf("soft-deleted customers must be part of the snapshot")
	}
}

func TestGetCustomers_QueryError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM customers").
		WithArgs(int64(42)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetCustomers(ctx, 42)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetCustomers_ScanError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(customerColumns()).
		AddRow("not-an-int", "a@example.com", "Ann", "Archer", "", "", true, false, time.Now(), time.Now(), nil)

	mock.ExpectQuery("SELECT (.+) FROM customers").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	_, err := repo.GetCustomers(ctx, 42)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestGetCustomers_RowsIterationError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(customerColumns()).
		AddRow(1, "a@example.com", "Ann", "Archer", "", "", true, false, now, now, nil).
		RowError(0, errors.New("mid-stream failure"))

	mock.ExpectQuery("SELECT (.+) FROM customers").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	_, err := repo.GetCustomers(ctx, 42)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetCustomerAttributes_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"customer_id", "key", "value"}).
		AddRow(1, "gender", "F").
		AddRow(1, "vat_number", "GB123456789").
		AddRow(2, "gender", "M")

	mock.ExpectQuery("SELECT (.+) FROM customer_attributes").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	attrs, err := repo.GetCustomerAttributes(ctx, []int64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].CustomerID != 1 || attrs[0].Key != "gender" {
		t.Errorf("unexpected first attribute: %+v", attrs[0])
	}
}

func TestGetCustomerAttributes_EmptyInput(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	attrs, err := repo.GetCustomerAttributes(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attrs != nil {
		t.Errorf("expected nil result for empty input, got %v", attrs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should be issued for empty input: %v", err)
	}
}
