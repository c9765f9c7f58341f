package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/customer-service/internal/logger"
	"github.com/MKhiriev/customer-service/models"
)

func newTestCustomerRepo(t *testing.T) (*customerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &customerRepository{
		db:     &DB{DB: db, placeholder: sq.Dollar, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testCustomer() models.Customer {
	return models.Customer{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@x.com",
		PhoneNumber: "555-1212",
	}
}

func TestCreateCustomer_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := testCustomer()

	rows := sqlmock.
		NewRows([]string{"id", "first_name", "last_name", "email", "phone_number"}).
		AddRow(1, customer.FirstName, customer.LastName, customer.Email, customer.PhoneNumber)

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(customer.FirstName, customer.LastName, customer.Email, customer.PhoneNumber).
		WillReturnRows(rows)

	created, err := repo.CreateCustomer(ctx, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != customer.Email {
		t.Errorf("expected email %s, got %s", customer.Email, created.Email)
	}
}

func TestCreateCustomer_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateCustomer(ctx, testCustomer())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCreateCustomer_ScanError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO customers").
		WillReturnRows(rows)

	_, err := repo.CreateCustomer(ctx, testCustomer())
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestGetCustomer_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "first_name", "last_name", "email", "phone_number"}).
		AddRow(42, "Jane", "Doe", "jane@x.com", "555-1212")

	mock.ExpectQuery("SELECT id, first_name").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.GetCustomer(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 42 {
		t.Errorf("expected ID=42, got %d", found.ID)
	}
	if found.FirstName != "Jane" {
		t.Errorf("expected first name Jane, got %s", found.FirstName)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, first_name").
		WithArgs(int64(0)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCustomer(ctx, 0)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestUpdateCustomer_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := testCustomer()
	customer.Email = "new@email.com"

	mock.ExpectExec("UPDATE customers").
		WithArgs(customer.FirstName, customer.LastName, customer.Email, customer.PhoneNumber, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateCustomer(ctx, 7, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 7 {
		t.Errorf("expected ID=7, got %d", updated.ID)
	}
	if updated.Email != "new@email.com" {
		t.Errorf("expected updated email, got %s", updated.Email)
	}
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE customers").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateCustomer(ctx, 999, testCustomer())
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestUpdateCustomer_ExecError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE customers").
		WillReturnError(errors.New("db down"))

	_, err := repo.UpdateCustomer(ctx, 7, testCustomer())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestDeleteCustomer_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM customers").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCustomer(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCustomer_AbsentIsIdempotent(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	// zero affected rows is not an error
	mock.ExpectExec("DELETE FROM customers").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteCustomer(ctx, 404); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListCustomers_All(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "first_name", "last_name", "email", "phone_number"}).
		AddRow(1, "Jane", "Doe", "jane@x.com", "555-1212").
		AddRow(2, "John", "Roe", "john@x.com", "555-0000")

	mock.ExpectQuery("SELECT id, first_name").
		WillReturnRows(rows)

	customers, err := repo.ListCustomers(ctx, models.CustomerFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	if customers[1].LastName != "Roe" {
		t.Errorf("expected second customer Roe, got %s", customers[1].LastName)
	}
}

func TestListCustomers_EmailFilter(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "first_name", "last_name", "email", "phone_number"}).
		AddRow(1, "Jane", "Doe", "jane@x.com", "555-1212")

	mock.ExpectQuery("SELECT id, first_name").
		WithArgs("jane@x.com").
		WillReturnRows(rows)

	customers, err := repo.ListCustomers(ctx, models.CustomerFilter{Email: "jane@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if customers[0].Email != "jane@x.com" {
		t.Errorf("unexpected email %s", customers[0].Email)
	}
}

func TestListCustomers_EmptyResultIsEmptySlice(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone_number"})

	mock.ExpectQuery("SELECT id, first_name").
		WillReturnRows(rows)

	customers, err := repo.ListCustomers(ctx, models.CustomerFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customers == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(customers) != 0 {
		t.Errorf("expected 0 customers, got %d", len(customers))
	}
}

func TestListCustomers_QueryError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, first_name").
		WillReturnError(errors.New("db down"))

	_, err := repo.ListCustomers(ctx, models.CustomerFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if !strings.Contains(err.Error(), "db down") {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}
