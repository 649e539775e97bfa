package service

import (
	"context"
	"errors"
	"testing"

	"gas_delivery/internal/models"
	"gas_delivery/internal/repository"
)

type mockWithdrawalRepo struct {
	CreateFn func(ctx context.Context, w models.Withdrawal) (int, error)
	ListFn   func(ctx context.Context, customerID int, dateFrom, dateTo string) ([]models.WithdrawalRecord, error)

	createCalls int
	lastCreate  models.Withdrawal
}

func (m *mockWithdrawalRepo) Create(ctx context.Context, w models.Withdrawal) (int, error) {
	m.createCalls++
	m.lastCreate = w
	return m.CreateFn(ctx, w)
}

func (m *mockWithdrawalRepo) List(ctx context.Context, customerID int, dateFrom, dateTo string) ([]models.WithdrawalRecord, error) {
	return m.ListFn(ctx, customerID, dateFrom, dateTo)
}

func TestWithdrawalService_Create_InvalidLiters(t *testing.T) {
	mock := &mockWithdrawalRepo{
		CreateFn: func(context.Context, models.Withdrawal) (int, error) {
			t.Fatal("repo should not be reached for non-positive litros")
			return 0, nil
		},
	}
	svc := NewWithdrawalService(mock)

	for _, liters := range []float64{0, -3} {
		_, err := svc.Create(context.Background(), WithdrawalParams{CustomerID: 1, Liters: liters, UserID: 2})
		if !errors.Is(err, ErrInvalidLiters) {
			t.Fatalf("liters=%v: expected ErrInvalidLiters, got %v", liters, err)
		}
	}
	if mock.createCalls != 0 {
		t.Fatalf("expected no repo calls, got %d", mock.createCalls)
	}
}

func TestWithdrawalService_Create_CustomerMissing(t *testing.T) {
	mock := &mockWithdrawalRepo{
		CreateFn: func(context.Context, models.Withdrawal) (int, error) {
			return 0, repository.ErrCustomerNotFound
		},
	}
	svc := NewWithdrawalService(mock)

	_, err := svc.Create(context.Background(), WithdrawalParams{CustomerID: 99, Liters: 5, UserID: 2})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestWithdrawalService_Create_Success(t *testing.T) {
	mock := &mockWithdrawalRepo{
		CreateFn: func(ctx context.Context, w models.Withdrawal) (int, error) { return 4, nil },
	}
	svc := NewWithdrawalService(mock)

	id, err := svc.Create(context.Background(), WithdrawalParams{CustomerID: 5, Liters: 20, UserID: 7})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 4 {
		t.Fatalf("expected id 4, got %d", id)
	}
	w := mock.lastCreate
	if w.CustomerID != 5 || w.Liters != 20 || w.UserID != 7 {
		t.Fatalf("unexpected withdrawal passed to repo: %+v", w)
	}
	// The service never supplies a client-side timestamp.
	if w.Date != "" || w.Time != "" {
		t.Fatalf("date/time must be stamped by the store, got %q %q", w.Date, w.Time)
	}
}

func TestWithdrawalService_List_InvalidRange(t *testing.T) {
	mock := &mockWithdrawalRepo{
		ListFn: func(context.Context, int, string, string) ([]models.WithdrawalRecord, error) {
			t.Fatal("repo should not be reached for an inverted range")
			return nil, nil
		},
	}
	svc := NewWithdrawalService(mock)

	_, err := svc.List(context.Background(), WithdrawalFilter{DateFrom: "2025-08-31", DateTo: "2025-08-01"})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestWithdrawalService_List_PassesFilter(t *testing.T) {
	var gotID int
	var gotFrom, gotTo string
	mock := &mockWithdrawalRepo{
		ListFn: func(ctx context.Context, customerID int, dateFrom, dateTo string) ([]models.WithdrawalRecord, error) {
			gotID, gotFrom, gotTo = customerID, dateFrom, dateTo
			return nil, nil
		},
	}
	svc := NewWithdrawalService(mock)

	_, err := svc.List(context.Background(), WithdrawalFilter{CustomerID: 5, DateFrom: "2025-08-01", DateTo: "2025-08-31"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotID != 5 || gotFrom != "2025-08-01" || gotTo != "2025-08-31" {
		t.Fatalf("filter not passed through: %d %s %s", gotID, gotFrom, gotTo)
	}
}
