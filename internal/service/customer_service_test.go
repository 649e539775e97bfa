package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gas_delivery/internal/models"
)

type mockCustomerRepo struct {
	ListFn      func(ctx context.Context, search string) ([]models.Customer, error)
	GetDetailFn func(ctx context.Context, id int, monthStart, monthEnd string) (*models.CustomerDetail, error)
	CreateFn    func(ctx context.Context, c models.Customer) (int, error)

	lastCreate models.Customer
	lastStart  string
	lastEnd    string
}

func (m *mockCustomerRepo) List(ctx context.Context, search string) ([]models.Customer, error) {
	return m.ListFn(ctx, search)
}

func (m *mockCustomerRepo) GetDetail(ctx context.Context, id int, monthStart, monthEnd string) (*models.CustomerDetail, error) {
	m.lastStart, m.lastEnd = monthStart, monthEnd
	return m.GetDetailFn(ctx, id, monthStart, monthEnd)
}

func (m *mockCustomerRepo) Create(ctx context.Context, c models.Customer) (int, error) {
	m.lastCreate = c
	return m.CreateFn(ctx, c)
}

func TestCurrentMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "mid month",
			now:       time.Date(2025, time.August, 29, 15, 0, 0, 0, time.UTC),
			wantStart: "2025-08-01",
			wantEnd:   "2025-08-31",
		},
		{
			name:      "leap february",
			now:       time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "december wraps the year",
			now:       time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantStart: "2025-12-01",
			wantEnd:   "2025-12-31",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := currentMonthBounds(tt.now)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("bounds = %s..%s, want %s..%s", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCustomerService_Get_NotFound(t *testing.T) {
	mock := &mockCustomerRepo{
		GetDetailFn: func(context.Context, int, string, string) (*models.CustomerDetail, error) {
			return nil, nil
		},
	}
	svc := NewCustomerService(mock)

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerService_Get_PassesMonthBounds(t *testing.T) {
	detail := &models.CustomerDetail{
		Customer:           models.Customer{ID: 5, Name: "Acme", Active: true},
		WithdrawnThisMonth: 12,
	}
	mock := &mockCustomerRepo{
		GetDetailFn: func(ctx context.Context, id int, monthStart, monthEnd string) (*models.CustomerDetail, error) {
			return detail, nil
		},
	}
	svc := NewCustomerService(mock)

	got, err := svc.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.WithdrawnThisMonth != 12 {
		t.Fatalf("unexpected detail: %+v", got)
	}

	wantStart, wantEnd := currentMonthBounds(time.Now())
	if mock.lastStart != wantStart || mock.lastEnd != wantEnd {
		t.Fatalf("month bounds passed to repo: %s..%s, want %s..%s",
			mock.lastStart, mock.lastEnd, wantStart, wantEnd)
	}
}

func TestCustomerService_Create_Validation(t *testing.T) {
	mock := &mockCustomerRepo{
		CreateFn: func(context.Context, models.Customer) (int, error) {
			t.Fatal("Create should not reach the repo on validation failure")
			return 0, nil
		},
	}
	svc := NewCustomerService(mock)

	if _, err := svc.Create(context.Background(), CustomerParams{Name: "  "}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CustomerParams{Name: "Acme", MonthlyQuota: -5}); !errors.Is(err, ErrInvalidQuota) {
		t.Fatalf("expected ErrInvalidQuota, got %v", err)
	}
}

func TestCustomerService_Create_BalanceMirrorsQuota(t *testing.T) {
	mock := &mockCustomerRepo{
		CreateFn: func(ctx context.Context, c models.Customer) (int, error) { return 10, nil },
	}
	svc := NewCustomerService(mock)

	id, err := svc.Create(context.Background(), CustomerParams{Name: " Acme ", MonthlyQuota: 100})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 10 {
		t.Fatalf("expected id 10, got %d", id)
	}
	c := mock.lastCreate
	if c.Name != "Acme" {
		t.Errorf("name should be trimmed, got %q", c.Name)
	}
	if c.MonthlyQuota != 100 || c.AvailableLiters != 100 {
		t.Errorf("available must start equal to quota: %+v", c)
	}
	if !c.Active {
		t.Errorf("new customers must be active")
	}
}
