package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gas_delivery/internal/models"
	"gas_delivery/internal/repository"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNameRequired     = errors.New("nombre is required")
	ErrInvalidQuota     = errors.New("litros_mes must not be negative")
)

type CustomerService struct {
	customerRepo repository.Customers
}

func NewCustomerService(repo repository.Customers) *CustomerService {
	return &CustomerService{customerRepo: repo}
}

const dateLayout = "2006-01-02"

// currentMonthBounds returns the first and last day of now's calendar
// month as inclusive "YYYY-MM-DD" bounds.
func currentMonthBounds(now time.Time) (string, string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}

// List returns active customers, optionally filtered by a substring
// match on name or address.
func (s *CustomerService) List(ctx context.Context, search string) ([]models.Customer, error) {
	return s.customerRepo.List(ctx, strings.TrimSpace(search))
}

// Get returns one active customer with its current-month withdrawal
// aggregate, or ErrCustomerNotFound for missing/inactive rows.
func (s *CustomerService) Get(ctx context.Context, id int) (*models.CustomerDetail, error) {
	monthStart, monthEnd := currentMonthBounds(time.Now())
	d, err := s.customerRepo.GetDetail(ctx, id, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrCustomerNotFound
	}
	return d, nil
}

// Create validates and persists a new customer. The available balance
// starts equal to the monthly quota and is never maintained afterwards.
func (s *CustomerService) Create(ctx context.Context, p CustomerParams) (int, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return 0, ErrNameRequired
	}
	if p.MonthlyQuota < 0 {
		return 0, ErrInvalidQuota
	}

	return s.customerRepo.Create(ctx, models.Customer{
		Name:            name,
		Address:         strings.TrimSpace(p.Address),
		Phone:           strings.TrimSpace(p.Phone),
		MonthlyQuota:    p.MonthlyQuota,
		AvailableLiters: p.MonthlyQuota,
		Active:          true,
	})
}
