package service

import (
	"context"
	"errors"

	"gas_delivery/internal/models"
	"gas_delivery/internal/repository"
)

var (
	ErrInvalidLiters    = errors.New("litros must be greater than zero")
	ErrInvalidDateRange = errors.New("fecha_inicio must be <= fecha_fin")
)

type WithdrawalService struct {
	withdrawalRepo repository.Withdrawals
}

func NewWithdrawalService(repo repository.Withdrawals) *WithdrawalService {
	return &WithdrawalService{withdrawalRepo: repo}
}

// Create records a withdrawal for the acting user. The referenced
// customer must exist and be active. Liters must be positive. The
// customer's available balance is intentionally left untouched.
func (s *WithdrawalService) Create(ctx context.Context, p WithdrawalParams) (int, error) {
	if p.Liters <= 0 {
		return 0, ErrInvalidLiters
	}

	id, err := s.withdrawalRepo.Create(ctx, models.Withdrawal{
		CustomerID: p.CustomerID,
		Liters:     p.Liters,
		UserID:     p.UserID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return 0, ErrCustomerNotFound
		}
		return 0, err
	}
	return id, nil
}

// List returns the withdrawal history, newest first, optionally filtered
// by customer and an inclusive date range.
func (s *WithdrawalService) List(ctx context.Context, f WithdrawalFilter) ([]models.WithdrawalRecord, error) {
	if f.DateFrom != "" && f.DateTo != "" && f.DateFrom > f.DateTo {
		return nil, ErrInvalidDateRange
	}
	return s.withdrawalRepo.List(ctx, f.CustomerID, f.DateFrom, f.DateTo)
}
