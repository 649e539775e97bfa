package service

import (
	"context"
	"errors"
	"strings"

	"gas_delivery/internal/models"
	"gas_delivery/internal/repository"
)

var ErrInvalidIntake = errors.New("litros_ingresados must be greater than zero")

type InventoryService struct {
	inventoryRepo repository.Inventory
}

func NewInventoryService(repo repository.Inventory) *InventoryService {
	return &InventoryService{inventoryRepo: repo}
}

// Current returns the latest intake snapshot; when none exists yet the
// zero entry (litros_disponibles = 0) is returned.
func (s *InventoryService) Current(ctx context.Context) (models.InventoryEntry, error) {
	e, err := s.inventoryRepo.Latest(ctx)
	if err != nil {
		return models.InventoryEntry{}, err
	}
	if e == nil {
		return models.InventoryEntry{}, nil
	}
	return *e, nil
}

func (s *InventoryService) History(ctx context.Context) ([]models.InventoryEntry, error) {
	return s.inventoryRepo.History(ctx)
}

// Add appends a fuel intake; the repository computes the new running
// total. Returns the stored entry.
func (s *InventoryService) Add(ctx context.Context, p InventoryParams) (models.InventoryEntry, error) {
	if p.LitersReceived <= 0 {
		return models.InventoryEntry{}, ErrInvalidIntake
	}

	id, err := s.inventoryRepo.Append(ctx, models.InventoryEntry{
		LitersReceived: p.LitersReceived,
		Notes:          strings.TrimSpace(p.Notes),
		UserID:         p.UserID,
	})
	if err != nil {
		return models.InventoryEntry{}, err
	}

	e, err := s.inventoryRepo.Latest(ctx)
	if err != nil {
		return models.InventoryEntry{}, err
	}
	if e == nil || e.ID != id {
		// Concurrent intake landed after ours; report ours by id anyway.
		return models.InventoryEntry{ID: id, LitersReceived: p.LitersReceived, UserID: p.UserID}, nil
	}
	return *e, nil
}
