package service

import (
	"context"
	"time"

	"gas_delivery/internal/models"
	"gas_delivery/internal/repository"
)

// Identity is the decoded token payload made available to handlers.
type Identity struct {
	UserID   int
	Username string
	IsAdmin  bool
}

type Authorization interface {
	// Login validates credentials and returns a signed session token
	// together with the authenticated user.
	Login(username, password string) (string, *models.User, error)
	ParseToken(accessToken string) (Identity, error)
	TokenTTL() time.Duration
}

// Customers exposes list/detail/create over active customer accounts.
type Customers interface {
	List(ctx context.Context, search string) ([]models.Customer, error)
	Get(ctx context.Context, id int) (*models.CustomerDetail, error)
	Create(ctx context.Context, p CustomerParams) (int, error)
}

// Withdrawals records liter-removal events and serves the history.
type Withdrawals interface {
	Create(ctx context.Context, p WithdrawalParams) (int, error)
	List(ctx context.Context, f WithdrawalFilter) ([]models.WithdrawalRecord, error)
}

// Inventory tracks plant fuel intakes and the running available total.
type Inventory interface {
	Current(ctx context.Context) (models.InventoryEntry, error)
	History(ctx context.Context) ([]models.InventoryEntry, error)
	Add(ctx context.Context, p InventoryParams) (models.InventoryEntry, error)
}

// Stats serves the aggregate dashboard totals.
type Stats interface {
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}

type Service struct {
	Authorization
	Customers
	Withdrawals
	Inventory
	Stats
}

// AuthConfig carries the externally supplied token settings.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, auth),
		Customers:     NewCustomerService(repos.Customers),
		Withdrawals:   NewWithdrawalService(repos.Withdrawals),
		Inventory:     NewInventoryService(repos.Inventory),
		Stats:         NewStatsService(repos.Stats),
	}
}
