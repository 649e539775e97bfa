package repository

import (
	"context"
	"database/sql"

	"gas_delivery/internal/models"
)

type Authorization interface {
	Create(username, hash, name string, isAdmin bool) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type Customers interface {
	List(ctx context.Context, search string) ([]models.Customer, error)
	// GetDetail returns the active customer with the liters withdrawn in
	// [monthStart, monthEnd] (inclusive, "YYYY-MM-DD" strings).
	GetDetail(ctx context.Context, id int, monthStart, monthEnd string) (*models.CustomerDetail, error)
	Create(ctx context.Context, c models.Customer) (int, error)
}

type Withdrawals interface {
	// Create inserts a withdrawal stamped with the given server-side
	// date and time, verifying the customer inside one transaction.
	Create(ctx context.Context, w models.Withdrawal) (int, error)
	List(ctx context.Context, customerID int, dateFrom, dateTo string) ([]models.WithdrawalRecord, error)
}

type Inventory interface {
	Latest(ctx context.Context) (*models.InventoryEntry, error)
	History(ctx context.Context) ([]models.InventoryEntry, error)
	Append(ctx context.Context, e models.InventoryEntry) (int, error)
}

type Stats interface {
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}

type Repository struct {
	Auth        Authorization
	Customers   Customers
	Withdrawals Withdrawals
	Inventory   Inventory
	Stats       Stats
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:        NewUserRepository(db),
		Customers:   NewCustomerRepository(db),
		Withdrawals: NewWithdrawalRepository(db),
		Inventory:   NewInventoryRepository(db),
		Stats:       NewStatsRepository(db),
	}
}
