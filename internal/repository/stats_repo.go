package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gas_delivery/internal/models"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ Stats = (*StatsRepository)(nil)

const (
	countActiveCustomersSQL = `SELECT COUNT(*) FROM clientes WHERE activo = 1`
	sumDeliveredLitersSQL   = `SELECT COALESCE(SUM(litros), 0) FROM retiros`
	currentInventorySQL     = `SELECT litros_disponibles FROM inventario ORDER BY id DESC LIMIT 1`
)

// Dashboard aggregates the totals shown on the admin dashboard.
func (r *StatsRepository) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var s models.DashboardStats

	if err := r.db.QueryRowContext(ctx, countActiveCustomersSQL).Scan(&s.TotalCustomers); err != nil {
		return models.DashboardStats{}, fmt.Errorf("count active clientes: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, sumDeliveredLitersSQL).Scan(&s.LitersDelivered); err != nil {
		return models.DashboardStats{}, fmt.Errorf("sum retiros: %w", err)
	}
	err := r.db.QueryRowContext(ctx, currentInventorySQL).Scan(&s.InventoryLiters)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.DashboardStats{}, fmt.Errorf("select current inventario: %w", err)
	}

	return s, nil
}
