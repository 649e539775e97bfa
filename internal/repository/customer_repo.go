package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gas_delivery/internal/models"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

var _ Customers = (*CustomerRepository)(nil)

const (
	selectCustomersSQL       = `SELECT id, nombre, COALESCE(direccion, ''), COALESCE(telefono, ''), litros_mes, litros_disponibles, activo FROM clientes WHERE activo = 1`
	selectCustomerSearchCond = ` AND (nombre LIKE ? OR direccion LIKE ?)`

	// The subquery sums the customer's withdrawals with both month
	// boundaries inclusive; ISO date strings compare correctly as text.
	selectCustomerDetailSQL = `
		SELECT c.id, c.nombre, COALESCE(c.direccion, ''), COALESCE(c.telefono, ''),
		       c.litros_mes, c.litros_disponibles, c.activo,
		       COALESCE((SELECT SUM(litros) FROM retiros
		                 WHERE cliente_id = c.id AND fecha >= ? AND fecha <= ?), 0)
		FROM clientes c
		WHERE c.id = ? AND c.activo = 1
	`

	insertCustomerSQL = `INSERT INTO clientes (nombre, direccion, telefono, litros_mes, litros_disponibles) VALUES (?, ?, ?, ?, ?)`
)

// List returns all active customers, optionally filtered by a substring
// match on name or address. LIKE on SQLite is case-insensitive for ASCII.
func (r *CustomerRepository) List(ctx context.Context, search string) ([]models.Customer, error) {
	q := selectCustomersSQL
	var args []any
	if search != "" {
		q += selectCustomerSearchCond
		term := "%" + search + "%"
		args = append(args, term, term)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select clientes: %w", err)
	}
	defer rows.Close()

	out := make([]models.Customer, 0, 16)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.MonthlyQuota, &c.AvailableLiters, &c.Active); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDetail fetches one active customer plus the liters withdrawn within
// [monthStart, monthEnd]. Returns (nil, nil) when missing or inactive.
func (r *CustomerRepository) GetDetail(ctx context.Context, id int, monthStart, monthEnd string) (*models.CustomerDetail, error) {
	var d models.CustomerDetail
	err := r.db.QueryRowContext(ctx, selectCustomerDetailSQL, monthStart, monthEnd, id).
		Scan(&d.ID, &d.Name, &d.Address, &d.Phone, &d.MonthlyQuota, &d.AvailableLiters, &d.Active, &d.WithdrawnThisMonth)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select cliente detail %d: %w", id, err)
	}
	return &d, nil
}

// Create inserts a customer and returns its ID. AvailableLiters is
// persisted as supplied by the service (equal to the monthly quota).
func (r *CustomerRepository) Create(ctx context.Context, c models.Customer) (int, error) {
	res, err := r.db.ExecContext(ctx, insertCustomerSQL,
		c.Name, c.Address, c.Phone, c.MonthlyQuota, c.AvailableLiters)
	if err != nil {
		return 0, fmt.Errorf("insert cliente %q: %w", c.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for cliente %q: %w", c.Name, err)
	}
	return int(lastID), nil
}
