package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gas_delivery/internal/models"
)

// ErrCustomerNotFound is returned when a withdrawal references a missing
// or soft-deleted customer.
var ErrCustomerNotFound = errors.New("customer not found")

type WithdrawalRepository struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

var _ Withdrawals = (*WithdrawalRepository)(nil)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	selectActiveCustomerIDSQL = `SELECT id FROM clientes WHERE id = ? AND activo = 1`

	insertWithdrawalSQL = `INSERT INTO retiros (cliente_id, fecha, hora, litros, usuario_id) VALUES (?, ?, ?, ?, ?)`

	selectWithdrawalsSQL = `
		SELECT r.id, r.cliente_id, r.fecha, r.hora, r.litros, r.usuario_id,
		       c.nombre AS cliente_nombre, u.nombre AS usuario_nombre
		FROM retiros r
		JOIN clientes c ON r.cliente_id = c.id
		JOIN usuarios u ON r.usuario_id = u.id
		WHERE 1=1
	`
)

// Create verifies the customer and inserts the withdrawal in a single
// transaction; a failed insert leaves no partial write behind. Date and
// Time are stamped with the server clock when empty.
func (r *WithdrawalRepository) Create(ctx context.Context, w models.Withdrawal) (int, error) {
	now := time.Now()
	if w.Date == "" {
		w.Date = now.Format(dateLayout)
	}
	if w.Time == "" {
		w.Time = now.Format(timeLayout)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin retiro transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var customerID int
	if err := tx.QueryRowContext(ctx, selectActiveCustomerIDSQL, w.CustomerID).Scan(&customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCustomerNotFound
		}
		return 0, fmt.Errorf("verify cliente %d: %w", w.CustomerID, err)
	}

	res, err := tx.ExecContext(ctx, insertWithdrawalSQL,
		w.CustomerID, w.Date, w.Time, w.Liters, w.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert retiro for cliente %d: %w", w.CustomerID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for retiro: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit retiro transaction: %w", err)
	}
	return int(lastID), nil
}

// List returns withdrawals joined with customer and user names, filtered
// by customer id and/or inclusive date range, newest first. Soft-deleted
// customers are not rechecked here; history stays visible.
func (r *WithdrawalRepository) List(ctx context.Context, customerID int, dateFrom, dateTo string) ([]models.WithdrawalRecord, error) {
	q := selectWithdrawalsSQL
	var args []any

	if customerID > 0 {
		q += " AND r.cliente_id = ?"
		args = append(args, customerID)
	}
	if dateFrom != "" {
		q += " AND r.fecha >= ?"
		args = append(args, dateFrom)
	}
	if dateTo != "" {
		q += " AND r.fecha <= ?"
		args = append(args, dateTo)
	}
	q += " ORDER BY r.fecha DESC, r.hora DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select retiros: %w", err)
	}
	defer rows.Close()

	out := make([]models.WithdrawalRecord, 0, 32)
	for rows.Next() {
		var rec models.WithdrawalRecord
		if err := rows.Scan(&rec.ID, &rec.CustomerID, &rec.Date, &rec.Time, &rec.Liters, &rec.UserID,
			&rec.CustomerName, &rec.UserName); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
