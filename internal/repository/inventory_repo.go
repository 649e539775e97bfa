package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gas_delivery/internal/models"
)

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

var _ Inventory = (*InventoryRepository)(nil)

const (
	timestampLayout = "2006-01-02 15:04:05"

	selectLatestInventorySQL = `
		SELECT id, litros_ingresados, litros_disponibles, fecha_ingreso, COALESCE(usuario_id, 0), COALESCE(observaciones, '')
		FROM inventario ORDER BY id DESC LIMIT 1
	`

	selectInventoryHistorySQL = `
		SELECT i.id, i.litros_ingresados, i.litros_disponibles, i.fecha_ingreso,
		       COALESCE(i.usuario_id, 0), COALESCE(i.observaciones, ''),
		       COALESCE(u.usuario, '')
		FROM inventario i
		LEFT JOIN usuarios u ON i.usuario_id = u.id
		ORDER BY i.fecha_ingreso DESC
	`

	insertInventorySQL = `INSERT INTO inventario (litros_ingresados, litros_disponibles, fecha_ingreso, usuario_id, observaciones) VALUES (?, ?, ?, ?, ?)`
)

// Latest returns the most recent intake snapshot, or (nil, nil) when the
// table is still empty.
func (r *InventoryRepository) Latest(ctx context.Context) (*models.InventoryEntry, error) {
	var e models.InventoryEntry
	err := r.db.QueryRowContext(ctx, selectLatestInventorySQL).
		Scan(&e.ID, &e.LitersReceived, &e.AvailableLiters, &e.ReceivedAt, &e.UserID, &e.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select latest inventario: %w", err)
	}
	return &e, nil
}

// History returns all intake snapshots joined with the recording user,
// newest first.
func (r *InventoryRepository) History(ctx context.Context) ([]models.InventoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectInventoryHistorySQL)
	if err != nil {
		return nil, fmt.Errorf("select inventario history: %w", err)
	}
	defer rows.Close()

	out := make([]models.InventoryEntry, 0, 16)
	for rows.Next() {
		var e models.InventoryEntry
		if err := rows.Scan(&e.ID, &e.LitersReceived, &e.AvailableLiters, &e.ReceivedAt, &e.UserID, &e.Notes, &e.UserName); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Append reads the current running total and inserts the new snapshot in
// one transaction so concurrent intakes cannot interleave totals.
func (r *InventoryRepository) Append(ctx context.Context, e models.InventoryEntry) (int, error) {
	if e.ReceivedAt == "" {
		e.ReceivedAt = time.Now().UTC().Format(timestampLayout)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin inventario transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current float64
	err = tx.QueryRowContext(ctx, `SELECT litros_disponibles FROM inventario ORDER BY id DESC LIMIT 1`).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("select current inventario: %w", err)
	}
	e.AvailableLiters = current + e.LitersReceived

	var userID any
	if e.UserID > 0 {
		userID = e.UserID
	}
	var notes any
	if e.Notes != "" {
		notes = e.Notes
	}
	res, err := tx.ExecContext(ctx, insertInventorySQL,
		e.LitersReceived, e.AvailableLiters, e.ReceivedAt, userID, notes)
	if err != nil {
		return 0, fmt.Errorf("insert inventario: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for inventario: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit inventario transaction: %w", err)
	}
	return int(lastID), nil
}
