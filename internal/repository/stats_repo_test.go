package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockStatsRepo(t *testing.T) (*StatsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewStatsRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestStatsRepository_Dashboard(t *testing.T) {
	repo, mock, cleanup := newMockStatsRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(countActiveCustomersSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta(sumDeliveredLitersSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(340.5))
	mock.ExpectQuery(regexp.QuoteMeta(currentInventorySQL)).
		WillReturnRows(sqlmock.NewRows([]string{"litros_disponibles"}).AddRow(150.0))

	s, err := repo.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalCustomers != 12 || s.LitersDelivered != 340.5 || s.InventoryLiters != 150 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestStatsRepository_Dashboard_EmptyInventory(t *testing.T) {
	repo, mock, cleanup := newMockStatsRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(countActiveCustomersSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(sumDeliveredLitersSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0.0))
	mock.ExpectQuery(regexp.QuoteMeta(currentInventorySQL)).
		WillReturnError(sql.ErrNoRows)

	s, err := repo.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.InventoryLiters != 0 {
		t.Fatalf("expected zero inventory for empty table, got %v", s.InventoryLiters)
	}
}

func TestStatsRepository_Dashboard_CountError(t *testing.T) {
	repo, mock, cleanup := newMockStatsRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(countActiveCustomersSQL)).
		WillReturnError(errors.New("db query failed"))

	_, err := repo.Dashboard(context.Background())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !contains(err.Error(), "count active clientes") {
		t.Fatalf("expected error to contain %q, got %q", "count active clientes", err.Error())
	}
}
