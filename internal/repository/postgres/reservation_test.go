package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"
)

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "vehicle_id", "driver_id", "price", "currency_code",
		"start_date_time", "end_date_time", "state_id", "state_name",
	})
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rv := &domain.Reservation{
			VehicleID:     4,
			DriverID:      7,
			Price:         30,
			CurrencyCode:  "EUR",
			StartDateTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			EndDateTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			State:         domain.ReservationState{ID: 1, Name: domain.StateUnpaid},
		}

		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(rv.VehicleID, rv.DriverID, rv.Price, rv.CurrencyCode, rv.StartDateTime, rv.EndDateTime, rv.State.ID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, rv)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), rv.ID)
	})
}

func TestReservationRepository_CreateIfVehicleFree(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	lo := start.Add(-30 * time.Minute)
	hi := end.Add(30 * time.Minute)
	rv := &domain.Reservation{
		VehicleID:     4,
		DriverID:      7,
		Price:         30,
		CurrencyCode:  "EUR",
		StartDateTime: start,
		EndDateTime:   end,
		State:         domain.ReservationState{ID: 1, Name: domain.StateUnpaid},
	}

	t.Run("InsertsWhenWindowFree", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(rv.VehicleID, lo, hi, domain.StateCanceled).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(rv.VehicleID, rv.DriverID, rv.Price, rv.CurrencyCode, rv.StartDateTime, rv.EndDateTime, rv.State.ID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()

		created, err := repo.CreateIfVehicleFree(ctx, rv, lo, hi)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(42), rv.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BacksOffWhenWindowTaken", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(rv.VehicleID, lo, hi, domain.StateCanceled).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		created, err := repo.CreateIfVehicleFree(ctx, rv, lo, hi)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReservationRepository_GetByIDStateNot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := reservationRows().
			AddRow(9, 4, 7, 30.0, "EUR", time.Now(), time.Now().Add(2*time.Hour), 1, "UNPAID")

		mock.ExpectQuery("SELECT (.+) FROM reservations").
			WithArgs(int64(9), domain.StateCanceled).
			WillReturnRows(rows)

		rv, err := repo.GetByIDStateNot(ctx, 9, domain.StateCanceled)
		assert.NoError(t, err)
		assert.NotNil(t, rv)
		assert.Equal(t, int64(9), rv.ID)
		assert.Equal(t, domain.StateUnpaid, rv.State.Name)
	})

	t.Run("ExcludedStateReadsAsNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations").
			WithArgs(int64(9), domain.StateCanceled).
			WillReturnRows(reservationRows())

		rv, err := repo.GetByIDStateNot(ctx, 9, domain.StateCanceled)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, rv)
	})
}

func TestReservationRepository_ExistsWithinWindowStateNot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	lo := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	hi := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(4), lo, hi, domain.StateCanceled).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsWithinWindowStateNot(ctx, 4, lo, hi, domain.StateCanceled)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestReservationRepository_DeleteAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ids := []int64{10, 12}
		mock.ExpectExec("DELETE FROM reservations").
			WithArgs(pq.Array(ids)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		assert.NoError(t, repo.DeleteAll(ctx, ids))
	})

	t.Run("EmptyListIsANoOp", func(t *testing.T) {
		assert.NoError(t, repo.DeleteAll(ctx, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
