package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"lodge/infras/otel/mocks"
	"lodge/infras/sqlite"
	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/repository"
	"lodge/shared"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE reservations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    room_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    check_in TIMESTAMP NOT NULL,
    check_out TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL
)`

func newTestRepository(t *testing.T) repository.Reservation {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lodge.db")

	db, err := sqlx.Connect("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(1)

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return repository.New(&sqlite.Connection{DB: db}, mocks.NewOtel())
}

func stay(roomID, checkInDay, checkOutDay int) model.Reservation {
	return model.Reservation{
		RoomID:    roomID,
		Name:      "Ayu Lestari",
		Email:     "ayu@example.com",
		Phone:     "+62 812 0000 1111",
		CheckIn:   time.Date(2026, 6, checkInDay, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 6, checkOutDay, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC),
	}
}

func TestOverlapFilter(t *testing.T) {
	checkIn := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)

	filter := repository.OverlapFilter(checkIn, checkOut)

	clause, args := filter.GetWhereClause()

	// Strict comparisons keep the interval half-open: a reservation checking
	// out exactly at checkIn, or checking in exactly at checkOut, must not
	// match.
	assert.Equal(t, "(reservations.check_in < :req_check_out AND reservations.check_out > :req_check_in)", clause)
	assert.Equal(t, map[string]any{
		"req_check_out": checkOut,
		"req_check_in":  checkIn,
	}, args)
}

func TestReservationRepository_OverlapQuery(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	// Stay in room 3 on June 1st and 2nd, checking out the morning of the 3rd.
	id, err := repo.InsertReturningID(ctx, stay(3, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	window := func(checkInDay, checkOutDay int) (int, error) {
		rows, err := repo.GetAll(ctx, gDto.QueryParams{}, repository.OverlapFilter(
			time.Date(2026, 6, checkInDay, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, checkOutDay, 0, 0, 0, 0, time.UTC),
		))

		return len(rows), err
	}

	t.Run("window straddling the stay matches", func(t *testing.T) {
		matched, err := window(2, 4)

		assert.NoError(t, err)
		assert.Equal(t, 1, matched)
	})

	t.Run("window starting on the checkout day does not match", func(t *testing.T) {
		matched, err := window(3, 5)

		assert.NoError(t, err)
		assert.Zero(t, matched)
	})

	t.Run("window ending on the check-in day does not match", func(t *testing.T) {
		rows, err := repo.GetAll(ctx, gDto.QueryParams{}, repository.OverlapFilter(
			time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		))

		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("disjoint window does not match", func(t *testing.T) {
		matched, err := window(10, 12)

		assert.NoError(t, err)
		assert.Zero(t, matched)
	})

	t.Run("second overlapping insert succeeds with the next id", func(t *testing.T) {
		id, err := repo.InsertReturningID(ctx, stay(3, 1, 3))

		assert.NoError(t, err)
		assert.Equal(t, int64(2), id)

		matched, err := window(2, 4)
		assert.NoError(t, err)
		assert.Equal(t, 2, matched)
	})
}

func TestReservationRepository_GetAndCount(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	id, err := repo.InsertReturningID(ctx, stay(7, 10, 12))
	require.NoError(t, err)

	t.Run("get by id returns the stored row", func(t *testing.T) {
		reservation, err := repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))

		assert.NoError(t, err)
		assert.Equal(t, id, reservation.ID)
		assert.Equal(t, 7, reservation.RoomID)
		assert.Equal(t, "ayu@example.com", reservation.Email)
		assert.True(t, reservation.CheckIn.Before(reservation.CheckOut))
	})

	t.Run("get by unknown id returns the zero value", func(t *testing.T) {
		reservation, err := repo.Get(ctx, shared.FilterByID(int64(999), model.FieldID, model.TableName))

		assert.NoError(t, err)
		assert.Zero(t, reservation.ID)
	})

	t.Run("count without a filter sees every row", func(t *testing.T) {
		count, err := repo.Count(ctx, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestReservationRepository_SortValidation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.InsertReturningID(ctx, stay(1, 1, 2))
	require.NoError(t, err)

	t.Run("known column sorts", func(t *testing.T) {
		rows, err := repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCheckIn, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("unknown sort column is rejected", func(t *testing.T) {
		_, err := repo.GetAll(ctx, gDto.QueryParams{SortBy: "name; DROP TABLE reservations", SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown sort direction is rejected", func(t *testing.T) {
		_, err := repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCheckIn, SortDir: "SIDEWAYS"}, gDto.FilterGroup{})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
