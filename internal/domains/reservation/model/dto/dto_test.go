package dto_test

import (
	"testing"
	"time"

	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
	"lodge/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestParseStayDate(t *testing.T) {
	t.Run("accepts RFC3339", func(t *testing.T) {
		parsed, err := dto.ParseStayDate("2026-06-01T00:00:00Z")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), parsed.UTC())
	})

	t.Run("accepts a bare calendar date", func(t *testing.T) {
		parsed, err := dto.ParseStayDate("2026-06-01")

		assert.NoError(t, err)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, time.June, parsed.Month())
		assert.Equal(t, 1, parsed.Day())
		assert.Equal(t, 0, parsed.Hour())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := dto.ParseStayDate("06/01/2026")

		assert.Error(t, err)
	})
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	valid := dto.CreateReservationRequest{
		RoomID:   3,
		Name:     "Ayu Lestari",
		Email:    "ayu@example.com",
		Phone:    "+62 812 0000 1111",
		CheckIn:  "2026-06-01",
		CheckOut: "2026-06-03",
	}

	t.Run("maps every field and stamps creation time", func(t *testing.T) {
		reservation, err := valid.ToModel()

		assert.NoError(t, err)
		assert.Equal(t, valid.RoomID, reservation.RoomID)
		assert.Equal(t, valid.Name, reservation.Name)
		assert.Equal(t, valid.Email, reservation.Email)
		assert.Equal(t, valid.Phone, reservation.Phone)
		assert.True(t, reservation.CheckIn.Before(reservation.CheckOut))
		assert.False(t, reservation.CreatedAt.IsZero())
		assert.Zero(t, reservation.ID, "id is assigned by the store, never the request")
	})

	t.Run("bad check_in is a bad request", func(t *testing.T) {
		req := valid
		req.CheckIn = "yesterday"

		_, err := req.ToModel()

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("bad check_out is a bad request", func(t *testing.T) {
		req := valid
		req.CheckOut = "someday"

		_, err := req.ToModel()

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestReservationResponse_FromModel(t *testing.T) {
	reservation := model.Reservation{
		ID:        7,
		RoomID:    3,
		Name:      "Ayu Lestari",
		Email:     "ayu@example.com",
		Phone:     "+62 812 0000 1111",
		CheckIn:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC),
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, 3, res.RoomID)
	assert.Equal(t, "2026-06-01T00:00:00Z", res.CheckIn)
	assert.Equal(t, "2026-06-03T00:00:00Z", res.CheckOut)
	assert.Equal(t, "2026-05-20T09:30:00Z", res.CreatedAt)
}

func TestFromModels(t *testing.T) {
	models := []model.Reservation{{ID: 1}, {ID: 2}}

	res := dto.FromModels(models)

	assert.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, int64(2), res[1].ID)

	assert.Empty(t, dto.FromModels(nil))
}
