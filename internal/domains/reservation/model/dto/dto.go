package dto

import (
	"fmt"
	"time"

	"lodge/internal/domains/reservation/model"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

type CreateReservationRequest struct {
	RoomID   int    `json:"room_id"   validate:"required,min=1"`
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,max=100"`
	Phone    string `json:"phone"     validate:"required,max=30"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

func (c *CreateReservationRequest) ToModel() (model.Reservation, error) {
	checkIn, err := ParseStayDate(c.CheckIn)
	if err != nil {
		return model.Reservation{}, failure.BadRequestFromString(fmt.Sprintf("invalid check_in: %v", err)) // nolint:wrapcheck
	}

	checkOut, err := ParseStayDate(c.CheckOut)
	if err != nil {
		return model.Reservation{}, failure.BadRequestFromString(fmt.Sprintf("invalid check_out: %v", err)) // nolint:wrapcheck
	}

	return model.Reservation{
		RoomID:    c.RoomID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		CreatedAt: timezone.Now(),
	}, nil
}

type CreateReservationResponse struct {
	ID int64 `json:"id"`
}

type ReservationResponse struct {
	ID        int64  `json:"id"`
	RoomID    int    `json:"room_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	CreatedAt string `json:"created_at"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateFormat)
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

func FromModels(models []model.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// ParseStayDate accepts either a full RFC3339 timestamp or a bare calendar
// date, which parses at midnight in the application timezone.
func ParseStayDate(value string) (time.Time, error) {
	if t, err := time.Parse(constant.DateFormat, value); err == nil {
		return t, nil
	}

	t, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %s or %s: %w", constant.DateFormat, constant.DateOnlyFormat, err)
	}

	return t, nil
}
