package model

import (
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldCheckIn   = "check_in"
	FieldCheckOut  = "check_out"
	FieldCreatedAt = "created_at"
)

// Reservation is a stored booking. Rows are only ever inserted; the id is
// assigned by the storage engine and ascends monotonically.
type Reservation struct {
	ID        int64     `db:"id"`
	RoomID    int       `db:"room_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	CreatedAt time.Time `db:"created_at"`
}

// Overlaps reports whether the stay intersects the [checkIn, checkOut)
// window using half-open semantics: a stay ending exactly when the window
// starts does not overlap.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return !(r.CheckOut.Compare(checkIn) <= 0 || r.CheckIn.Compare(checkOut) >= 0)
}
