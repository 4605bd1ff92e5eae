package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Novxi/sislyotel/internal/model"
)

// createdAtLayout is the ISO-8601 layout used for the created_at column.
// Microsecond precision keeps rapid inserts distinguishable; the newest-first
// list ordering additionally tie-breaks on id.
const createdAtLayout = "2006-01-02T15:04:05.000000Z07:00"

// reservationColumns is the canonical column list shared by every SELECT so
// scans always line up with model.Reservation.
const reservationColumns = `id, guest_name, guest_email, guest_phone,
       check_in, check_out, check_in_time, check_out_time,
       room_type, room_count, adults, children,
       total_price, payment_status, special_requests, experiences, created_at`

// expiredPredicate selects rows whose check-out date has already passed.
// Only the first 10 characters of the stored string are read, so both
// "2026-08-20" and "2026-08-20 14:00" forms compare as calendar dates.
// date('now') is the current UTC date, matching the created_at convention.
const expiredPredicate = `date(substr(check_out, 1, 10)) < date('now')`

// ReservationRepo provides CRUD operations for reservation records.  Absent
// rows surface as sql.ErrNoRows so handlers can translate them into 404
// responses with errors.Is.
type ReservationRepo struct {
	db *sqlx.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sqlx.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateParams carries the caller-supplied fields for an insert.  The id and
// created_at are assigned by Create.  None of the numeric fields are range-
// or positivity-checked here; the store accepts what the boundary validated.
type CreateParams struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      *string
	CheckIn         string
	CheckOut        string
	CheckInTime     *string
	CheckOutTime    *string
	RoomType        string
	RoomCount       int
	Adults          int
	Children        int
	TotalPrice      float64
	PaymentStatus   string
	SpecialRequests *string
	Experiences     *string // nil or absent defaults to ""
}

// Create inserts a new reservation, stamping created_at with the current UTC
// instant, and returns the stored record including the generated id.  A nil
// Experiences value is stored as an empty string.
func (r *ReservationRepo) Create(ctx context.Context, p CreateParams) (*model.Reservation, error) {
	createdAt := time.Now().UTC().Format(createdAtLayout)
	experiences := ""
	if p.Experiences != nil {
		experiences = *p.Experiences
	}

	const q = `INSERT INTO reservations (
	               guest_name, guest_email, guest_phone,
	               check_in, check_out, check_in_time, check_out_time,
	               room_type, room_count, adults, children,
	               total_price, payment_status, special_requests, experiences,
	               created_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q,
		p.GuestName, p.GuestEmail, p.GuestPhone,
		p.CheckIn, p.CheckOut, p.CheckInTime, p.CheckOutTime,
		p.RoomType, p.RoomCount, p.Adults, p.Children,
		p.TotalPrice, p.PaymentStatus, p.SpecialRequests, experiences,
		createdAt,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	// Query back the full row so the response reflects exactly what was stored.
	return r.GetByID(ctx, id)
}

// List returns every reservation, newest created first.  datetime() compares
// at second granularity, so id breaks ties between sub-second inserts.  When
// the store is empty an empty slice is returned, never nil.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + `
	           FROM reservations
	           ORDER BY datetime(created_at) DESC, id DESC`
	out := make([]model.Reservation, 0)
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the reservation with the given id, or sql.ErrNoRows when
// no such row exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	var rec model.Reservation
	if err := r.db.GetContext(ctx, &rec, q, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateAdminFields applies a partial update to the three admin-editable
// fields and returns the updated record.  The two text fields follow
// presence semantics: a non-nil value replaces the stored one, empty string
// included.  payment_status follows truthiness semantics instead: it is
// replaced only when the supplied value is non-empty, so an explicit empty
// string is indistinguishable from "not supplied" and is silently ignored.
// Existing clients rely on this asymmetry; do not "fix" it here.
//
// The read-then-write sequence is not wrapped in a transaction; a concurrent
// delete between the two statements makes the update a no-op on a row that
// no longer exists.
func (r *ReservationRepo) UpdateAdminFields(ctx context.Context, id int64, paymentStatus, specialRequests, experiences *string) (*model.Reservation, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newPayment := cur.PaymentStatus
	if paymentStatus != nil && *paymentStatus != "" {
		newPayment = *paymentStatus
	}
	newSpecial := cur.SpecialRequests
	if specialRequests != nil {
		newSpecial = specialRequests
	}
	newExperiences := cur.Experiences
	if experiences != nil {
		newExperiences = *experiences
	}

	const q = `UPDATE reservations
	           SET payment_status = ?, special_requests = ?, experiences = ?
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, newPayment, newSpecial, newExperiences, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the reservation with the given id.  Absence is detected via
// the zero-rows-affected count and reported as sql.ErrNoRows.
func (r *ReservationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteExpired removes every reservation whose check-out date is strictly
// before the current date and returns both the count computed beforehand
// (purely for reporting) and the number of rows actually deleted.  The two
// statements run independently, so the numbers can differ under concurrent
// inserts; zero matches is still a success.
func (r *ReservationRepo) DeleteExpired(ctx context.Context) (toDelete, deleted int64, err error) {
	if err = r.db.GetContext(ctx, &toDelete, `SELECT COUNT(*) FROM reservations WHERE `+expiredPredicate); err != nil {
		return 0, 0, err
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE `+expiredPredicate)
	if err != nil {
		return toDelete, 0, err
	}
	deleted, err = result.RowsAffected()
	if err != nil {
		return toDelete, 0, err
	}
	return toDelete, deleted, nil
}
