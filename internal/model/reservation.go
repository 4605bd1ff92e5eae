package model

// Reservation is one guest booking record, the system's only entity.  A
// record is created through the public submission endpoint and afterwards
// only payment_status, special_requests and experiences may change, via the
// admin partial update.  id and created_at are assigned once by the store
// and are immutable.
//
// Nullable columns map to pointer fields.  experiences is plain text, not a
// pointer, because the store defaults it to "" at insert time and it is
// never NULL afterwards.  payment_status is a free-text tag ("pending",
// "paid", ...) with no enforced value set.
type Reservation struct {
	ID              int64   `db:"id" json:"id"`                             // reservations.id
	GuestName       string  `db:"guest_name" json:"guest_name"`             // reservations.guest_name
	GuestEmail      string  `db:"guest_email" json:"guest_email"`           // reservations.guest_email
	GuestPhone      *string `db:"guest_phone" json:"guest_phone"`           // reservations.guest_phone (nullable)
	CheckIn         string  `db:"check_in" json:"check_in"`                 // reservations.check_in
	CheckOut        string  `db:"check_out" json:"check_out"`               // reservations.check_out
	CheckInTime     *string `db:"check_in_time" json:"check_in_time"`       // reservations.check_in_time (nullable)
	CheckOutTime    *string `db:"check_out_time" json:"check_out_time"`     // reservations.check_out_time (nullable)
	RoomType        string  `db:"room_type" json:"room_type"`               // reservations.room_type
	RoomCount       int     `db:"room_count" json:"room_count"`             // reservations.room_count
	Adults          int     `db:"adults" json:"adults"`                     // reservations.adults
	Children        int     `db:"children" json:"children"`                 // reservations.children
	TotalPrice      float64 `db:"total_price" json:"total_price"`           // reservations.total_price
	PaymentStatus   string  `db:"payment_status" json:"payment_status"`     // reservations.payment_status
	SpecialRequests *string `db:"special_requests" json:"special_requests"` // reservations.special_requests (nullable)
	Experiences     string  `db:"experiences" json:"experiences"`           // reservations.experiences
	CreatedAt       string  `db:"created_at" json:"created_at"`             // reservations.created_at (ISO-8601 UTC)
}
