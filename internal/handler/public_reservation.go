package handler

// This file defines the guest-facing booking endpoint.  It is the only
// untrusted surface of the API: the payload is validated before touching the
// store, and the route carries the rate limiter when Redis is configured.

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Novxi/sislyotel/internal/repository"
)

// PublicHandler serves the unauthenticated guest-facing endpoints.
type PublicHandler struct {
	Reservations *repository.ReservationRepo // access to the reservation store
}

// NewPublicHandler constructs a PublicHandler.  The repository must be non-nil.
func NewPublicHandler(repo *repository.ReservationRepo) *PublicHandler {
	if repo == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Reservations: repo}
}

// createReservationReq is the booking submission payload.  Required numeric
// fields are pointers so that a legitimate zero (children: 0) passes
// validation while a missing key does not.  Dates are accepted as free-form
// strings; neither ordering nor calendar validity is checked, only the email
// syntax and field presence.
type createReservationReq struct {
	GuestName       string   `json:"guest_name" validate:"required"`
	GuestEmail      string   `json:"guest_email" validate:"required,email"`
	GuestPhone      *string  `json:"guest_phone"`
	CheckIn         string   `json:"check_in" validate:"required"`
	CheckOut        string   `json:"check_out" validate:"required"`
	CheckInTime     *string  `json:"check_in_time"`
	CheckOutTime    *string  `json:"check_out_time"`
	RoomType        string   `json:"room_type" validate:"required"`
	RoomCount       *int     `json:"room_count" validate:"required"`
	Adults          *int     `json:"adults" validate:"required"`
	Children        *int     `json:"children" validate:"required"`
	TotalPrice      *float64 `json:"total_price" validate:"required"`
	PaymentStatus   string   `json:"payment_status" validate:"required"`
	SpecialRequests *string  `json:"special_requests"`
	Experiences     *string  `json:"experiences"`
}

// CreateReservation handles POST /api/public/reservations.  On success it
// returns 201 with the stored record including the assigned id and
// created_at.  Malformed payloads (bad email, missing or mistyped required
// field) are rejected with 422 and nothing is persisted.
func (h *PublicHandler) CreateReservation(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Reservations.Create(ctx, repository.CreateParams{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		CheckInTime:     req.CheckInTime,
		CheckOutTime:    req.CheckOutTime,
		RoomType:        req.RoomType,
		RoomCount:       *req.RoomCount,
		Adults:          *req.Adults,
		Children:        *req.Children,
		TotalPrice:      *req.TotalPrice,
		PaymentStatus:   req.PaymentStatus,
		SpecialRequests: req.SpecialRequests,
		Experiences:     req.Experiences,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}
	return c.JSON(http.StatusCreated, rec)
}
