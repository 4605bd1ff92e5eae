package handler

// This file defines HTTP handlers for staff to list, inspect, update and
// delete reservations, plus the bulk expiry cleanup.  The admin path prefix
// is trusted (no authentication); handlers only translate store results into
// HTTP responses.

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Novxi/sislyotel/internal/repository"
)

// AdminHandler serves the administrative reservation endpoints.
type AdminHandler struct {
	Reservations *repository.ReservationRepo // access to the reservation store
}

// NewAdminHandler constructs an AdminHandler.  The repository must be non-nil.
func NewAdminHandler(repo *repository.ReservationRepo) *AdminHandler {
	if repo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Reservations: repo}
}

// reservationID parses the :id path parameter.
func reservationID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid reservation id")
	}
	return id, nil
}

// ListReservations handles GET /api/admin/reservations.  It returns every
// reservation, newest created first, as a JSON array.  An empty array is
// returned when the store is empty.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetReservation handles GET /api/admin/reservations/:id.
func (h *AdminHandler) GetReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservation"})
	}
	return c.JSON(http.StatusOK, rec)
}

// updateReservationReq carries the three admin-editable fields.  Pointers
// distinguish "not supplied" from an explicit value.
type updateReservationReq struct {
	PaymentStatus   *string `json:"payment_status"`
	SpecialRequests *string `json:"special_requests"`
	Experiences     *string `json:"experiences"`
}

// UpdateReservation handles PATCH /api/admin/reservations/:id.  The three
// optional parameters are accepted as query parameters or in a JSON body,
// query taking precedence.  A query parameter's presence alone counts as an
// explicit value, so ?special_requests= clears that field — while an empty
// payment_status is ignored (see repository.UpdateAdminFields).
func (h *AdminHandler) UpdateReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	var req updateReservationReq
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		}
	}
	qp := c.QueryParams()
	if vs, ok := qp["payment_status"]; ok && len(vs) > 0 {
		req.PaymentStatus = &vs[0]
	}
	if vs, ok := qp["special_requests"]; ok && len(vs) > 0 {
		req.SpecialRequests = &vs[0]
	}
	if vs, ok := qp["experiences"]; ok && len(vs) > 0 {
		req.Experiences = &vs[0]
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Reservations.UpdateAdminFields(ctx, id, req.PaymentStatus, req.SpecialRequests, req.Experiences)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update reservation failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

// DeleteReservation handles DELETE /api/admin/reservations/:id.  On success
// it confirms the deleted id; an unknown id yields 404.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Reservations.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete reservation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "deleted_id": id})
}

// CleanupExpired handles POST /api/admin/reservations/cleanup-expired.  It
// deletes every reservation whose check-out date is before today and always
// answers 200 with both the matched and deleted counts, even when nothing
// matched.  There is no dry-run flag and no undo.
func (h *AdminHandler) CleanupExpired(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	toDelete, deleted, err := h.Reservations.DeleteExpired(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cleanup failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":        "ok",
		"to_delete":     toDelete,
		"deleted_count": deleted,
	})
}
