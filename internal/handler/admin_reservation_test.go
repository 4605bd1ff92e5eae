package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Novxi/sislyotel/internal/model"
)

func TestListReservationsNewestFirst(t *testing.T) {
	e, repo := newTestEnv(t)
	h := NewAdminHandler(repo)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		rec, err := repo.Create(ctx, sampleCreateParams())
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		ids = append(ids, rec.ID)
	}

	rec, err := doJSON(e, h.ListReservations, http.MethodGet, "/api/admin/reservations", "", nil)
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var list []model.Reservation
	decodeBody(t, rec, &list)
	if len(list) != 3 {
		t.Fatalf("list length = %d, want 3", len(list))
	}
	for i, r := range list {
		if want := ids[len(ids)-1-i]; r.ID != want {
			t.Errorf("list[%d].id = %d, want %d", i, r.ID, want)
		}
	}
}

func TestGetReservation(t *testing.T) {
	e, repo := newTestEnv(t)
	h := NewAdminHandler(repo)

	created, err := repo.Create(context.Background(), sampleCreateParams())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec, err := doJSON(e, h.GetReservation, http.MethodGet, "/api/admin/reservations/1", "", map[string]string{"id": "1"})
	if err != nil {
		t.Fatalf("GetReservation: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var got model.Reservation
	decodeBody(t, rec, &got)
	if got.ID != created.ID || got.GuestEmail != created.GuestEmail || got.CreatedAt != created.CreatedAt {
		t.Errorf("got %+v, want %+v", got, created)
	}
}

func TestGetReservationNotFound(t *testing.T) {
	e, repo := newTestEnv(t)
	h := NewAdminHandler(repo)

	rec, err := doJSON(e, h.GetReservation, http.MethodGet, "/api/admin/reservations/99", "", map[string]string{"id": "99"})
	if err != nil {
		t.Fatalf("GetReservation: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateReservationQueryParamSemantics(t *testing.T) {
	e, repo := newTestEnv(t)
	h := NewAdminHandler(repo)
	ctx := context.Background()

	p := sampleCreateParams()
	p.SpecialRequests = strPtr("late arrival")
	p.Experiences = strPtr("spa")
	created, err := repo.Create(ctx, p)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// An empty special_requests query parameter is an explicit clear; the
	// other two fields stay untouched.
	rec, err := doJSON(e, h.UpdateReservation, http.MethodPatch,
		"/api/admin/reservations/1?special_requests=", "", map[string]string{"id": "1"})
	if err != nil {
		t.Fatalf("UpdateReservation: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var got model.Reservation
	decodeBody(t, rec, &got)
	if got.SpecialRequests == nil || *got.SpecialRequests != "" {
		t.Errorf("special_requests = %v, want explicit empty string", got.SpecialRequests)
	}
	if got.PaymentStatus != "pending" || got.Experiences != "spa" {
		t.Errorf("untouched fields changed: payment=%q experiences=%q", got.PaymentStatus, got.Experiences)
	}

	// An empty payment_status is silently ignored.
	rec, err = doJSON(e, h.UpdateReservation, http.MethodPatch,
		"/api/admin/reservations/1?payment_status=", "", map[string]string{"id": "1"})
	if err != nil {
		t.Fatalf("UpdateReservation: %v", err)
	}
	decodeBody(t, rec, &got)
	if got.PaymentStatus != "pending" {
		t.Errorf("payment_status after empty update = %q, want %q", got.PaymentStatus, "pending")
	}

	// A JSON body works too.
	rec, err = doJSON(e, h.UpdateReservation, http.MethodPatch,
		"/api/admin/reservations/1", `{"payment_status": "paid"}`, map[string]string{"id": "1"})
	if err != nil {
		t.Fatalf("UpdateReservation: %v", err)
	}
	decodeBody(t, rec, &got)
	if got.PaymentStatus != "paid" {
		t.Errorf("payment_status = %q, want %q", got.PaymentStatus, "paid")
	}
	if got.ID != created.ID || got.CreatedAt != created.CreatedAt {
		t.Errorf("immutable fields changed: %+v", got)
	}
}

func TestUpdateReservationNotFound(t *testing.T) {
	e, repo := newTestEnv(t)
	h := NewAdminHandler(repo)

	rec, err := doJSON(e, h.UpdateReservation, http.MethodPatch,
		"/api/admin/reservations/7?payment_status=paid", "", map[string]string{"id": "7"})
	if err != nil {
		t.Fatalf("UpdateReservation: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDeleteReservation(t *testing.T) {
	e, repo := newTestEnv(t)
	h := NewAdminHandler(repo)

	created, err := repo.Create(context.Background(), sampleCreateParams())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec, err := doJSON(e, h.DeleteReservation, http.MethodDelete,
		"/api/admin/reservations/1", "", map[string]string{"id": "1"})
	if err != nil {
		t.Fatalf("DeleteReservation: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
	if id, ok := body["deleted_id"].(float64); !ok || int64(id) != created.ID {
		t.Errorf("deleted_id = %v, want %d", body["deleted_id"], created.ID)
	}

	// A second delete on the same id is a 404.
	rec, err = doJSON(e, h.DeleteReservation, http.MethodDelete,
		"/api/admin/reservations/1", "", map[string]string{"id": "1"})
	if err != nil {
		t.Fatalf("DeleteReservation: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCleanupExpired(t *testing.T) {
	e, repo := newTestEnv(t)
	h := NewAdminHandler(repo)
	ctx := context.Background()

	expired := sampleCreateParams()
	expired.CheckOut = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := repo.Create(ctx, expired); err != nil {
		t.Fatalf("Create expired: %v", err)
	}
	upcoming := sampleCreateParams()
	upcoming.CheckOut = time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	if _, err := repo.Create(ctx, upcoming); err != nil {
		t.Fatalf("Create upcoming: %v", err)
	}

	rec, err := doJSON(e, h.CleanupExpired, http.MethodPost,
		"/api/admin/reservations/cleanup-expired", "", nil)
	if err != nil {
		t.Fatalf("CleanupExpired: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["status"] != "ok" || body["to_delete"].(float64) != 1 || body["deleted_count"].(float64) != 1 {
		t.Errorf("body = %v, want ok/1/1", body)
	}

	// Second run matches nothing and is still a 200.
	rec, err = doJSON(e, h.CleanupExpired, http.MethodPost,
		"/api/admin/reservations/cleanup-expired", "", nil)
	if err != nil {
		t.Fatalf("CleanupExpired (second run): %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	decodeBody(t, rec, &body)
	if body["to_delete"].(float64) != 0 || body["deleted_count"].(float64) != 0 {
		t.Errorf("second run body = %v, want 0/0", body)
	}
}
