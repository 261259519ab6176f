package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/service"
)

// BookingHandler serves the booking inquiry workflow: customer submission
// and the admin review actions.
type BookingHandler struct {
	bookingSvc  service.BookingService
	maxFormSize int64
}

func NewBookingHandler(bookingSvc service.BookingService, maxFormSizeMB int64) *BookingHandler {
	return &BookingHandler{
		bookingSvc:  bookingSvc,
		maxFormSize: maxFormSizeMB << 20,
	}
}

// SubmitInquiry accepts a multipart form: a "payload" part holding the
// booking JSON plus one file part per identity document, named after its
// slot ("customerNicFront", "guarantorLightBill", ...).
func (h *BookingHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFormSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var booking domain.Booking
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &booking); err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking payload")
		return
	}

	auth := AuthFromRequest(r)
	booking.UserID = auth.UserID
	if booking.CustomerEmail == "" {
		booking.CustomerEmail = auth.Email
	}

	var docs []service.DocumentUpload
	for field, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		file, err := headers[0].Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable document upload")
			return
		}
		defer file.Close()
		docs = append(docs, service.DocumentUpload{
			Field:       field,
			Filename:    headers[0].Filename,
			ContentType: headers[0].Header.Get("Content-Type"),
			Data:        file,
		})
	}

	created, fieldErrs, err := h.bookingSvc.SubmitInquiry(r.Context(), &booking, docs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BookingHandler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromRequest(r)
	bookings, err := h.bookingSvc.ListUserBookings(r.Context(), auth.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	booking, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	auth := AuthFromRequest(r)
	if auth.Role != domain.UserRoleAdmin && booking.UserID != auth.UserID {
		writeError(w, http.StatusForbidden, "not your booking")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListAllBookings(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) CreateManualBooking(w http.ResponseWriter, r *http.Request) {
	var booking domain.Booking
	if err := decodeJSON(r, &booking); err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking payload")
		return
	}
	booking.UserID = AuthFromRequest(r).UserID

	created, fieldErrs, err := h.bookingSvc.CreateManualBooking(r.Context(), &booking)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	booking, err := h.bookingSvc.ConfirmBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	booking, err := h.bookingSvc.CancelBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// CancelMyBooking lets a customer withdraw their own inquiry while it is
// still pending; everything past that point goes through the admin.
func (h *BookingHandler) CancelMyBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	booking, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	auth := AuthFromRequest(r)
	if booking.UserID != auth.UserID {
		writeError(w, http.StatusForbidden, "not your booking")
		return
	}
	if booking.Status != domain.BookingStatusPending {
		writeError(w, http.StatusConflict, "only pending bookings can be withdrawn")
		return
	}

	canceled, err := h.bookingSvc.CancelBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, canceled)
}

func (h *BookingHandler) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.bookingSvc.PendingCount(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"pending_count": count})
}
