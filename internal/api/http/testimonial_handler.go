package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/service"
)

// TestimonialHandler serves public testimonial submission/listing and the
// admin moderation queue.
type TestimonialHandler struct {
	testimonialSvc service.TestimonialService
}

func NewTestimonialHandler(testimonialSvc service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialSvc: testimonialSvc}
}

func (h *TestimonialHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialSvc.ListApproved(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var t domain.Testimonial
	if err := decodeJSON(r, &t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid testimonial payload")
		return
	}
	auth := AuthFromRequest(r)
	t.UserID = auth.UserID
	if t.Name == "" {
		t.Name = auth.Name
	}

	created, err := h.testimonialSvc.Submit(r.Context(), &t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TestimonialHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialSvc.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.TestimonialStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.testimonialSvc.SetStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.TestimonialStatus{"status": req.Status})
}

func (h *TestimonialHandler) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.testimonialSvc.PendingCount(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"pending_count": count})
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.testimonialSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
