package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/service"
)

// CarHandler serves the public catalog and the admin fleet management
// endpoints.
type CarHandler struct {
	carSvc      service.CarService
	maxFormSize int64
}

func NewCarHandler(carSvc service.CarService, maxFormSizeMB int64) *CarHandler {
	return &CarHandler{
		carSvc:      carSvc,
		maxFormSize: maxFormSizeMB << 20,
	}
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carSvc.ListCars(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) ListFeaturedCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carSvc.ListFeaturedCars(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	car, err := h.carSvc.GetCar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

// CreateCar accepts a multipart form: a "payload" part holding the car
// JSON plus any number of "images" file parts.
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFormSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var car domain.Car
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &car); err != nil {
		writeError(w, http.StatusBadRequest, "invalid car payload")
		return
	}
	if car.Name == "" {
		writeError(w, http.StatusBadRequest, "car name is required")
		return
	}

	var images []service.ImageUpload
	for _, header := range r.MultipartForm.File["images"] {
		file, err := header.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable image upload")
			return
		}
		defer file.Close()
		images = append(images, service.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        file,
		})
	}

	created, err := h.carSvc.CreateCar(r.Context(), &car, images)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if err := decodeJSON(r, &car); err != nil {
		writeError(w, http.StatusBadRequest, "invalid car payload")
		return
	}
	car.ID = mux.Vars(r)["id"]

	updated, err := h.carSvc.UpdateCar(r.Context(), &car)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	if err := h.carSvc.DeleteCar(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CarHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsAvailable bool `json:"is_available"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.carSvc.SetAvailability(r.Context(), mux.Vars(r)["id"], req.IsAvailable); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_available": req.IsAvailable})
}

// OverwriteBookedDates replaces the car's blocked calendar wholesale with
// the dates in the request body.
func (h *CarHandler) OverwriteBookedDates(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dates []string `json:"dates"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	car, err := h.carSvc.OverwriteBookedDates(r.Context(), mux.Vars(r)["id"], req.Dates)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) ReleaseDates(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dates []string `json:"dates"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	car, err := h.carSvc.ReleaseDates(r.Context(), mux.Vars(r)["id"], req.Dates)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}
