package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"lankadrive-backend/internal/service"
	"lankadrive-backend/internal/storage"
)

// RouterDeps carries everything the router needs wired up.
type RouterDeps struct {
	BookingSvc     service.BookingService
	CarSvc         service.CarService
	AgreementSvc   service.AgreementService
	TestimonialSvc service.TestimonialService
	AuthSvc        service.AuthService
	AuthMW         *AuthMiddleware
	LocalStore     *storage.LocalStorage // nil when firebase storage is used
	MaxFormSizeMB  int64
}

// NewRouter builds the full API surface: public catalog routes, user
// routes behind authentication, and admin routes behind the admin role.
func NewRouter(deps RouterDeps) *mux.Router {
	bookings := NewBookingHandler(deps.BookingSvc, deps.MaxFormSizeMB)
	cars := NewCarHandler(deps.CarSvc, deps.MaxFormSizeMB)
	agreements := NewAgreementHandler(deps.AgreementSvc)
	testimonials := NewTestimonialHandler(deps.TestimonialSvc)
	auth := NewAuthHandler(deps.AuthSvc)

	r := mux.NewRouter()
	r.Use(RequestLogging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/cars", cars.ListCars).Methods("GET")
	api.HandleFunc("/cars/featured", cars.ListFeaturedCars).Methods("GET")
	api.HandleFunc("/cars/{id}", cars.GetCar).Methods("GET")
	api.HandleFunc("/testimonials", testimonials.ListApproved).Methods("GET")
	api.HandleFunc("/auth/login", auth.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", auth.Refresh).Methods("POST")

	if deps.LocalStore != nil {
		files := NewFileHandler(deps.LocalStore)
		api.HandleFunc("/files/download", files.Download).Methods("GET")
	}

	// Authenticated user routes
	user := api.NewRoute().Subrouter()
	user.Use(deps.AuthMW.RequireUser)
	user.HandleFunc("/bookings", bookings.SubmitInquiry).Methods("POST")
	user.HandleFunc("/bookings/my", bookings.ListMyBookings).Methods("GET")
	user.HandleFunc("/bookings/{id}", bookings.GetBooking).Methods("GET")
	user.HandleFunc("/bookings/{id}/cancel", bookings.CancelMyBooking).Methods("POST")
	user.HandleFunc("/testimonials", testimonials.Submit).Methods("POST")

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(deps.AuthMW.RequireAdmin)
	admin.HandleFunc("/bookings", bookings.ListAllBookings).Methods("GET")
	admin.HandleFunc("/bookings", bookings.CreateManualBooking).Methods("POST")
	admin.HandleFunc("/bookings/pending-count", bookings.PendingCount).Methods("GET")
	admin.HandleFunc("/bookings/{id}/confirm", bookings.ConfirmBooking).Methods("POST")
	admin.HandleFunc("/bookings/{id}/cancel", bookings.CancelBooking).Methods("POST")
	admin.HandleFunc("/bookings/{id}/agreement", agreements.SaveAgreement).Methods("PUT")
	admin.HandleFunc("/bookings/{id}/agreement", agreements.GetAgreement).Methods("GET")
	admin.HandleFunc("/cars", cars.CreateCar).Methods("POST")
	admin.HandleFunc("/cars/{id}", cars.UpdateCar).Methods("PUT")
	admin.HandleFunc("/cars/{id}", cars.DeleteCar).Methods("DELETE")
	admin.HandleFunc("/cars/{id}/availability", cars.SetAvailability).Methods("POST")
	admin.HandleFunc("/cars/{id}/booked-dates", cars.OverwriteBookedDates).Methods("PUT")
	admin.HandleFunc("/cars/{id}/release-dates", cars.ReleaseDates).Methods("POST")
	admin.HandleFunc("/testimonials", testimonials.ListAll).Methods("GET")
	admin.HandleFunc("/testimonials/pending-count", testimonials.PendingCount).Methods("GET")
	admin.HandleFunc("/testimonials/{id}/status", testimonials.SetStatus).Methods("POST")
	admin.HandleFunc("/testimonials/{id}", testimonials.Delete).Methods("DELETE")

	return r
}
