package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/service"
	"lankadrive-backend/internal/utils"
)

// AgreementHandler serves the admin agreement/bill form for a booking.
type AgreementHandler struct {
	agreementSvc service.AgreementService
}

func NewAgreementHandler(agreementSvc service.AgreementService) *AgreementHandler {
	return &AgreementHandler{agreementSvc: agreementSvc}
}

type agreementResponse struct {
	Agreement *domain.RentalAgreement `json:"agreement"`
	Totals    utils.BillTotals        `json:"totals"`
}

func (h *AgreementHandler) SaveAgreement(w http.ResponseWriter, r *http.Request) {
	var agreement domain.RentalAgreement
	if err := decodeJSON(r, &agreement); err != nil {
		writeError(w, http.StatusBadRequest, "invalid agreement payload")
		return
	}
	agreement.BookingID = mux.Vars(r)["id"]

	saved, err := h.agreementSvc.SaveAgreement(r.Context(), &agreement)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *AgreementHandler) GetAgreement(w http.ResponseWriter, r *http.Request) {
	agreement, totals, err := h.agreementSvc.GetAgreement(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreementResponse{Agreement: agreement, Totals: totals})
}
