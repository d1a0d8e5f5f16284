package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/service"

	"github.com/gorilla/mux"
)

type DonationHandler struct {
	donationSvc service.DonationService
}

func NewDonationHandler(donationSvc service.DonationService) *DonationHandler {
	return &DonationHandler{donationSvc: donationSvc}
}

func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.DonationFilter{
		Category:   q.Get("category"),
		Conditions: q.Get("conditions"),
		Status:     q.Get("status"),
		DonorID:    q.Get("donorId"),
		NGOID:      q.Get("ngoId"),
	}

	donations, err := h.donationSvc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if donations == nil {
		donations = []domain.Donation{}
	}
	writeJSON(w, http.StatusOK, donations)
}

type createDonationRequest struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Conditions     string   `json:"conditions"`
	Description    string   `json:"description"`
	DeliveryOption string   `json:"delivery_option"`
	Location       string   `json:"location"`
	Images         []string `json:"images"`
}

func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	var req createDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	donationID, err := h.donationSvc.Create(r.Context(), principal, service.CreateDonationInput{
		Name:           req.Name,
		Category:       req.Category,
		Conditions:     req.Conditions,
		Description:    req.Description,
		DeliveryOption: req.DeliveryOption,
		Location:       req.Location,
		Images:         req.Images,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":    true,
		"message":    "Donation created successfully",
		"donationId": donationID,
	})
}

func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := donationIDFromPath(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid donation id")
		return
	}

	donation, err := h.donationSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, donation)
}

type updateDonationRequest struct {
	Status string `json:"status"`
}

func (h *DonationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	id, err := donationIDFromPath(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid donation id")
		return
	}

	var req updateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.donationSvc.UpdateStatus(r.Context(), principal, id, domain.DonationStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Donation updated successfully")
}

func (h *DonationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	id, err := donationIDFromPath(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid donation id")
		return
	}

	if err := h.donationSvc.Delete(r.Context(), principal, id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Donation deleted successfully")
}

type claimRequest struct {
	DonationID     int32 `json:"donationId"`
	DeliveryCharge int32 `json:"deliveryCharge"`
}

func (h *DonationHandler) Claim(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	var req claimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	donation, err := h.donationSvc.Claim(r.Context(), principal, req.DonationID, req.DeliveryCharge)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Donation claimed successfully",
		"donation": donation,
	})
}

type updateClaimRequest struct {
	Status string `json:"status"`
}

func (h *DonationHandler) UpdateClaim(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid claim id")
		return
	}

	var req updateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claim, err := h.donationSvc.AdvanceClaim(r.Context(), principal, int32(id), domain.ClaimStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Claim updated successfully",
		"claim":   claim,
	})
}

func donationIDFromPath(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}
