package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/service"
)

type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
}

func NewFeedbackHandler(feedbackSvc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.FeedbackFilter{
		DonorID: q.Get("donorId"),
		NGOID:   q.Get("ngoId"),
	}
	if v := q.Get("donationId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid donation id")
			return
		}
		filter.DonationID = int32(id)
	}

	feedback, err := h.feedbackSvc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if feedback == nil {
		feedback = []domain.Feedback{}
	}
	writeJSON(w, http.StatusOK, feedback)
}

type feedbackRequest struct {
	DonationID int32  `json:"donationId"`
	ToID       string `json:"toId"`
	Rating     int32  `json:"rating"`
	Comment    string `json:"comment"`
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	feedback, err := h.feedbackSvc.Submit(r.Context(), principal, service.FeedbackInput{
		DonationID: req.DonationID,
		ToID:       req.ToID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}
