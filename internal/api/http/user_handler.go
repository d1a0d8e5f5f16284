package http

import (
	"encoding/json"
	"net/http"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	q := r.URL.Query()
	users, err := h.userSvc.ListUsers(r.Context(), principal, q.Get("type"), q.Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userSvc.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Status string `json:"status"`
}

func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userSvc.SetStatus(r.Context(), principal, mux.Vars(r)["id"], domain.UserStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ListNGOs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ngos, err := h.userSvc.ListNGOs(r.Context(), q.Get("category"), q.Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	if ngos == nil {
		ngos = []domain.User{}
	}
	writeJSON(w, http.StatusOK, ngos)
}
