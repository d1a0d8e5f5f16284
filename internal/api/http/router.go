package http

import (
	"net/http"

	"donorlink-backend/internal/service"
	"donorlink-backend/internal/storage"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint. Read-only browse endpoints are public the
// way the front end expects; everything that mutates goes through
// RequireAuth.
func NewRouter(
	authSvc service.AuthService,
	donationSvc service.DonationService,
	feedbackSvc service.FeedbackService,
	userSvc service.UserService,
	store storage.Storage,
	maxUploadMB int64,
) http.Handler {
	authHandler := NewAuthHandler(authSvc)
	donationHandler := NewDonationHandler(donationSvc)
	feedbackHandler := NewFeedbackHandler(feedbackSvc)
	userHandler := NewUserHandler(userSvc)
	uploadHandler := NewUploadHandler(store, maxUploadMB)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return RequireAuth(authSvc, next)
	}

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/donations", donationHandler.List).Methods("GET")
	api.HandleFunc("/donations", auth(donationHandler.Create)).Methods("POST")
	api.HandleFunc("/donations/claim", auth(donationHandler.Claim)).Methods("POST")
	api.HandleFunc("/donations/{id:[0-9]+}", donationHandler.Get).Methods("GET")
	api.HandleFunc("/donations/{id:[0-9]+}", auth(donationHandler.UpdateStatus)).Methods("PUT")
	api.HandleFunc("/donations/{id:[0-9]+}", auth(donationHandler.Delete)).Methods("DELETE")
	api.HandleFunc("/claims/{id:[0-9]+}", auth(donationHandler.UpdateClaim)).Methods("PUT")

	api.HandleFunc("/feedback", feedbackHandler.List).Methods("GET")
	api.HandleFunc("/feedback", auth(feedbackHandler.Submit)).Methods("POST")

	api.HandleFunc("/users", auth(userHandler.List)).Methods("GET")
	api.HandleFunc("/users/{id}", auth(userHandler.Get)).Methods("GET")
	api.HandleFunc("/users/{id}", auth(userHandler.SetStatus)).Methods("PUT")
	api.HandleFunc("/ngos", auth(userHandler.ListNGOs)).Methods("GET")

	api.HandleFunc("/upload", auth(uploadHandler.Upload)).Methods("POST")
	router.HandleFunc("/uploads/{file}", uploadHandler.Serve).Methods("GET")

	return CORS(router)
}
