// Package rest is the ingoing HTTP adapter: routing, serialization and
// status mapping only. Authorization and business rules live in the
// services.
package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"posts-lab/auth"
)

// NewRouter wires the CRUD routes. Mutating routes require a bearer
// credential; reads and the operational endpoints are public.
func NewRouter(handlers *Handlers, validator *auth.TokenValidator) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/posts", handlers.listPosts).Methods(http.MethodGet)
	router.HandleFunc("/posts", authMiddleware(validator, handlers.createPost)).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}", handlers.getPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", authMiddleware(validator, handlers.updatePost)).Methods(http.MethodPut)
	router.HandleFunc("/posts/{id}", authMiddleware(validator, handlers.deletePost)).Methods(http.MethodDelete)

	router.HandleFunc("/posts/{id}/comments", handlers.listComments).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}/comments", authMiddleware(validator, handlers.createComment)).Methods(http.MethodPost)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return router
}
