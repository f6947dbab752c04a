package server

import (
	"encoding/json"
	"net/http"

	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports backend liveness for the health endpoint.
type Pinger interface {
	Ping() error
}

type Router struct {
	database Pinger
	cache    Pinger
}

func NewRouter(database Pinger, cache Pinger) *Router {
	return &Router{database: database, cache: cache}
}

// Build assembles the ops surface. The webhook handler is mounted only
// in webhook mode; in the other modes the server carries health and
// metrics alone.
func (rt *Router) Build(cfg configs.TransportConfig, webhook http.Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", rt.healthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	if cfg.Mode == configs.TransportWebhook && webhook != nil {
		router.Handle(cfg.WebhookPath, webhook).Methods(http.MethodPost)
	}
	return router
}

func (rt *Router) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}
	code := http.StatusOK
	if err := rt.database.Ping(); err != nil {
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := rt.cache.Ping(); err != nil {
		status["cache"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(status)
}
