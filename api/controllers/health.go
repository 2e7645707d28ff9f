package controllers

import (
	"encoding/json"
	"net/http"
)

type healthStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// HealthLive reports process liveness. It never consults dependencies.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, http.StatusOK, healthStatus{Status: "ok"})
	}
}

// HealthReady runs the registered readiness checks, typically a snapshot
// directory probe per store, and reports the first failure.
func HealthReady(checks ...func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(); err != nil {
				writeHealth(w, http.StatusServiceUnavailable, healthStatus{
					Status: "unavailable",
					Detail: err.Error(),
				})
				return
			}
		}
		writeHealth(w, http.StatusOK, healthStatus{Status: "ok"})
	}
}

func writeHealth(w http.ResponseWriter, status int, payload healthStatus) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
