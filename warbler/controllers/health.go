package controllers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// HealthCheck reports the service name and whether the database behind
// it answers a ping.
func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{
		"service": "warbler",
		"status":  "ok",
	}
	if h.db != nil {
		body["database"] = "up"
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
			body["database"] = "down"
			body["status"] = "degraded"
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if body["status"] != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(body)
}
