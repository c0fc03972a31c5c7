package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/caseline/caseline/internal/cache"
	"github.com/caseline/caseline/internal/db"
)

type HealthHandler struct {
	mongo  *db.Mongo
	sqlDB  *sqlx.DB
	drafts *cache.DraftStore
}

func NewHealthHandler(mongo *db.Mongo, sqlDB *sqlx.DB, drafts *cache.DraftStore) *HealthHandler {
	return &HealthHandler{
		mongo:  mongo,
		sqlDB:  sqlDB,
		drafts: drafts,
	}
}

// Health reports the status of each backing store. The endpoint stays 200 as
// long as the document store is up; a degraded cache only loses autosave.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]string{
		"mongo": "ok",
		"sql":   "ok",
		"cache": "ok",
	}
	status := http.StatusOK

	if err := h.mongo.Ping(ctx); err != nil {
		checks["mongo"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.sqlDB.PingContext(ctx); err != nil {
		checks["sql"] = err.Error()
	}
	if err := h.drafts.Ping(ctx); err != nil {
		checks["cache"] = err.Error()
	}

	respondJSON(w, status, map[string]any{
		"status": http.StatusText(status),
		"checks": checks,
	})
}
