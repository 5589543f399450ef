// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	cacheHealthChecker func() bool
}

// HealthResponse represents the health check response. The report cache is
// optional, so a missing cache degrades the status without failing it.
type HealthResponse struct {
	Service     string `json:"service"`
	Status      string `json:"status"`
	Database    string `json:"database"`
	ReportCache string `json:"report_cache"`
	Timestamp   string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker, cacheHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		cacheHealthChecker: cacheHealthChecker,
	}
}

// Check handles GET /health requests.
// It reports the ledger database and report cache status.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"

	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	} else {
		status = "degraded"
	}

	cacheStatus := "disconnected"
	if h.cacheHealthChecker != nil && h.cacheHealthChecker() {
		cacheStatus = "connected"
	} else if status == "ok" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Service:     "ledgerbook-api",
		Status:      status,
		Database:    dbStatus,
		ReportCache: cacheStatus,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
