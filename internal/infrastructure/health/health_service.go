package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"netup-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// HealthService provides health check functionality
type HealthService struct {
	mu        sync.RWMutex
	clock     interfaces.Clock
	logger    *logrus.Logger
	startTime time.Time
	dbInUse   bool
	dbHealthy bool
	dbError   error
	activated int64
	failed    int64
	activator string
}

// HealthStatus represents health check status
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the health check response struct
type HealthResponse struct {
	Status     HealthStatus           `json:"status"`
	Timestamp  string                 `json:"timestamp"`
	Components map[string]interface{} `json:"components"`
	Statistics map[string]interface{} `json:"statistics"`
}

// NewHealthService creates a new HealthService
func NewHealthService(clock interfaces.Clock, dbInUse bool, logger *logrus.Logger) *HealthService {
	return &HealthService{
		clock:     clock,
		logger:    logger,
		startTime: clock.Now(),
		dbInUse:   dbInUse,
		dbHealthy: !dbInUse,
	}
}

// UpdateDBHealth updates the database health status
func (h *HealthService) UpdateDBHealth(healthy bool, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dbHealthy = healthy
	h.dbError = err
}

// IncrementActivated increments the activated interface count
func (h *HealthService) IncrementActivated() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.activated++
}

// IncrementFailed increments the failed activation count
func (h *HealthService) IncrementFailed() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.failed++
}

// SetActivator records which activator selection resolved to
func (h *HealthService) SetActivator(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.activator = name
}

// ServeHTTP handles the HTTP health check endpoint
func (h *HealthService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := h.buildHealthResponse()

	statusCode := http.StatusOK
	if response.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.WithError(err).Error("failed to encode health check response")
	}
}

// buildHealthResponse constructs the health check response
func (h *HealthService) buildHealthResponse() HealthResponse {
	h.mu.RLock()
	defer h.mu.RUnlock()

	now := h.clock.Now()
	status := h.determineOverallStatus()

	components := map[string]interface{}{
		"activator": map[string]interface{}{
			"selected": h.activator,
		},
	}
	if h.dbInUse {
		components["database"] = map[string]interface{}{
			"healthy": h.dbHealthy,
			"error":   h.formatError(h.dbError),
		}
	}

	statistics := map[string]interface{}{
		"activated_interfaces": h.activated,
		"failed_activations":   h.failed,
		"uptime":               h.formatUptime(now.Sub(h.startTime)),
	}

	return HealthResponse{
		Status:     status,
		Timestamp:  now.Format(time.RFC3339),
		Components: components,
		Statistics: statistics,
	}
}

// determineOverallStatus determines the overall health status
func (h *HealthService) determineOverallStatus() HealthStatus {
	if h.dbInUse && !h.dbHealthy {
		return StatusUnhealthy
	}

	// Half or more of the attempted activations failing means degraded
	if h.activated+h.failed > 0 {
		failureRate := float64(h.failed) / float64(h.activated+h.failed)
		if failureRate >= 0.5 && h.failed > 0 {
			return StatusDegraded
		}
	}

	return StatusHealthy
}

// formatError formats an error to string
func (h *HealthService) formatError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// formatUptime formats uptime duration to human-readable format
func (h *HealthService) formatUptime(duration time.Duration) string {
	days := int(duration.Hours()) / 24
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd%dh%dm", days, hours, minutes)
	} else if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
