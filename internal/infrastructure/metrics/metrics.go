package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Interface activation metrics
	InterfacesActivated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netup_interfaces_activated_total",
			Help: "Total number of network interfaces brought up or down",
		},
		[]string{"operation", "status"}, // up/down, success/failed
	)

	ActivationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netup_activation_duration_seconds",
			Help:    "Time spent on each activation request",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"activator", "operation"},
	)

	SelectedActivator = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netup_selected_activator",
			Help: "The activator selected for this machine (1 = selected)",
		},
		[]string{"activator"},
	)

	// Polling metrics
	PollingCycleCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netup_polling_cycles_total",
			Help: "Total number of polling cycles executed",
		},
	)

	PollingCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netup_polling_cycle_duration_seconds",
			Help:    "Time spent in each polling cycle",
			Buckets: prometheus.DefBuckets,
		},
	)

	PollingBackoffLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "netup_polling_backoff_level",
			Help: "Current backoff level (0 = no backoff)",
		},
	)

	// Database connection metrics
	DBConnectionStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "netup_db_connection_status",
			Help: "Database connection status (1 = connected, 0 = disconnected)",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netup_errors_total",
			Help: "Total number of errors encountered",
		},
		[]string{"error_type"}, // validation, not_found, command, system
	)

	// Agent info metric
	AgentInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netup_agent_info",
			Help: "Agent build and host information",
		},
		[]string{"version", "hostname"},
	)
)

// RecordActivation records one interface up/down outcome
func RecordActivation(operation string, success bool) {
	status := "success"
	if !success {
		status = "failed"
	}
	InterfacesActivated.WithLabelValues(operation, status).Inc()
}

// RecordActivationDuration records the duration of an activation request
func RecordActivationDuration(activator, operation string, seconds float64) {
	ActivationDuration.WithLabelValues(activator, operation).Observe(seconds)
}

// SetSelectedActivator marks which activator selection resolved to
func SetSelectedActivator(name string) {
	SelectedActivator.Reset()
	SelectedActivator.WithLabelValues(name).Set(1)
}

// RecordPollingCycle records one completed polling cycle
func RecordPollingCycle(seconds float64) {
	PollingCycleCount.Inc()
	PollingCycleDuration.Observe(seconds)
}

// SetBackoffLevel sets the current polling backoff level
func SetBackoffLevel(level float64) {
	PollingBackoffLevel.Set(level)
}

// SetDBConnectionStatus sets the database connection gauge
func SetDBConnectionStatus(connected bool) {
	if connected {
		DBConnectionStatus.Set(1)
	} else {
		DBConnectionStatus.Set(0)
	}
}

// IncrementError counts an error by type
func IncrementError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// SetAgentInfo sets the agent info gauge
func SetAgentInfo(version, hostname string) {
	AgentInfo.WithLabelValues(version, hostname).Set(1)
}
