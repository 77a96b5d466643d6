// Package healthcheck reports process readiness for orchestration
// probes and load balancer target checks.
package healthcheck

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// Status is the reported health of the process.
type Status int32

const (
	// Unavailable is the initial state, before the server is serving.
	Unavailable Status = iota
	// Ready means the server is accepting requests.
	Ready
	// Broken means the server is up but cannot serve correctly.
	Broken
)

func (s Status) String() string {
	switch s {
	case Unavailable:
		return "unavailable"
	case Ready:
		return "ready"
	case Broken:
		return "broken"
	default:
		return "unknown"
	}
}

// HealthCheck holds the current status. Set and Get may be called from
// any goroutine.
type HealthCheck struct {
	status int32
}

// New returns a HealthCheck in the Unavailable state.
func New() *HealthCheck {
	return &HealthCheck{}
}

func (h *HealthCheck) Set(s Status) {
	atomic.StoreInt32(&h.status, int32(s))
}

func (h *HealthCheck) Get() Status {
	return Status(atomic.LoadInt32(&h.status))
}

type response struct {
	Status string `json:"status"`
}

// Handler serves the current status as JSON: HTTP 200 when Ready,
// HTTP 503 otherwise.
func (h *HealthCheck) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := h.Get()

		w.Header().Set("Content-Type", "application/json")
		if status == Ready {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(response{Status: status.String()})
	})
}
