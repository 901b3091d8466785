// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves liveness and readiness probes. Readiness fans out to
// every registered dependency with a shared deadline.
type Handler struct {
	deps     []dependency
	started  time.Time
	ready    atomic.Bool
	shutdown atomic.Bool
}

type dependency struct {
	name   string
	pinger Pinger
}

func NewHandler() *Handler {
	h := &Handler{started: time.Now()}
	h.ready.Store(true)
	return h
}

func (h *Handler) AddDependency(name string, p Pinger) {
	h.deps = append(h.deps, dependency{name: name, pinger: p})
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, probeResponse{
			Status: "shutting_down",
		})
		return
	}

	h.writeStatus(w, http.StatusOK, probeResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, probeResponse{
			Status: "shutting_down",
		})
		return
	}

	if !h.ready.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, probeResponse{
			Status: "not_ready",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := h.checkAll(ctx)

	status := "ok"
	statusCode := http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	h.writeStatus(w, statusCode, probeResponse{
		Status: status,
		Uptime: time.Since(h.started).Round(time.Second).String(),
		Checks: checks,
	})
}

func (h *Handler) checkAll(ctx context.Context) []DependencyCheck {
	var wg sync.WaitGroup
	checks := make([]DependencyCheck, len(h.deps))

	for i, dep := range h.deps {
		wg.Add(1)
		go func(i int, dep dependency) {
			defer wg.Done()
			checks[i] = h.checkOne(ctx, dep)
		}(i, dep)
	}

	wg.Wait()
	return checks
}

func (h *Handler) checkOne(ctx context.Context, dep dependency) DependencyCheck {
	check := DependencyCheck{
		Name:    dep.name,
		Healthy: true,
	}

	start := time.Now()
	err := dep.pinger.Ping(ctx)
	check.Latency = time.Since(start).String()

	if err != nil {
		check.Healthy = false
		check.Message = "ping failed"
	}

	return check
}

func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}

type probeResponse struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime,omitempty"`
	Checks []DependencyCheck `json:"checks,omitempty"`
}

type DependencyCheck struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
