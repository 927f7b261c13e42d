// Package http serves liveness, readiness and build info
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"umamiconnector/internal/core/version"
	"umamiconnector/internal/modkit/httpkit"
)

// Check statuses reported per dependency
const (
	StatusOK       = "ok"
	StatusFail     = "fail"
	StatusSkipped  = "skipped"
	StatusUnknown  = "unknown"
	StatusDegraded = "degraded"
)

// Pinger is any probe target that can answer a ping
type Pinger interface {
	Ping(context.Context) error
}

// Dependency names one readiness target
// Target must be an untyped nil when the dependency is not configured
type Dependency struct {
	Name   string
	Target any
}

// Deps configures Register
type Deps struct {
	ServiceName  string
	StartedAt    time.Time
	Dependencies []Dependency
	ReadyTimeout time.Duration // default 2s
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck is the outcome of one probe
type ReadyCheck struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// ReadyResponse aggregates every probe; any failure fails the whole
type ReadyResponse struct {
	Status string       `json:"status"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse is the uptime payload
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

type meta struct {
	Deps
	now func() time.Time
}

// Register mounts health, ready, version and service on r
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	m := &meta{Deps: d, now: time.Now}
	httpkit.Get(r, "/health", m.health)
	httpkit.Get(r, "/ready", m.ready)
	httpkit.Get(r, "/version", m.buildInfo)
	httpkit.Get(r, "/service", m.service)
}

func (m *meta) stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness with service start time
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (m *meta) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: m.ServiceName, Started: m.stamp(m.StartedAt), Now: m.stamp(m.now())}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (m *meta) buildInfo(*http.Request) (any, error) { return version.Info(m.ServiceName), nil }

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (m *meta) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    m.ServiceName,
		Started: m.stamp(m.StartedAt),
		Uptime:  int64(m.now().Sub(m.StartedAt) / time.Second),
	}, nil
}

// @Summary Readiness with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
// ready probes every dependency in parallel under one deadline
func (m *meta) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), m.ReadyTimeout)
	defer cancel()

	checks := make([]ReadyCheck, len(m.Dependencies))
	var wg sync.WaitGroup
	for i, d := range m.Dependencies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			checks[i] = probe(ctx, d)
		}()
	}
	wg.Wait()

	return ReadyResponse{Status: overall(checks), Checks: checks, Now: m.stamp(m.now())}, nil
}

func overall(checks []ReadyCheck) string {
	status := StatusOK
	for _, c := range checks {
		switch c.Status {
		case StatusFail:
			return StatusFail
		case StatusUnknown:
			status = StatusDegraded
		}
	}
	return status
}

func probe(ctx context.Context, d Dependency) ReadyCheck {
	c := ReadyCheck{Name: d.Name}
	if d.Target == nil {
		c.Status = StatusSkipped
		return c
	}
	p, ok := d.Target.(Pinger)
	if !ok {
		c.Status = StatusUnknown
		return c
	}
	start := time.Now()
	err := p.Ping(ctx)
	c.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		c.Status, c.Error = StatusFail, err.Error()
		return c
	}
	c.Status = StatusOK
	return c
}
