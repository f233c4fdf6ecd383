// Package service implements the meta endpoints
package service

import (
	"context"
	"time"

	"qclab/internal/core/version"
	"qclab/internal/platform/store"
	"qclab/internal/services/api/meta/domain"
)

const pingTimeout = 2 * time.Second

// Svc answers health, readiness, version and uptime
type Svc struct {
	name    string
	started time.Time
	pingers map[string]store.Pinger
}

// New creates a meta service. pingers may be empty
func New(name string, pingers map[string]store.Pinger) *Svc {
	return &Svc{
		name:    name,
		started: time.Now().UTC(),
		pingers: pingers,
	}
}

// Health reports liveness
func (s *Svc) Health(context.Context) domain.Health {
	return domain.Health{Status: "ok"}
}

// Ready pings every configured backend. Any failure degrades the
// readiness status; the transport maps degraded to 503
func (s *Svc) Ready(ctx context.Context) domain.Ready {
	out := domain.Ready{Status: "ok", Checks: map[string]string{}}
	for name, p := range s.pingers {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := p.Ping(pctx)
		cancel()
		if err != nil {
			out.Status = "degraded"
			out.Checks[name] = err.Error()
			continue
		}
		out.Checks[name] = "ok"
	}
	return out
}

// Version returns build information
func (s *Svc) Version(context.Context) version.BuildInfo {
	return version.Info()
}

// Service reports identity and uptime
func (s *Svc) Service(context.Context) domain.Service {
	return domain.Service{
		Name:      s.name,
		StartedAt: s.started,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
	}
}
