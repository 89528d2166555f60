// Package module wires the jobs operations endpoints into the API using modkit
package module

import (
	"net/http"

	modkit "quipbot/internal/modkit"
	"quipbot/internal/modkit/httpkit"
	str "quipbot/internal/platform/strings"
	archdomain "quipbot/internal/services/archive/domain"
	jobshttp "quipbot/internal/services/ops/jobs/http"
	procdomain "quipbot/internal/services/processor/domain"
)

// Ports are dependencies injected into the jobs module
type Ports struct {
	Inspector procdomain.InspectorPort // required
	Archive   archdomain.ReaderPort    // optional
}

// Module implements the jobs module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the jobs module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("jobs"),
		modkit.WithPrefix("/jobs"),
	}, opts...)...)

	// basic guardrails against incorrect wiring
	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("jobs module: expected WithPorts(jobs/module.Ports)")
	}
	if ports.Inspector == nil {
		panic("jobs module: Ports missing Inspector")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		jobshttp.Register(r, ports.Inspector, ports.Archive)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
