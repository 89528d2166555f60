// Package module implements the archive module
package module

import (
	"quipbot/internal/modkit"
	"quipbot/internal/modkit/httpkit"
	"quipbot/internal/services/archive/domain"
	"quipbot/internal/services/archive/repo"
	"quipbot/internal/services/archive/service"
)

// Ports exposed by the archive module
type Ports struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new archive module
// a nil deps.PG leaves archiving disabled and every write a no op
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	modkit.Build(append([]modkit.Option{
		modkit.WithName("archive"),
	}, opts...)...)

	svc := service.New(deps.PG, repo.NewPG())
	if !svc.Enabled() {
		deps.Log.Info().Msg("archive disabled, no postgres configured")
	}

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc, Reader: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "archive" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
