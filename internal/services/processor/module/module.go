// Package module implements the processor module
package module

import (
	"quipbot/internal/core/jobspec"
	"quipbot/internal/core/trigger"
	"quipbot/internal/modkit"
	"quipbot/internal/modkit/httpkit"
	"quipbot/internal/services/processor/domain"
	"quipbot/internal/services/processor/service"
)

// Ports exposed by the processor module
type Ports struct {
	Answerer  domain.AnswererPort
	Inspector domain.InspectorPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new processor module
//
// the job set is loaded here and any invalid record is fatal, a
// misconfigured rule set must never reach traffic
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	modkit.Build(append([]modkit.Option{
		modkit.WithName("processor"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if overrides.BotName != "" {
		cfg.BotName = overrides.BotName
	}
	if overrides.JobsFile != "" {
		cfg.JobsFile = overrides.JobsFile
	}

	jobs, err := jobspec.LoadFile(cfg.JobsFile)
	if err != nil {
		panic(err)
	}
	deps.Log.Info().
		Int("jobs", len(jobs)).
		Str("bot", cfg.BotName).
		Msg("job set loaded")

	svc := service.New(jobs, trigger.NewStore(), service.Config{BotName: cfg.BotName})

	m := &Module{deps: deps}
	m.ports = Ports{
		Answerer:  svc,
		Inspector: svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "processor" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
