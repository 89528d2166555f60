// Package ops provides the operations HTTP API for the bot
package ops

import (
	"quipbot/internal/platform/config"
	phttp "quipbot/internal/platform/net/http"
	"quipbot/internal/platform/store"

	"quipbot/internal/modkit"
	"quipbot/internal/modkit/httpkit"
	"quipbot/internal/modkit/module"

	archdomain "quipbot/internal/services/archive/domain"
	jobsmod "quipbot/internal/services/ops/jobs/module"
	metamod "quipbot/internal/services/ops/meta/module"
	procdomain "quipbot/internal/services/processor/domain"
)

// Options are the ops API options
type Options struct {
	Config    config.Conf
	Store     *store.Store
	Inspector procdomain.InspectorPort
	Archive   archdomain.ReaderPort
}

// Mount mounts the ops API onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	mods := []module.Module{
		metamod.New(deps),
		jobsmod.New(deps, modkit.WithPorts(jobsmod.Ports{
			Inspector: opt.Inspector,
			Archive:   opt.Archive,
		})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
