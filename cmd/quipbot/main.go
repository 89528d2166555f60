package main

import (
	"context"
	"os/signal"
	"syscall"

	"quipbot/internal/platform/config"
	"quipbot/internal/platform/logger"
	phttp "quipbot/internal/platform/net/http"
	"quipbot/internal/platform/store"

	"quipbot/internal/modkit"
	mmodule "quipbot/internal/modkit/module"

	"quipbot/internal/adapters/telegram"
	archmod "quipbot/internal/services/archive/module"
	"quipbot/internal/services/ops"
	procmod "quipbot/internal/services/processor/module"
)

func main() {
	root := config.New()
	botCfg := root.Prefix("BOT_")
	opsCfg := root.Prefix("OPS_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// postgres is optional, without it answers are simply not archived
	var st *store.Store
	if pgCfg.MayBool("ENABLED", false) {
		var err error
		st, err = store.Open(
			ctx,
			store.Config{
				PG: store.PGConfig{
					Enabled:     true,
					URL:         pgCfg.MustString("DBURL"),
					MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
					SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
					LogSQL:      pgCfg.MayBool("LOG_SQL", false),
				},
			},
			store.WithLogger(*logger.Get()),
		)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
	}

	deps := modkit.Deps{Log: *l, Cfg: root}
	if st != nil {
		deps.PG = st.PG
	}

	// job set load happens inside the processor module and is fatal on error
	processor := procmod.New(deps, procmod.Options{})
	procPorts := mmodule.MustPortsOf[procmod.Ports](processor)

	archive := archmod.New(deps)
	archPorts := mmodule.MustPortsOf[archmod.Ports](archive)

	client := telegram.NewClient(telegram.Options{
		Token:    botCfg.MustString("TOKEN"),
		PollSecs: botCfg.MayInt("POLL_SECS", 30),
	})
	poller := telegram.NewPoller(client, procPorts.Answerer, archPorts.Writer, telegram.PollerOptions{})

	go func() {
		if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
			l.Error().Err(err).Msg("poller stopped")
			stop()
		}
	}()

	// ops http server (reads OPS_PORT)
	srv := phttp.NewServer(opsCfg)
	ops.Mount(srv.Router(), ops.Options{
		Config:    root,
		Store:     st,
		Inspector: procPorts.Inspector,
		Archive:   archPorts.Reader,
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
