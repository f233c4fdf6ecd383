// Command qclab-api serves the quality-control laboratory back office API
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	modkit "qclab/internal/modkit"
	"qclab/internal/modkit/repokit"
	"qclab/internal/platform/config"
	"qclab/internal/platform/logger"
	phttp "qclab/internal/platform/net/http"
	"qclab/internal/platform/store"
	"qclab/internal/services/api"
)

// @title qclab API
// @version 1.0
// @description Back office for cocoa/coffee quality-control laboratories:
// @description demandes, lot sampling, secret-code codification.
// @BasePath /api/v1
func main() {
	logger.Init(logger.FromEnv())
	log := logger.Named("boot")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	apiCfg := cfg.Prefix("CORE_API_")
	pgCfg := cfg.Prefix("SERVICE_PGSQL_")
	chCfg := cfg.Prefix("SERVICE_CLICKHOUSE_")

	st, err := store.Open(ctx, store.Config{
		AppName: "qclab-api",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("URL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 8)),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 250),
		},
		CH: store.CHConfig{
			Enabled:    chCfg.MayBool("ENABLED", false),
			URL:        chCfg.MayString("URL", ""),
			ClientName: "qclab",
			ClientTag:  "api",
		},
	}, store.WithLogger(*logger.Get()))
	if err != nil {
		log.Fatal().Err(err).Msg("store open failed")
	}
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(cctx); err != nil {
			log.Warn().Err(err).Msg("store close")
		}
	}()
	repokit.MustGuard(ctx, st)

	pingers := map[string]store.Pinger{}
	if p, ok := any(st.PG).(store.Pinger); ok {
		pingers["postgres"] = p
	}
	if st.CH != nil {
		if p, ok := any(st.CH).(store.Pinger); ok {
			pingers["clickhouse"] = p
		}
	}

	deps := modkit.Deps{
		Log: *logger.Get(),
		Cfg: cfg,
		PG:  st.PG,
		CH:  st.CH,
	}

	srv := phttp.NewServer(apiCfg)
	mods := api.Mount(srv.Router(), deps, api.Options{
		Swagger: apiCfg.MayBool("SWAGGER", true),
		Pingers: pingers,
	})
	for _, m := range mods {
		log.Info().Str("module", m.Name()).Msg("mounted")
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			log.Fatal().Err(err).Msg("http server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}
}
