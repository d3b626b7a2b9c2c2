package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"employee-api/internal/auth"
	"employee-api/internal/config"
	"employee-api/internal/database"
	"employee-api/internal/graph"
	"employee-api/internal/repository"
	"employee-api/internal/repository/memory"
	"employee-api/internal/repository/postgres"
	"employee-api/internal/router"
	"employee-api/internal/service"
	"employee-api/internal/telemetry"
	"employee-api/pkg/logger"
)

type stores struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	pinger    repository.Pinger
	close     func()
}

func openStores(ctx context.Context, cfg config.Config, l zerolog.Logger) (stores, error) {
	if cfg.DBURL == config.MemoryDSN {
		l.Warn().Msg("using in-memory store; data is lost on exit")
		s := memory.NewStore()
		return stores{users: s.Users(), employees: s.Employees(), pinger: s, close: func() {}}, nil
	}

	pool, err := database.Open(ctx, cfg)
	if err != nil {
		return stores{}, err
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return stores{}, err
	}
	return stores{
		users:     postgres.NewUserRepo(pool),
		employees: postgres.NewEmployeeRepo(pool),
		pinger:    pool,
		close:     pool.Close,
	}, nil
}

func main() {
	// config + logger
	cfg, err := config.Load()
	if err != nil {
		bl := logger.New("prod")
		bl.Fatal().Err(err).Msg("config")
	}
	l := logger.New(cfg.Env)
	l.Info().Stringer("config", cfg).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.TraceStdout, os.Stdout)
	if err != nil {
		l.Fatal().Err(err).Msg("tracing setup failed")
	}

	// storage
	st, err := openStores(ctx, cfg, l)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}
	defer st.close()

	// services + graphql
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	schema, err := graph.NewSchema(&graph.Resolver{
		Auth:      service.NewAuthService(st.users, tokens),
		Employees: service.NewEmployeeService(st.employees, cfg.EmployeesMaxLimit),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("graphql schema")
	}

	// http
	h := router.New(l, cfg, router.Deps{
		DB:      st.pinger,
		Authn:   auth.NewAuthenticator(tokens),
		GraphQL: graph.NewHandler(schema),
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	// graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return err
		}
		return shutdownTracing(sctx)
	})

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("server error")
	}
	l.Info().Msg("shutdown complete")
}
