package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/Pragadeesh-19/Task-Management/auth"
	"github.com/Pragadeesh-19/Task-Management/config"
	"github.com/Pragadeesh-19/Task-Management/departments"
	"github.com/Pragadeesh-19/Task-Management/repository"
	"github.com/Pragadeesh-19/Task-Management/server"
	"github.com/Pragadeesh-19/Task-Management/tasks"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("taskman"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg, err := config.Load(*configPath)
	if err != nil {
		lgr.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := openDatabase(cfg.Database.DSN)
	if err != nil {
		lgr.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.CreateSchema(ctx, db); err != nil {
		lgr.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	repos := repository.NewManager(db)
	if err := repos.Validate(); err != nil {
		lgr.Error("repository manager invalid", "error", err)
		os.Exit(1)
	}

	signingKey, err := auth.DecodeSigningKey(cfg.Auth.GetSigningKey())
	if err != nil {
		lgr.Error("invalid signing key", "error", err)
		os.Exit(1)
	}

	authLogger := lgr.GetLogger("auth")

	tokenService := auth.NewTokenService(
		signingKey,
		cfg.Auth.GetTokenValidity(),
		cfg.Auth.GetIssuer(),
		cfg.Auth.GetAudience(),
		authLogger,
	)

	provider := auth.NewUserProvider(repos.Users()).
		WithLogger(authLogger)

	auther := auth.NewAuthenticator(provider, repos.Users(), tokenService).
		WithLogger(authLogger)

	app := server.New(server.Deps{
		Auther:          auther,
		TokenService:    tokenService,
		PrincipalLoader: provider,
		Tasks:           tasks.NewService(repos.Tasks()).WithLogger(lgr.GetLogger("tasks")),
		Departments:     departments.NewService(repos.Departments()),
		Config:          cfg.Auth,
		Logger:          lgr.GetLogger("http"),
	})

	go func() {
		lgr.Info("listening", "address", cfg.Server.Address)
		if err := app.Listen(cfg.Server.Address); err != nil {
			lgr.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	waitExitSignal()

	lgr.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		lgr.Error("shutdown error", "error", err)
	}
}

func openDatabase(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

func waitExitSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
