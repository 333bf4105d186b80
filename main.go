package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fespace-studio/fespace/config"
	"github.com/fespace-studio/fespace/logger"
	"github.com/fespace-studio/fespace/repository"
	"github.com/fespace-studio/fespace/session"
	"github.com/fespace-studio/fespace/store"
	"github.com/fespace-studio/fespace/viewstate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(cfg)

	if err := config.ConnectDatabase(cfg); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}

	db := config.GetDB()
	if err := config.MigrateDatabase(db); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to migrate database")
	}
	logger.Log.Info().Msg("database migration completed")

	sess, err := session.NewManager(cfg.SessionFile)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to open session store")
	}

	st := store.New(db)
	if err := st.SeedDatabase(sess); err != nil {
		logger.Log.Fatal().Err(err).Msg("first-run seeding failed")
	}

	users := repository.NewUserRepository(st)
	auth := viewstate.NewAuthState(users, sess)

	screen := auth.InitialScreen()
	logger.Log.Info().
		Str("screen", string(screen)).
		Bool("logged_in", sess.IsLoggedIn()).
		Msg("app ready")

	// The process stays alive for the screen lifetime; subscriptions are torn
	// down when the shell exits.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("shutting down")
}
