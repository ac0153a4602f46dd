package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/kfitness/internal/cli"
	"github.com/dmitrijs2005/kfitness/internal/config"
	"github.com/dmitrijs2005/kfitness/internal/dbx"
	"github.com/dmitrijs2005/kfitness/internal/filex"
	"github.com/dmitrijs2005/kfitness/internal/logging"
	"github.com/dmitrijs2005/kfitness/internal/repositories/metadata"
	"github.com/dmitrijs2005/kfitness/internal/services"
	"github.com/dmitrijs2005/kfitness/internal/session"
	"github.com/dmitrijs2005/kfitness/internal/store"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		logger.Error(ctx, "error preparing database directory", "error", err)
		os.Exit(1)
	}

	db, err := dbx.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	st, err := store.Open(ctx, metadata.NewSQLiteRepository(db), cfg.StorageKey, logger)
	if err != nil {
		logger.Error(ctx, "error opening store", "error", err)
		db.Close()
		os.Exit(1)
	}

	dir := services.NewDirectoryService(st, logger, services.WithLatency(cfg.Latency))
	app := cli.NewApp(session.New(dir, logger), logger, os.Stdin, os.Stdout)

	app.Run(ctx)
}
