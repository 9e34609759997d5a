package cmd

import (
	"context"
	"fmt"

	"inventree-sync/core/config"
	"inventree-sync/core/database"
	"inventree-sync/core/images"
	"inventree-sync/core/inventree"
	"inventree-sync/core/journal"
	"inventree-sync/core/logger"
	"inventree-sync/core/reconcile"
	"inventree-sync/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is the shared state of one catalog command run.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	runID   string
	client  *inventree.Client
	db      *gorm.DB
	journal journal.Recorder
}

// bootstrap loads and validates the configuration, creates the run logger
// and the API client, and opens the import journal when enabled. A journal
// that cannot be opened is reported and the run continues without it.
func bootstrap(ctx context.Context, command string) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	runID := uuid.NewString()
	l = logger.WithRunID(l, runID).With(zap.String("command", command))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := inventree.NewClient(cfg.Inventree, l)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, logger: l, runID: runID, client: client, journal: journal.Nop{}}

	if cfg.Database.Enabled {
		if err := rt.openJournal(ctx, command); err != nil {
			l.Warn("Import journal disabled", zap.Error(err))
		}
	}

	l.Info("Run started", zap.String("api_host", cfg.Inventree.APIHost))
	return rt, nil
}

func (rt *runtime) openJournal(ctx context.Context, command string) error {
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		return err
	}
	store := journal.NewStore(db, rt.runID, command)
	if err := store.Migrate(ctx); err != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		return err
	}
	rt.db = db
	rt.journal = store
	rt.logger.Debug("Import journal enabled", zap.String("driver", rt.cfg.Database.Driver))
	return nil
}

func (rt *runtime) reconciler() *reconcile.Reconciler {
	return reconcile.NewReconciler(rt.client, rt.logger, reconcile.WithRecorder(rt.journal))
}

// archive returns the image archive, or nil when it is disabled or unreachable.
func (rt *runtime) archive() *images.Archive {
	if !rt.cfg.Storage.Enabled {
		return nil
	}
	client, err := storage.NewClient(rt.cfg.Storage)
	if err != nil {
		rt.logger.Warn("Image archive unavailable", zap.Error(err))
		return nil
	}
	return images.NewArchive(client, rt.cfg.Storage.Bucket, rt.cfg.Storage.Prefix, rt.logger)
}

func (rt *runtime) close() {
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = rt.logger.Sync()
}
