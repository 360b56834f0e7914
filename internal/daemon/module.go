package daemon

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/matheus3301/chardetect/internal/api"
	"github.com/matheus3301/chardetect/internal/bus"
	"github.com/matheus3301/chardetect/internal/config"
	"github.com/matheus3301/chardetect/internal/detect"
	"github.com/matheus3301/chardetect/internal/lock"
	"github.com/matheus3301/chardetect/internal/logging"
	"github.com/matheus3301/chardetect/internal/paths"
	"github.com/matheus3301/chardetect/internal/recorder"
	"github.com/matheus3301/chardetect/internal/status"
	"github.com/matheus3301/chardetect/internal/store"
)

// ProbeInterval is how often the store health probe runs.
const ProbeInterval = 30 * time.Second

// Params holds the resolved data directory passed to the fx module.
type Params struct {
	Home       string
	SocketPath string // optional override for testing; empty = use default
	LogLevel   string // empty = info
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideDetector,
			provideRecorder,
			api.NewDetectorService,
			api.NewHistoryService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	return config.LoadOrDefault(paths.ConfigPath(p.Home))
}

func provideLogger(p Params) (*zap.Logger, error) {
	if p.LogLevel == "" {
		return logging.New(paths.LogPath(p.Home))
	}
	level, err := logging.ParseLevel(p.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithLevel(paths.LogPath(p.Home), level)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := paths.EnsureDir(p.Home); err != nil {
		return nil, err
	}
	logger.Info("acquiring data directory lock", zap.String("home", p.Home))
	l, err := lock.Acquire(p.Home)
	if err != nil {
		return nil, err
	}
	logger.Info("data directory lock acquired")
	return l, nil
}

// provideStore depends on the lock so that the database is never opened by
// a second daemon.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := paths.DBPath(p.Home)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideDetector(cfg *config.Config, logger *zap.Logger) (*detect.Detector, error) {
	mapper, err := cfg.Mapper()
	if err != nil {
		return nil, err
	}
	d, err := detect.New(nil, mapper, cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	logger.Info("detector ready",
		zap.Int("blocks", d.Table().Len()),
		zap.String("placeholder", mapper.Placeholder()),
		zap.Int("cache_size", cfg.CacheSize),
	)
	return d, nil
}

func provideRecorder(db *store.DB, b *bus.Bus, machine *status.Machine, logger *zap.Logger) *recorder.Recorder {
	return recorder.New(db, b, machine, logger.Named("recorder"))
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, lk *lock.Lock, db *store.DB, rec *recorder.Recorder, machine *status.Machine, b *bus.Bus, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// A failing first probe leaves the daemon DEGRADED but serving.
			if err := rec.Probe(ctx); err != nil {
				logger.Warn("initial store probe failed", zap.Error(err))
			}
			rec.Start(context.Background(), ProbeInterval)

			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			if machine.Current() == status.Booting {
				if err := machine.Transition(status.Ready, "serving"); err != nil {
					logger.Warn("could not mark daemon ready", zap.Error(err))
				}
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = machine.Transition(status.Stopping, "shutdown requested")
			rec.Stop()
			b.Close()
			srv.Stop(ctx)
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
