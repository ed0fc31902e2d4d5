// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"atlas/config"
	"atlas/internal/domain/lifecycle"
	"atlas/internal/errors"
	"atlas/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client, registers read replicas when configured,
// migrates the schema and hooks connection lifecycle into fx.
func New(params Params) (*gorm.DB, error) {
	pgCfg := params.Config.Postgres
	if pgCfg == nil {
		return nil, errors.New("postgres config is required")
	}

	db, err := gorm.Open(postgres.Open(buildDSN(pgCfg)), &gorm.Config{
		// Surface unique/FK violations as gorm.ErrDuplicatedKey and
		// gorm.ErrForeignKeyViolated so repositories can translate them.
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if len(pgCfg.Replicas) > 0 {
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicaDialectors(pgCfg),
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Multi-step atomic operations go through txManager.Execute instead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	applyPoolSettings(sqlDB, pgCfg)

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := migrate(db.WithContext(ctx)); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func buildDSN(cfg *config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.UserName, cfg.Password, cfg.DBName, sslMode)
}

func replicaDialectors(cfg *config.PostgresConfig) []gorm.Dialector {
	dialectors := make([]gorm.Dialector, 0, len(cfg.Replicas))
	for _, replica := range cfg.Replicas {
		replicaCfg := *cfg
		replicaCfg.Host = replica.Host
		replicaCfg.Port = replica.Port
		if replica.UserName != "" {
			replicaCfg.UserName = replica.UserName
		}
		if replica.Password != "" {
			replicaCfg.Password = replica.Password
		}
		dialectors = append(dialectors, postgres.Open(buildDSN(&replicaCfg)))
	}

	return dialectors
}

func applyPoolSettings(sqlDB *sql.DB, cfg *config.PostgresConfig) {
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// migrate creates or extends the schema from the persistence models. It is
// additive only; it never drops columns or tables.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
		&model.FileModel{},
		&model.WorldModel{},
		&model.LocationModel{},
		&model.LocationImageModel{},
		&model.FavouriteWorldModel{},
	)
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
