package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/developer-projects-backend/config"
)

// Open connects to postgres and checks the connection. When a replica is
// configured, raw SELECTs outside a transaction are routed to it.
func Open(ctx context.Context, cfg config.Database) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 NewGormLogger(cfg.SlowQueryThreshold, true),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if cfg.ReplicaURL != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  cfg.ReplicaURL,
				PreferSimpleProtocol: true,
			})},
			Policy: dbresolver.RandomPolicy{},
		}).
			SetMaxOpenConns(cfg.MaxConns).
			SetMaxIdleConns(cfg.IdleConns).
			SetConnMaxLifetime(cfg.MaxConnLifetime))
		if err != nil {
			return nil, fmt.Errorf("registering read replica: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.IdleConns)
	sqlDB.SetConnMaxLifetime(cfg.MaxConnLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := New(db).Ping(pingCtx); err != nil {
		return nil, err
	}
	return db, nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
