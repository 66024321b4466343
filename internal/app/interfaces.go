package app

import (
	"github.com/robfig/cron/v3"

	"github.com/lauremed/catalog/config"
	"github.com/lauremed/catalog/internal/storage"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StorageProvider provides catalog storage access
type StorageProvider interface {
	Storage() storage.Storage
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StorageProvider
	SchedulerProvider

	// Application lifecycle methods
	Init() error
	Release()
}
