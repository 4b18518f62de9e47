package main

import (
	"fmt"

	"github.com/demobank/fraudcall/internal/common"
	"github.com/demobank/fraudcall/internal/config"
	"github.com/demobank/fraudcall/internal/service"
	"github.com/demobank/fraudcall/internal/storage"
	"github.com/spf13/viper"
)

const defaultStorePath = "shared-data/fraud_cases.json"

// initStore builds the configured case store with proper path expansion.
func initStore() (service.CaseStore, error) {
	backend := viper.GetString("store.backend")
	if backend == "" {
		backend = "json"
	}

	path := viper.GetString("store.path")
	if path == "" {
		if backend == "sqlite" {
			path = "shared-data/fraud_cases.db"
		} else {
			path = defaultStorePath
		}
	}
	path = config.ExpandPath(path)

	switch backend {
	case "json":
		return storage.NewJSONStore(path)
	case "sqlite":
		return storage.NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%w: unknown store backend %q", common.ErrInvalidConfig, backend)
	}
}
