package backend

import (
	"context"
	"fmt"
	"log/slog"

	"financetracker/internal/api"
	"financetracker/internal/repository"
	"financetracker/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(_ context.Context, config Config) (*BackendResult, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*BackendResult, error) {
	store, err := storage.NewSQLiteStore(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite store: %w", err)
	}

	repo := repository.New(store)

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"request_delay", config.RequestDelay)

	return &BackendResult{
		Backend: api.NewGateway(repo, config.RequestDelay),
		Cleanup: store.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(config Config) (*BackendResult, error) {
	repo := repository.New(storage.NewMemoryStore())

	f.logger.Info("Initialized memory backend", "request_delay", config.RequestDelay)

	return &BackendResult{
		Backend: api.NewGateway(repo, config.RequestDelay),
		Cleanup: nil,
	}, nil
}
